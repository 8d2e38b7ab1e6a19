// Package i18n loads YAML translations and picks a language per request.
//
// A Translator is built from a TranslationAdapter (MapAdapter for inline
// data, FSAdapter for a directory inside an fs.FS such as embed.FS). Keys are
// dot-separated paths into the nested YAML map and values may contain named
// placeholders in the form %{name}:
//
//	en:
//	  qr:
//	    title: "QR Code Generator"
//	    greeting: "Hello, %{name}"
//
// Languages are negotiated with golang.org/x/text/language. The default
// extractor looks at the "lang" cookie, the "lang" query parameter and the
// Accept-Language header, in that order, and only returns languages the
// translator knows about. Middleware stores the result in the request
// context where GetLocale and Translator.Tc pick it up.
package i18n
