package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// Matcher maps requested language tags onto a fixed set of supported codes.
type Matcher struct {
	codes   []string
	matcher language.Matcher
}

// NewMatcher builds a matcher over codes. Codes that are not valid BCP 47
// tags are skipped.
func NewMatcher(codes ...string) *Matcher {
	m := &Matcher{}
	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		m.codes = append(m.codes, code)
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Match returns the supported code best matching one of the requested
// values, or "" when none is a reasonable match.
func (m *Matcher) Match(requested ...string) string {
	if m.matcher == nil {
		return ""
	}
	tags := make([]language.Tag, 0, len(requested))
	for _, r := range requested {
		if tag, err := language.Parse(r); err == nil {
			tags = append(tags, tag)
		}
	}
	return m.match(tags)
}

// MatchAcceptLanguage negotiates an Accept-Language header value.
func (m *Matcher) MatchAcceptLanguage(header string) string {
	if m.matcher == nil || header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}
	return m.match(tags)
}

func (m *Matcher) match(tags []language.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	return m.codes[idx]
}
