package i18n

import (
	"net/http"
	"strings"
)

type extractorConfig struct {
	cookieName string
	queryParam string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

// WithCookieName sets the cookie holding the language. Default "lang".
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter holding the language. Default "lang".
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.queryParam = name
		}
	}
}

// DefaultLangExtractor checks the cookie, the query parameter and the
// Accept-Language header in that order and returns the first value that
// matches one of supported.
func DefaultLangExtractor(supported []string, opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{cookieName: "lang", queryParam: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}
	matcher := NewMatcher(supported...)

	return func(r *http.Request) string {
		if c, err := r.Cookie(cfg.cookieName); err == nil {
			if lang := matcher.Match(strings.TrimSpace(c.Value)); lang != "" {
				return lang
			}
		}
		if v := strings.TrimSpace(r.URL.Query().Get(cfg.queryParam)); v != "" {
			if lang := matcher.Match(v); lang != "" {
				return lang
			}
		}
		return matcher.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
	}
}
