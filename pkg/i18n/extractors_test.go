package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrform/pkg/i18n"
)

func TestMatcher(t *testing.T) {
	t.Parallel()
	m := i18n.NewMatcher("en", "pt")

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"exact", "pt", "pt"},
		{"regional variant", "pt-BR,pt;q=0.9", "pt"},
		{"english region", "en-US", "en"},
		{"skips unsupported", "fr;q=0.9, pt-BR;q=0.8, de;q=0.1", "pt"},
		{"unsupported only", "fr, de", ""},
		{"empty", "", ""},
		{"garbage", "!!!", ""},
		{"oversized header", strings.Repeat("x", 5000), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.MatchAcceptLanguage(tt.header))
		})
	}

	assert.Equal(t, "pt", m.Match("pt-BR"))
	assert.Equal(t, "", m.Match("not a tag"))
	assert.Equal(t, "", i18n.NewMatcher().Match("en"))
}

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()
	extract := i18n.DefaultLangExtractor([]string{"en", "pt"})

	tests := []struct {
		name   string
		cookie string
		query  string
		accept string
		want   string
	}{
		{name: "cookie wins", cookie: "pt", query: "en", accept: "en", want: "pt"},
		{name: "query before header", query: "pt-BR", accept: "en", want: "pt"},
		{name: "unsupported cookie skipped", cookie: "fr", accept: "pt", want: "pt"},
		{name: "accept language", accept: "pt-BR", want: "pt"},
		{name: "nothing", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			target := "/"
			if tt.query != "" {
				target += "?lang=" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, extract(r))
		})
	}

	t.Run("custom names", func(t *testing.T) {
		t.Parallel()
		ex := i18n.DefaultLangExtractor([]string{"en", "pt"},
			i18n.WithCookieName("locale"),
			i18n.WithQueryParamName("hl"),
		)
		r := httptest.NewRequest(http.MethodGet, "/?hl=pt", nil)
		assert.Equal(t, "pt", ex(r))

		r = httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "locale", Value: "pt"})
		assert.Equal(t, "pt", ex(r))
	})
}
