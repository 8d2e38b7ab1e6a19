package i18n

import (
	"context"
	"net/http"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// LangExtractor returns the language for a request, or "" when undecided.
type LangExtractor func(r *http.Request) string
