package web

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/qrform/pkg/i18n"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// NewTranslator loads the bundled page translations.
func NewTranslator(ctx context.Context, defaultLang string, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(translationsFS, "translations"),
		i18n.WithDefaultLanguage(defaultLang),
		i18n.WithLogger(log),
	)
}
