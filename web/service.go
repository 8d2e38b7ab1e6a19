package web

import (
	"context"
	"errors"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrform/handler"
	"github.com/dmitrymomot/qrform/pkg/form"
	"github.com/dmitrymomot/qrform/pkg/i18n"
)

// GenerateRequest is bound from the "text" form field or Datastar signal.
type GenerateRequest struct {
	Text string `form:"text" json:"text"`
}

// Service serves the QR form. Each request gets its own controller.
type Service struct {
	encoder     form.Encoder
	translator  *i18n.Translator
	log         *slog.Logger
	defaultText string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger passed to controllers.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDefaultText overrides the text generated on first page load.
func WithDefaultText(text string) ServiceOption {
	return func(s *Service) {
		if text != "" {
			s.defaultText = text
		}
	}
}

// NewService creates a Service.
func NewService(enc form.Encoder, tr *i18n.Translator, opts ...ServiceOption) *Service {
	s := &Service{
		encoder:     enc,
		translator:  tr,
		log:         slog.New(slog.DiscardHandler),
		defaultText: form.DefaultText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// localizer binds the translator to the request language.
func (s *Service) localizer(ctx context.Context) form.Localizer {
	lang := i18n.GetLocale(ctx)
	return func(key, fallback string) string {
		return s.translator.Td(lang, key, fallback)
	}
}

func (s *Service) controller(ctx context.Context, opts ...form.Option) *form.Controller {
	base := []form.Option{
		form.WithLocalizer(s.localizer(ctx)),
		form.WithDefaultText(s.defaultText),
		form.WithLogger(s.log),
	}
	return form.NewController(s.encoder, append(base, opts...)...)
}

func (s *Service) pageData(ctx context.Context, c *form.Controller) PageData {
	return PageData{
		State:     c.State(),
		Lang:      i18n.GetLocale(ctx),
		T:         s.localizer(ctx),
		CanSubmit: c.CanSubmit(),
	}
}

// Page renders the form after its first generation.
func (s *Service) Page(ctx handler.Context, _ struct{}) handler.Response {
	c := s.controller(ctx)
	if _, err := c.Init(ctx); err != nil {
		return handler.Error(err)
	}
	return handler.Templ(Page(s.pageData(ctx, c)))
}

// Generate runs one generation. Datastar clients receive the loading signal
// first and the settled result region once the encoder returns; plain form
// posts get the full page.
func (s *Service) Generate(ctx handler.Context, req GenerateRequest) handler.Response {
	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			c := s.controller(stream, form.WithRenderer(form.RendererFunc(func(_ context.Context, st form.State) error {
				if err := stream.SendSignals(map[string]any{"loading": st.Loading}); err != nil {
					return err
				}
				if st.Loading {
					// The page keeps showing the previous QR; only a stale error goes.
					return stream.SendComponent(templ.NopComponent,
						handler.WithTarget("#"+ErrorID), handler.WithPatchMode(handler.PatchRemove))
				}
				d := PageData{State: st, Lang: i18n.GetLocale(stream), T: s.localizer(stream)}
				return stream.SendComponent(Result(d), handler.WithTarget("#"+ResultID))
			})))
			c.UpdateText(req.Text)
			_, err := c.Generate(stream, req.Text)
			return generateError(err)
		})
	}

	c := s.controller(ctx)
	c.UpdateText(req.Text)
	if _, err := c.Generate(ctx, req.Text); err != nil {
		return handler.Error(generateError(err))
	}
	return handler.Templ(Page(s.pageData(ctx, c)))
}

// generateError maps controller errors to HTTP errors. User-facing failures
// live in the state and never reach here.
func generateError(err error) error {
	if errors.Is(err, form.ErrGenerationInProgress) {
		return errors.Join(handler.ErrConflict, err)
	}
	return err
}
