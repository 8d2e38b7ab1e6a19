package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrform/pkg/logger"
	"github.com/dmitrymomot/qrform/pkg/requestid"
)

// ErrorPageParams feeds the error page component.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams feeds the toast component sent to Datastar clients.
type ErrorToastParams struct {
	Message   string
	Type      string
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component
	// Translate resolves an HTTPError key into a message for the request.
	Translate func(ctx context.Context, key, fallback string) string
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
}

const genericErrorMessage = "An error occurred processing your request"

type errorInfo struct {
	status  int
	key     string
	message string
}

func classifyError(err error) errorInfo {
	info := errorInfo{status: http.StatusInternalServerError, message: genericErrorMessage}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.status = httpErr.Code
		info.key = httpErr.Key
		info.message = http.StatusText(httpErr.Code)
	}
	return info
}

func toastType(status int) string {
	if status < http.StatusInternalServerError {
		return "warning"
	}
	return "error"
}

// NewErrorHandler logs the error at warn (4xx) or error (5xx) level and
// renders a page or a Datastar toast.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		id := requestid.FromContext(r.Context())
		info := classifyError(err)
		if info.key != "" && cfg.Translate != nil {
			info.message = cfg.Translate(r.Context(), info.key, info.message)
		}

		level := slog.LevelError
		if info.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			logger.HTTP(r.Method, r.URL.Path, info.status),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			renderToast(ctx, log, cfg, info, id)
			return
		}
		renderPage(ctx, log, cfg, info, id)
	}
}

func renderToast(ctx Context, log *slog.Logger, cfg ErrorHandlerConfig, info errorInfo, id string) {
	sse := ctx.SSE()
	if cfg.ErrorToast == nil || sse == nil {
		log.Warn("error toast not rendered", logger.RequestID(id))
		return
	}
	toast := cfg.ErrorToast(ErrorToastParams{Message: info.message, Type: toastType(info.status), RequestID: id})
	if err := sse.PatchElementTempl(toast,
		WithTarget(cfg.ToastTarget),
		WithPatchMode(PatchPrepend),
	); err != nil {
		log.Error("failed to render error toast", logger.Error(err), logger.Event("render_error_toast"))
	}
}

func renderPage(ctx Context, log *slog.Logger, cfg ErrorHandlerConfig, info errorInfo, id string) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.message, info.status)
		return
	}
	page := cfg.ErrorPage(ErrorPageParams{
		Error:      info.message,
		StatusCode: info.status,
		RequestID:  id,
		RetryURL:   ctx.Request().URL.Path,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.status)
	if err := page.Render(ctx, w); err != nil {
		log.Error("failed to render error page", logger.Error(err), logger.Event("render_error_page"))
	}
}
