package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrform/handler"
	"github.com/dmitrymomot/qrform/pkg/form"
	"github.com/dmitrymomot/qrform/pkg/i18n"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// ResultID is the element id of the region patched after each transition.
const ResultID = "qr-result"

// ErrorID is the element id of the error message inside the result region.
const ErrorID = "qr-error"

// PageData is everything the views need to render one form state.
type PageData struct {
	State     form.State
	Lang      string
	T         form.Localizer
	CanSubmit bool
}

func (d PageData) t(key, fallback string) string {
	if d.T == nil {
		return fallback
	}
	return d.T(key, fallback)
}

var esc = templ.EscapeString[string]

// jsString encodes s as a JavaScript string literal for Datastar expressions.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// Page renders the complete document.
func Page(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		submit := d.t("page.submit", "Generate QR Code")
		submitting := d.t("page.submitting", "Generating...")
		label := submit
		if d.State.Loading {
			label = submitting
		}
		disabled := ""
		if !d.CanSubmit {
			disabled = " disabled"
		}
		signals, err := json.Marshal(map[string]any{"text": d.State.Input, "loading": d.State.Loading})
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><style>%s</style><script type="module" src="%s"></script></head>`,
			esc(d.Lang), esc(d.t("page.title", "QR Code Generator")), pageCSS, datastarScript); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<body><main><section class="card" data-signals="%s"><h1>%s</h1><p class="subtitle">%s</p><div id="toast-container"></div>`,
			esc(string(signals)), esc(d.t("page.title", "QR Code Generator")), esc(d.t("page.subtitle", ""))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="/generate" data-on-submit__prevent="@post('/generate')"><label for="qr-input">%s</label><input id="qr-input" name="text" type="text" value="%s" placeholder="%s" data-bind-text><button type="submit"%s data-attr-disabled="$loading || $text.trim().length === 0" data-text="%s">%s</button></form>`,
			esc(d.t("page.label", "Text")),
			esc(d.State.Input),
			esc(d.t("page.placeholder", "")),
			disabled,
			esc("$loading ? "+jsString(submitting)+" : "+jsString(submit)),
			esc(label)); err != nil {
			return err
		}
		if err := Result(d).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</section></main></body></html>`)
		return err
	})
}

// Result renders the error and QR region. It is the unit patched over SSE.
func Result(d PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" aria-live="polite" aria-busy="%s">`, ResultID, strconv.FormatBool(d.State.Loading)); err != nil {
			return err
		}
		if msg := d.State.ErrorMessage(); msg != "" {
			if _, err := fmt.Fprintf(w, `<p id="%s" class="error" role="alert">%s</p>`, ErrorID, esc(msg)); err != nil {
				return err
			}
		}
		if d.State.ShowResult() {
			res := d.State.Result
			alt := strings.ReplaceAll(d.t("page.alt", "QR code for %{text}"), "%{text}", res.Text)
			if _, err := fmt.Fprintf(w, `<figure><img src="%s" alt="%s" width="256" height="256"><figcaption>%s</figcaption></figure>`,
				esc(res.Image), esc(alt), esc(res.Text)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// ErrorPage returns the full-page error view. Labels are translated with t
// in the language of the rendering context.
func ErrorPage(t func(ctx context.Context, key, fallback string) string) func(handler.ErrorPageParams) templ.Component {
	return func(p handler.ErrorPageParams) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><title>%d</title><style>%s</style></head><body><main><section class="card"><h1>%s</h1><p class="error">%s</p><p class="subtitle">%s: <code>%s</code></p><p><a href="%s">%s</a></p></section></main></body></html>`,
				esc(i18n.GetLocale(ctx)), p.StatusCode, pageCSS,
				esc(t(ctx, "errors.title", "Something went wrong")),
				esc(p.Error),
				esc(t(ctx, "errors.request_id", "Request ID")), esc(p.RequestID),
				esc(string(templ.URL(p.RetryURL))), esc(t(ctx, "errors.retry", "Try again")))
			return err
		})
	}
}

// ErrorToast renders a dismissable notice for Datastar clients.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s" role="alert" data-request-id="%s">%s</div>`,
			esc(p.Type), esc(p.RequestID), esc(p.Message))
		return err
	})
}

const pageCSS = `*{box-sizing:border-box;margin:0}` +
	`body{min-height:100vh;display:grid;place-items:center;padding:2rem;background:#0f172a;color:#e2e8f0;font-family:Inter,system-ui,-apple-system,BlinkMacSystemFont,"Segoe UI",sans-serif}` +
	`.card{width:min(520px,95vw);background:#111827;border-radius:1.25rem;padding:2.5rem;box-shadow:0 30px 80px rgba(2,6,23,.6);border:1px solid rgba(148,163,184,.1)}` +
	`h1{margin-bottom:1.5rem;font-size:2rem;text-align:center;color:#f8fafc;letter-spacing:.03em}` +
	`.subtitle{margin-bottom:1.5rem;text-align:center;color:#94a3b8;font-size:.95rem}` +
	`label{display:block;margin-bottom:.5rem;font-weight:600;color:#cbd5f5}` +
	`input{width:100%;padding:.85rem 1.1rem;border-radius:.9rem;border:1px solid rgba(148,163,184,.35);background:rgba(15,23,42,.9);color:#e2e8f0;margin-bottom:1.25rem;font-size:1rem;outline:none;transition:border-color 120ms ease,box-shadow 120ms ease}` +
	`input:focus{border-color:#3b82f6;box-shadow:0 0 0 2px rgba(59,130,246,.25)}` +
	`button{width:100%;padding:.95rem 1rem;border-radius:.9rem;border:none;background-image:linear-gradient(120deg,#2563eb,#7c3aed);color:#f8fafc;font-weight:600;font-size:1.05rem;cursor:pointer;transition:transform 150ms ease,box-shadow 150ms ease;box-shadow:0 15px 40px rgba(59,130,246,.35)}` +
	`button:hover:not(:disabled){transform:translateY(-2px)}` +
	`button:disabled{background-image:linear-gradient(120deg,#334155,#1e293b);cursor:not-allowed;box-shadow:none}` +
	`.error{color:#f87171;margin-top:1.25rem;text-align:center}` +
	`figure{margin-top:2rem;text-align:center;background:rgba(15,23,42,.6);border-radius:1rem;padding:1.5rem;border:1px solid rgba(148,163,184,.1)}` +
	`figure img{width:256px;height:256px;margin:0 auto;border-radius:.75rem;background:#fff}` +
	`figcaption{margin-top:.9rem;font-size:.95rem;color:#cbd5f5}` +
	`.toast{margin-bottom:1rem;padding:.75rem 1rem;border-radius:.75rem;background:#7f1d1d;color:#fee2e2}` +
	`.toast-warning{background:#78350f;color:#fef3c7}` +
	`a{color:#93c5fd}`
