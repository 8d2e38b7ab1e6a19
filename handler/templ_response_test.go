package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrform/handler"
)

func serveResponse(resp handler.Response, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h := handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		return resp
	}))
	h(rec, r)
	return rec
}

func datastarRequest() *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/generate", nil)
	r.Header.Set("Datastar-Request", "true")
	return r
}

func TestTemplPartial(t *testing.T) {
	t.Parallel()
	resp := handler.TemplPartial(text(`<div id="qr-result">partial</div>`), text("<html>full</html>"),
		handler.WithTarget("#qr-result"))

	t.Run("plain request gets full page", func(t *testing.T) {
		t.Parallel()
		rec := serveResponse(resp, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "<html>full</html>", rec.Body.String())
	})

	t.Run("datastar request gets patch", func(t *testing.T) {
		t.Parallel()
		rec := serveResponse(resp, datastarRequest())
		body := rec.Body.String()
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Contains(t, body, "event: datastar-patch-elements")
		assert.Contains(t, body, "data: selector #qr-result")
		assert.Contains(t, body, `data: elements <div id="qr-result">partial</div>`)
		assert.NotContains(t, body, "full")
	})
}

func TestTemplWithStatus(t *testing.T) {
	t.Parallel()
	rec := serveResponse(handler.TemplWithStatus(http.StatusTeapot, text("tea")), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "tea", rec.Body.String())
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("streams patches and signals", func(t *testing.T) {
		t.Parallel()
		resp := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendSignals(map[string]any{"loading": true}); err != nil {
				return err
			}
			if err := stream.SendComponent(text(`<p id="a">one</p>`)); err != nil {
				return err
			}
			return stream.SendSignals(map[string]any{"loading": false})
		})
		rec := serveResponse(resp, datastarRequest())
		body := rec.Body.String()

		assert.Contains(t, body, "event: datastar-patch-signals")
		assert.Contains(t, body, `data: signals {"loading":true}`)
		assert.Contains(t, body, `data: elements <p id="a">one</p>`)
		assert.Contains(t, body, `data: signals {"loading":false}`)
	})

	t.Run("plain request rejected", func(t *testing.T) {
		t.Parallel()
		resp := handler.SSE(func(handler.StreamContext) error { return nil })
		rec := serveResponse(resp, httptest.NewRequest(http.MethodPost, "/generate", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("handler error reaches error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
				return handler.SSE(func(handler.StreamContext) error { return errBoom })
			}),
			handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) { got = err }),
		)
		h(httptest.NewRecorder(), datastarRequest())
		assert.ErrorIs(t, got, errBoom)
	})
}
