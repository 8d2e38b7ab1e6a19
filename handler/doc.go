// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by the
// configured binders, and returns a Response that renders itself. Wrap turns
// it into an http.HandlerFunc:
//
//	h := handler.HandlerFunc[handler.Context, GenerateRequest](
//		func(ctx handler.Context, req GenerateRequest) handler.Response {
//			return handler.Templ(views.Page(state))
//		},
//	)
//	r.Post("/generate", handler.Wrap(h,
//		handler.WithBinders[handler.Context, GenerateRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, GenerateRequest](errHandler),
//	))
//
// Responses adapt to Datastar: Templ and TemplPartial send element patches
// over server-sent events when the Datastar client made the request and plain
// HTML otherwise. SSE runs a callback that can push several patches and
// signal updates over one stream.
//
// Errors from binding and rendering go to an ErrorHandler. NewErrorHandler
// builds one that logs the failure and renders an error page, or a toast for
// Datastar requests.
package handler
