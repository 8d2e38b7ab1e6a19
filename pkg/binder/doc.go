// Package binder fills request structs from HTTP requests.
//
// Each binder has the signature func(*http.Request, any) error so it can be
// passed to handler.WithBinders. A binder that does not handle a request
// returns ErrBinderNotApplicable and the next binder is tried.
//
//   - Form binds application/x-www-form-urlencoded bodies using `form` tags.
//   - Signals binds Datastar signals (JSON body, or the "datastar" query
//     parameter on GET) using `json` tags.
//
// # Usage
//
//	type GenerateRequest struct {
//		Text string `form:"text" json:"text"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, GenerateRequest](
//		binder.Signals(),
//		binder.Form(),
//	))
package binder
