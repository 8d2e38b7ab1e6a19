package binder

import (
	"errors"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DatastarRequestHeader is set to "true" by the Datastar client.
	DatastarRequestHeader = "Datastar-Request"
	// DatastarQueryParam carries signals on GET requests.
	DatastarQueryParam = "datastar"
)

// Signals binds the Datastar signal payload into v. Requests not sent by the
// Datastar client are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !IsDatastarRequest(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}

// IsDatastarRequest reports whether r comes from the Datastar client: the
// request header, an event-stream Accept header or the signals query
// parameter.
func IsDatastarRequest(r *http.Request) bool {
	if r.Header.Get(DatastarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has(DatastarQueryParam)
}
