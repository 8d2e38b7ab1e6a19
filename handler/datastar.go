package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/qrform/pkg/binder"
)

const (
	// DataStarRequestHeader is set to "true" by the Datastar client.
	DataStarRequestHeader = binder.DatastarRequestHeader
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = binder.DatastarQueryParam
)

// Patch mode aliases.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether the Datastar client sent r. Binders use the
// same rule, so a request is bound and answered the same way.
func IsDataStar(r *http.Request) bool {
	return binder.IsDatastarRequest(r)
}
