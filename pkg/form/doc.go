// Package form implements the QR form controller: the session state behind a
// "type text, get a QR code" page and the generate operation that drives it.
//
// The controller owns a small state machine with three states. It starts
// Idle, moves to Loading when Generate is called and settles in either
// Success (holding a Result) or Failed (holding an error). Settled states can
// be left again by the next Generate, so the machine never terminates.
//
// State changes are computed by Transition, a pure function of the current
// State and an Event. The Controller adds the side effects around it: calling
// the Encoder, localizing messages and notifying a Renderer after every
// change. Presentation is therefore a replaceable consumer of State.
//
// # Usage
//
//	ctrl := form.NewController(qrcode.NewEncoder(),
//		form.WithRenderer(renderer),
//		form.WithLocalizer(localize),
//	)
//	ctrl.Init(ctx) // generates the default text once
//
//	ctrl.UpdateText("https://example.com")
//	state, err := ctrl.Generate(ctx, "https://example.com")
//	if err != nil {
//		// ErrGenerationInProgress or ErrRenderFailed; validation and encoder
//		// failures are reported through state.Err instead.
//	}
//
// # Error Handling
//
// Validation and encoder failures never escape Generate. They are stored in
// State.Err as *ValidationError or *EncodeError and rendered through
// State.ErrorMessage. Go errors returned by Generate describe misuse
// (ErrGenerationInProgress) or presentation failures (ErrRenderFailed).
package form
