package form

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/qrform/pkg/logger"
)

// DefaultText is generated by Init so the page is never empty on first render.
const DefaultText = "Hello from QR frontend"

// Encoder turns trimmed text into an opaque image.
type Encoder interface {
	Encode(ctx context.Context, text string) (string, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(ctx context.Context, text string) (string, error)

// Encode calls f.
func (f EncoderFunc) Encode(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Renderer consumes every state the controller moves into.
type Renderer interface {
	Render(ctx context.Context, s State) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, s State) error

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, s State) error {
	return f(ctx, s)
}

// Localizer returns the text for key, or fallback when there is none.
type Localizer func(key, fallback string) string

// Controller owns the session state of one form.
// It is safe for concurrent use; overlapping Generate calls are rejected.
type Controller struct {
	mu          sync.Mutex
	state       State
	initialized bool

	encoder     Encoder
	renderer    Renderer
	localize    Localizer
	defaultText string
	log         *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer registers the consumer notified after every transition.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithLocalizer sets how user-visible messages are produced.
func WithLocalizer(l Localizer) Option {
	return func(c *Controller) {
		if l != nil {
			c.localize = l
		}
	}
}

// WithDefaultText overrides the text generated by Init.
func WithDefaultText(text string) Option {
	return func(c *Controller) {
		if strings.TrimSpace(text) != "" {
			c.defaultText = text
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController returns an Idle controller using enc for encoding.
func NewController(enc Encoder, opts ...Option) *Controller {
	c := &Controller{
		state:       State{Phase: PhaseIdle},
		encoder:     enc,
		localize:    func(_, fallback string) string { return fallback },
		defaultText: DefaultText,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit reports whether the generate action is available: nothing is in
// flight and the trimmed input is not empty.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.state.Loading && strings.TrimSpace(c.state.Input) != ""
}

// UpdateText replaces the raw input verbatim.
func (c *Controller) UpdateText(text string) {
	c.mu.Lock()
	c.state.Input = text
	c.mu.Unlock()
}

// Init generates the default text the first time it is called and does
// nothing afterwards. The input is pre-filled with the same text.
func (c *Controller) Init(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.initialized {
		s := c.state
		c.mu.Unlock()
		return s, nil
	}
	c.initialized = true
	c.state.Input = c.defaultText
	c.mu.Unlock()

	return c.Generate(ctx, c.defaultText)
}

// Generate trims text, validates it and asks the encoder for an image.
// Validation and encoder failures are stored in the returned state, not
// returned as errors. Loading is true only while the encoder runs.
func (c *Controller) Generate(ctx context.Context, text string) (State, error) {
	loading, err := c.fire(Submit{})
	if err != nil {
		if errors.Is(err, ErrNoTransition) {
			return loading, ErrGenerationInProgress
		}
		return loading, err
	}
	renderErr := c.render(ctx, loading)

	trimmed := strings.TrimSpace(text)
	var ev Event
	if trimmed == "" {
		ev = Rejected{Err: &ValidationError{
			Message: c.localize(MessageEmptyText, DefaultEmptyTextMessage),
		}}
	} else {
		start := time.Now()
		image, encErr := c.encoder.Encode(ctx, trimmed)
		c.log.DebugContext(ctx, "encoder finished",
			logger.Component("form"),
			logger.Duration(time.Since(start)),
			logger.Error(encErr),
		)
		if encErr != nil {
			ev = Rejected{Err: c.encodeError(encErr)}
		} else {
			ev = Encoded{Result: Result{Text: trimmed, Image: image}}
		}
	}

	settled, err := c.fire(ev)
	if err != nil {
		return settled, err
	}
	c.log.DebugContext(ctx, "form settled",
		logger.Component("form"),
		logger.Event(ev.Name()),
		slog.String("phase", settled.Phase.Name()),
	)

	return settled, errors.Join(renderErr, c.render(ctx, settled))
}

// fire applies ev under the lock and returns the resulting state.
func (c *Controller) fire(ev Event) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := Transition(c.state, ev)
	if err != nil {
		return c.state, err
	}
	c.state = next
	return next, nil
}

func (c *Controller) render(ctx context.Context, s State) error {
	if c.renderer == nil {
		return nil
	}
	if err := c.renderer.Render(ctx, s); err != nil {
		return errors.Join(ErrRenderFailed, err)
	}
	return nil
}

func (c *Controller) encodeError(err error) *EncodeError {
	msg := err.Error()
	if strings.TrimSpace(msg) == "" {
		msg = c.localize(MessageUnknown, DefaultUnknownMessage)
	}
	return &EncodeError{Message: msg, Err: err}
}
