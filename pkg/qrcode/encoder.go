package qrcode

import (
	"context"
	"time"
)

// Encoder produces data URIs with a fixed set of options.
// It satisfies form.Encoder.
type Encoder struct {
	opts    Options
	metrics *Metrics
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithOptions overrides the rendering options. Zero width and negative
// margin fall back to the defaults.
func WithOptions(opts Options) EncoderOption {
	return func(e *Encoder) {
		e.opts = opts.normalize()
	}
}

// WithMetrics records every Encode call on m. Nil is ignored.
func WithMetrics(m *Metrics) EncoderOption {
	return func(e *Encoder) {
		if m != nil {
			e.metrics = m
		}
	}
}

// NewEncoder returns an Encoder using DefaultOptions unless overridden.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Options returns the options the encoder renders with.
func (e *Encoder) Options() Options {
	return e.opts
}

// Encode renders text as a PNG data URI. A cancelled context is reported
// before any work is done.
func (e *Encoder) Encode(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		e.metrics.observe(err, 0)
		return "", err
	}

	start := time.Now()
	uri, err := GenerateBase64Image(text, e.opts)
	e.metrics.observe(err, time.Since(start))
	return uri, err
}

// Ping encodes a fixed payload so readiness probes can tell whether the
// encoder works.
func (e *Encoder) Ping(ctx context.Context) error {
	_, err := e.Encode(ctx, "ping")
	return err
}
