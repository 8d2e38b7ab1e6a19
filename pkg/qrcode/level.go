package qrcode

import (
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Level is the error correction level of a QR code.
type Level int

const (
	// Low recovers about 7% of data.
	Low Level = iota
	// Medium recovers about 15% of data.
	Medium
	// Quartile recovers about 25% of data.
	Quartile
	// High recovers about 30% of data.
	High
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case Quartile:
		return "quartile"
	case High:
		return "high"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name ("low", "medium", "quartile", "high" or
// their single letter forms) into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return Low, nil
	case "medium", "m":
		return Medium, nil
	case "quartile", "q":
		return Quartile, nil
	case "high", "h":
		return High, nil
	default:
		return Medium, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// recovery maps Level onto the upstream naming, which calls quartile "High"
// and high "Highest".
func (l Level) recovery() skipqrcode.RecoveryLevel {
	switch l {
	case Low:
		return skipqrcode.Low
	case Quartile:
		return skipqrcode.High
	case High:
		return skipqrcode.Highest
	default:
		return skipqrcode.Medium
	}
}
