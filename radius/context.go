package radius

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// DecoderContext carries the per-packet state the decoder needs but
// which isn't part of the wire data itself: the shared secret and
// request authenticator used by the obfuscation unwrappers, a flag
// governing Tunnel-Password's zero-padding tolerance, and an optional
// logger for decode diagnostics.
//
// A DecoderContext is immutable for the duration of a single decode.
// Distinct goroutines decoding distinct packets must use distinct
// DecoderContext values; nothing in package radius synchronises access
// to one.
type DecoderContext struct {
	// Secret is the shared secret for the NAS/RADIUS server pair.
	Secret []byte
	// Vector is the 16-byte request authenticator.
	Vector [16]byte
	// TunnelPasswordZeros requires all bytes in a Tunnel-Password
	// ciphertext past the embedded length, up to the padded block
	// boundary, to be zero.
	TunnelPasswordZeros bool
	// Logger receives decode diagnostics at level.Debug. A nil Logger
	// disables logging entirely.
	Logger log.Logger
}

func (ctx *DecoderContext) logf(keyvals ...interface{}) {
	if ctx == nil || ctx.Logger == nil {
		return
	}
	_ = level.Debug(ctx.Logger).Log(keyvals...)
}
