/*
Package radius implements the RADIUS attribute decoder: conversion of the
raw octet stream of a RADIUS packet body into a structured sequence of
attribute/value pairs (VPs), driven by an external dictionary.

Package radius covers RFC2865 (base), RFC2866 (accounting), RFC2868
(Tunnel-Password), RFC2869 (concatenated long attributes), RFC6929
(extended and long-extended attributes, Extended-Vendor-Specific) and the
WiMAX Forum T33-001-R015v01 fragmented Vendor-Specific attribute scheme.

Package radius does not implement packet-level framing (the RADIUS
header, Message-Authenticator validation, overall packet length checks),
routing, encoding, or persistent dictionary mutation. Callers are expected
to supply a validated packet body, a Dictionary, and a DecoderContext
carrying the shared secret and request authenticator.

Usage

	dict := dictionary.Builtin()
	ctx := &radius.DecoderContext{
		Secret: []byte("testing123"),
		Vector: vector,
	}
	cursor := &radius.Cursor{}
	consumed, err := radius.DecodePair(dict, cursor, ctx, body)

Logging

Package radius uses structured logging via the go-kit logger:
https://godoc.org/github.com/go-kit/kit/log, with go-kit levels to
separate verbose diagnostics from nothing (the decoder has no normal-path
informational output - diagnostics only fire on malformed input, and are
always emitted at level.Debug since a single bad attribute never aborts
the decode, per the fallback-to-raw policy described in DecodePairValue).

To disable all logging from package radius, leave DecoderContext.Logger
nil.
*/
package radius
