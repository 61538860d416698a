// Command raddecode decodes a single RADIUS packet body from a file and
// prints the resulting attribute/value pairs, one per line. It exists
// to exercise package radius end to end from the command line; it is
// not a RADIUS server or client.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/katalix/go-radius/dictionary"
	"github.com/katalix/go-radius/radius"
)

func main() {
	var (
		secret   = flag.String("secret", "", "shared secret used to unwrap obfuscated attributes")
		vector   = flag.String("vector", "", "32 hex characters: the request authenticator")
		zeros    = flag.Bool("tunnel-password-zeros", false, "require Tunnel-Password padding past the embedded length to be zero")
		verbose  = flag.Bool("v", false, "enable debug logging")
		dictPath = flag.String("dict", "", "path to a TOML dictionary file; falls back to the built-in dictionary when unset")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <packet-body-hex-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.NewLogfmtLogger(os.Stderr)
	if !*verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		level.Error(logger).Log("msg", "failed to read packet body", "err", err)
		os.Exit(1)
	}
	body, err := hex.DecodeString(trimHex(raw))
	if err != nil {
		level.Error(logger).Log("msg", "failed to decode hex", "err", err)
		os.Exit(1)
	}

	dctx := &radius.DecoderContext{
		Secret:              []byte(*secret),
		TunnelPasswordZeros: *zeros,
		Logger:              logger,
	}
	if v, err := hex.DecodeString(*vector); err == nil && len(v) == 16 {
		copy(dctx.Vector[:], v)
	}

	dict := dictionary.Builtin()
	if *dictPath != "" {
		loaded, err := dictionary.LoadFile(*dictPath)
		if err != nil {
			level.Error(logger).Log("msg", "failed to load dictionary", "path", *dictPath, "err", err)
			os.Exit(1)
		}
		dict = loaded
	}

	var cursor radius.Cursor
	if err := radius.DecodePacket(dict, &cursor, dctx, body); err != nil {
		level.Error(logger).Log("msg", "decode failed", "err", err)
		os.Exit(1)
	}

	for _, vp := range cursor.VPs() {
		fmt.Printf("%s = %v\n", vp.Descriptor.Name, vp.Value)
	}
}

func trimHex(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
			out = append(out, c)
		}
	}
	return string(out)
}
