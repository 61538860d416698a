package radius

// NoTag is the sentinel Tag value for attributes which either carry no
// tag byte at all, or whose tag byte was out of the valid 0x01-0x1F range.
const NoTag = 0

// IPPrefix is the value box for the ipv4_prefix, ipv6_prefix and
// combo_ip_prefix semantic types.
type IPPrefix struct {
	// Length is the prefix length in bits.
	Length uint8
	// IP holds the masked address, either 4 or 16 bytes.
	IP []byte
}

// VP is a single decoded attribute/value pair: a descriptor bound to a
// typed value. Every VP originating from a wire decode carries
// Tainted == true; VPs fabricated for testing or by an encoder may leave
// it false.
//
// Value holds a Go representation matching Descriptor.Type, with one
// exception: if decoding fails partway through, Descriptor is replaced
// with a fabricated "unknown" descriptor of type octets and Value
// becomes the raw, undecoded bytes.
type VP struct {
	Descriptor *Descriptor
	Tag        uint8
	Value      interface{}
	Tainted    bool
}

// Cursor is an ordered append-only sink of VPs. It supports Splice, which
// appends the contents of one cursor to the tail of another; this is how
// TLV/VSA/extended sub-decoders stage their output before committing it
// atomically to the caller's cursor.
type Cursor struct {
	vps []VP
}

// Append adds vp to the tail of the cursor.
func (c *Cursor) Append(vp VP) {
	c.vps = append(c.vps, vp)
}

// Splice appends the contents of src to the tail of c, in order, and
// clears src.
func (c *Cursor) Splice(src *Cursor) {
	c.vps = append(c.vps, src.vps...)
	src.vps = nil
}

// VPs returns the cursor's contents as a slice. The returned slice must
// not be mutated by the caller; Cursor retains ownership.
func (c *Cursor) VPs() []VP {
	return c.vps
}

// Len returns the number of VPs currently held by the cursor.
func (c *Cursor) Len() int {
	return len(c.vps)
}
