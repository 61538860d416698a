package radius

import "fmt"

// DecodePair decodes the single top-level RADIUS attribute starting at
// data[0] into zero or more VPs appended to cursor, and returns how many
// bytes of data it consumed.
//
// data must be the remaining packet body from this attribute onward,
// not just this attribute's own bytes: long-extended and WiMAX
// attributes may consume more than their own declared length by
// absorbing continuation fragments that follow as separate top-level
// attributes, and decodeConcat absorbs a run of
// consecutive same-numbered attributes. A caller walking
// a whole packet body should re-slice data by the returned consumed
// count and call DecodePair again until data is empty.
func DecodePair(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, data []byte) (int, error) {
	if len(data) < 2 || data[1] < 2 || int(data[1]) > len(data) {
		return 0, fmt.Errorf("decode pair: insufficient data")
	}

	da, ok := dict.Root().ChildByNum(int(data[0]))
	if !ok {
		da = UnknownAttribute(dict.Root(), nil, int(data[0]))
	}
	dctx.logf("msg", "decoding attribute", "number", data[0], "name", da.Name)

	// Empty attributes are silently ignored, except for Chargeable-User-
	// Identity: WiMAX permits it to be zero-length even though plain
	// RADIUS forbids that, so it gets a fake empty VP instead.
	if data[1] == 2 {
		if da.Number == attrNumChargeableUserIdentity {
			cursor.Append(VP{Descriptor: da, Tag: NoTag, Value: []byte{}, Tainted: true})
		}
		return 2, nil
	}

	if da.Flags.Concat {
		return decodeConcat(cursor, da, data)
	}

	rcode, err := DecodePairValue(dict, cursor, dctx, da, data[2:], int(data[1])-2, len(data)-2, 0)
	if err != nil {
		return 0, err
	}
	return 2 + rcode, nil
}

// DecodePacket decodes every top-level attribute in a RADIUS packet
// body in turn, appending every resulting VP to cursor. It stops and
// returns an error only on a malformed top-level attribute header;
// every failure at or below DecodePairValue already degrades to a raw
// VP rather than propagating.
func DecodePacket(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, data []byte) error {
	for len(data) > 0 {
		consumed, err := DecodePair(dict, cursor, dctx, data)
		if err != nil {
			return err
		}
		if consumed == 0 {
			return fmt.Errorf("decode packet: zero-length decode step")
		}
		data = data[consumed:]
	}
	return nil
}
