package radius

import "fmt"

// decodeExtended decodes an RFC6929 extended or long-extended attribute.
// data is laid out as [Ext-Attr, Flag, value...] - the Ext-Attr byte
// itself has already been resolved to child by the caller. outerType is
// the top-level RADIUS attribute number (241-246) this extended value
// was carried under; it, together with the Ext-Attr byte already
// encoded in data[0], is how a long-extended attribute recognises which
// of the following top-level attributes are its own continuation
// fragments rather than unrelated attributes.
//
// attrLen covers just this attribute's own declared span; packetLen is
// the remaining packet from the same base offset as data, which is how
// fragments beyond attrLen become visible to the scan below.
func decodeExtended(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, child *Descriptor, outerType byte, data []byte, attrLen, packetLen, depth int) (int, error) {
	if attrLen < 3 {
		return 0, fmt.Errorf("decode extended: insufficient data")
	}

	// No continuation: decode the value in place.
	if data[1]&0x80 == 0 {
		if _, err := DecodePairValue(dict, cursor, dctx, child, data[2:attrLen], attrLen-2, attrLen-2, depth+1); err != nil {
			return 0, err
		}
		return attrLen, nil
	}

	extAttr := data[0]
	fraglen := attrLen - 2

	type fragment struct {
		body []byte
	}
	var frags []fragment

	rest := data[attrLen:packetLen]
	consumedAfterFirst := 0
	for len(rest) > 0 {
		if len(rest) < 4 || rest[1] < 4 || rest[2] != extAttr || int(rest[1]) > len(rest) || rest[0] != outerType {
			break
		}
		more := rest[3]&0x80 != 0
		frags = append(frags, fragment{body: rest[4:rest[1]]})
		fraglen += int(rest[1]) - 4
		consumedAfterFirst += int(rest[1])
		rest = rest[rest[1]:]
		if !more {
			break
		}
	}

	head := make([]byte, 0, fraglen)
	head = append(head, data[2:attrLen]...)
	for _, f := range frags {
		head = append(head, f.body...)
	}

	if _, err := DecodePairValue(dict, cursor, dctx, child, head, len(head), len(head), depth+1); err != nil {
		return 0, err
	}

	return attrLen + consumedAfterFirst, nil
}
