package radius

import "fmt"

// tlvOK validates that data is a well-formed run of consecutive TLVs
// under the given (typeWidth, lengthWidth) schema, without decoding any
// of them. It mirrors fr_radius_decode_tlv_ok, including its two
// RFC-looser-than-strict concessions: a zero attribute number is
// tolerated when typeWidth == 1 (the "Colubris quirk"), and
// lengthWidth == 0 treats the entire remaining buffer as a single
// attribute's value with no further length byte to check.
func tlvOK(data []byte, typeWidth, lengthWidth int) error {
	if lengthWidth > 2 || typeWidth == 0 || typeWidth > 4 {
		return fmt.Errorf("tlv ok: invalid schema (%d, %d)", typeWidth, lengthWidth)
	}

	for len(data) > 0 {
		if typeWidth+lengthWidth > len(data) {
			return fmt.Errorf("tlv ok: attribute header overflows container")
		}

		switch typeWidth {
		case 4:
			if data[0] == 0 && data[1] == 0 && data[2] == 0 && data[3] == 0 {
				return fmt.Errorf("tlv ok: invalid attribute 0")
			}
			if data[0] != 0 {
				return fmt.Errorf("tlv ok: invalid attribute > 2^24")
			}
		case 2:
			if data[0] == 0 && data[1] == 0 {
				return fmt.Errorf("tlv ok: invalid attribute 0")
			}
		case 1:
			// Zero is allowed here: the Colubris dictionary uses it.
		default:
			return fmt.Errorf("tlv ok: internal sanity check failed")
		}

		var attrLen int
		switch lengthWidth {
		case 0:
			return nil
		case 2:
			if data[typeWidth] != 0 {
				return fmt.Errorf("tlv ok: attribute is longer than 256 octets")
			}
			attrLen = int(data[typeWidth+lengthWidth-1])
		case 1:
			attrLen = int(data[typeWidth+lengthWidth-1])
		default:
			return fmt.Errorf("tlv ok: internal sanity check failed")
		}

		if attrLen < typeWidth+lengthWidth {
			return fmt.Errorf("tlv ok: attribute header has invalid length")
		}
		if attrLen > len(data) {
			return fmt.Errorf("tlv ok: attribute overflows container")
		}

		data = data[attrLen:]
	}

	return nil
}

// decodeTLV walks a buffer of child TLVs under parent, decoding each
// child's value recursively and staging the results in a local cursor.
// Staging keeps the operation atomic per container: if any child fails,
// nothing from this container is appended to cursor, matching
// fr_radius_decode_tlv's behaviour of freeing its local pair list on
// error rather than merging a partial result.
func decodeTLV(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, parent *Descriptor, data []byte, depth int) (int, error) {
	if len(data) < 3 {
		dctx.logf("msg", "tlv container too short", "name", parent.Name, "len", len(data))
		return 0, fmt.Errorf("decode tlv: insufficient data")
	}
	if err := tlvOK(data, 1, 1); err != nil {
		dctx.logf("msg", "tlv container malformed", "name", parent.Name, "err", err)
		return 0, err
	}

	var staged Cursor
	p := data
	for len(p) > 0 {
		child, ok := parent.ChildByNum(int(p[0]))
		if !ok {
			child = UnknownAttribute(parent, parent.Vendor, int(p[0]))
		}

		childLen := int(p[1])
		_, err := DecodePairValue(dict, &staged, dctx, child, p[2:childLen], childLen-2, childLen-2, depth+1)
		if err != nil {
			dctx.logf("msg", "tlv child decode failed", "parent", parent.Name, "number", p[0], "err", err)
			return 0, err
		}
		p = p[childLen:]
	}

	cursor.Splice(&staged)
	return len(data), nil
}
