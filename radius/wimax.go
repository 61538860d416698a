package radius

import (
	"bytes"
	"fmt"
)

// decodeWimax decodes a WiMAX Forum T33-001-R015v01 Vendor-Specific
// attribute, whose sub-attributes may be split across several top-level
// Vendor-Specific attributes joined by a continuation bit.
// data is laid out as [VID(4), WiMAX-Attr, WiMAX-Len, Continuation,
// body...]; attrLen is this VSA's own declared length (VID included);
// packetLen is the remaining packet from the same base, needed to see
// past attrLen into any following Vendor-Specific fragments.
func decodeWimax(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, parent *Descriptor, data []byte, attrLen, packetLen, depth int, vendor uint32) (int, error) {
	if attrLen < 8 {
		dctx.logf("msg", "wimax vsa too short", "name", parent.Name, "len", attrLen)
		return 0, fmt.Errorf("decode wimax: insufficient data")
	}
	if data[5] < 3 {
		dctx.logf("msg", "wimax-len too short", "name", parent.Name)
		return 0, fmt.Errorf("decode wimax: wimax-len too short")
	}
	if int(data[5])+4 != attrLen {
		dctx.logf("msg", "wimax-len does not exactly fill the attribute", "name", parent.Name)
		return 0, fmt.Errorf("decode wimax: wimax-len does not exactly fill the attribute")
	}

	child, ok := parent.ChildByNum(int(data[4]))
	if !ok {
		child = UnknownAttribute(parent, parent.Vendor, int(data[4]))
	}

	// No continuation: decode the attribute in place.
	if data[6]&0x80 == 0 {
		body := data[7 : 4+int(data[5])]
		if _, err := DecodePairValue(dict, cursor, dctx, child, body, len(body), len(body), depth+1); err != nil {
			return 0, err
		}
		return attrLen, nil
	}

	window := packetLen
	wimaxLen := 0
	var bodies [][]byte
	pos := 4
	for pos < window {
		if window-pos < 3 {
			return 0, fmt.Errorf("decode wimax: fragment header overflows packet")
		}
		fragLen := int(data[pos+1])
		if fragLen <= 3 {
			return 0, fmt.Errorf("decode wimax: fragment has no data")
		}
		if pos+fragLen > window {
			return 0, fmt.Errorf("decode wimax: fragment overflows packet")
		}

		more := data[pos+2]&0x80 != 0
		if !more {
			window = pos + fragLen
		}
		if more && pos+fragLen == window {
			return 0, fmt.Errorf("decode wimax: truncated continuation fragment")
		}

		bodies = append(bodies, data[pos+3:pos+fragLen])
		wimaxLen += fragLen - 3
		pos += fragLen
		if !more {
			break
		}

		if window-pos < 9 {
			return 0, fmt.Errorf("decode wimax: insufficient data for vendor-specific wrapper")
		}
		if data[pos] != attrNumVendorSpecific {
			return 0, fmt.Errorf("decode wimax: expected vendor-specific wrapper")
		}
		vsaLen := int(data[pos+1])
		if vsaLen < 9 {
			return 0, fmt.Errorf("decode wimax: vendor-specific wrapper too short")
		}
		if pos+vsaLen > window {
			return 0, fmt.Errorf("decode wimax: vendor-specific wrapper overflows packet")
		}
		if !bytes.Equal(data[:4], data[pos+2:pos+6]) {
			return 0, fmt.Errorf("decode wimax: fragment vendor id mismatch")
		}
		if vsaLen != int(data[pos+7])+6 {
			return 0, fmt.Errorf("decode wimax: wimax attribute does not exactly fill the vsa")
		}
		if data[4] != data[pos+6] {
			return 0, fmt.Errorf("decode wimax: fragment wimax attribute mismatch")
		}
		pos += 6
	}

	if wimaxLen == 0 {
		return 0, fmt.Errorf("decode wimax: no fragment data")
	}

	body := make([]byte, 0, wimaxLen)
	for _, b := range bodies {
		body = append(body, b...)
	}

	if _, err := DecodePairValue(dict, cursor, dctx, child, body, len(body), len(body), depth+1); err != nil {
		return 0, err
	}

	return window, nil
}
