package radius

import "fmt"

// decodeConcat reassembles a run of RFC2869 "concatenated" attributes -
// consecutive top-level attributes sharing the same number - into a
// single VP whose value is the concatenation of every instance's body.
// data starts at the first attribute's type byte; only the leading run
// of same-numbered attributes is consumed, mirroring decode_concat's
// "attributes MUST be consecutive" rule.
//
// The caller (DecodePair) has already filtered out a length-2 first
// attribute before ever reaching here, so an empty body can only show
// up on a later member of the run. decode_concat treats that as fatal
// to the whole call rather than truncating the run, so any member with
// length <= 2 aborts the decode and the error propagates out of
// DecodePacket unlike every other container decoder in this package.
func decodeConcat(cursor *Cursor, parent *Descriptor, data []byte) (int, error) {
	attrNum := data[0]

	total := 0
	p := data
	for len(p) > 0 {
		if p[1] <= 2 {
			return 0, fmt.Errorf("decode concat: attribute too short")
		}
		if int(p[1]) > len(p) {
			return 0, fmt.Errorf("decode concat: attribute overflows buffer")
		}
		total += int(p[1]) - 2
		p = p[p[1]:]
		if len(p) == 0 || p[0] != attrNum {
			break
		}
	}
	consumed := len(data) - len(p)

	value := make([]byte, 0, total)
	p = data[:consumed]
	for len(p) > 0 {
		value = append(value, p[2:p[1]]...)
		p = p[p[1]:]
	}

	cursor.Append(VP{Descriptor: parent, Tag: NoTag, Value: value, Tainted: true})
	return consumed, nil
}
