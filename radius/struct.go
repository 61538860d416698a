package radius

import "sort"

// orderedFields returns d's children sorted by attribute number, which
// for a struct descriptor is also field order: field 1 comes first in
// the wire layout, field 2 next, and so on.
func (d *Descriptor) orderedFields() []*Descriptor {
	fields := make([]*Descriptor, 0, len(d.children))
	for _, c := range d.children {
		fields = append(fields, c)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Number < fields[j].Number })
	return fields
}

// decodeStruct decodes a fixed-layout compound attribute: each child
// field in turn consumes its declared FixedLength bytes, in field-number
// order. A trailing child of type tlv, if any, receives whatever bytes
// remain after the fixed fields.
//
// If the trailing TLV tail fails to decode, the remainder is attached as
// a raw unknown-octets VP instead, but the fixed-field VPs already
// emitted are kept: a struct decode is treated as partial success rather
// than rolled back entirely.
func decodeStruct(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, parent *Descriptor, data []byte, depth int) (int, error) {
	p := data
	var tail *Descriptor

	for _, field := range parent.orderedFields() {
		if field.Type == TypeTLV {
			tail = field
			continue
		}
		if field.Flags.FixedLength <= 0 || len(p) < field.Flags.FixedLength {
			break
		}
		value, err := decodeLeafValue(field.Type, p[:field.Flags.FixedLength])
		if err != nil {
			cursor.Append(VP{Descriptor: UnknownAttribute(parent, parent.Vendor, field.Number), Value: append([]byte(nil), p[:field.Flags.FixedLength]...), Tainted: true})
		} else {
			cursor.Append(VP{Descriptor: field, Value: value, Tainted: true})
		}
		p = p[field.Flags.FixedLength:]
	}

	if len(p) > 0 && tail != nil {
		if _, err := decodeTLV(dict, cursor, dctx, tail, p, depth+1); err != nil {
			cursor.Append(VP{Descriptor: UnknownAttribute(parent, parent.Vendor, tail.Number), Value: append([]byte(nil), p...), Tainted: true})
		}
	}

	return len(data), nil
}
