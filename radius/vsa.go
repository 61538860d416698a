package radius

import "fmt"

// decodeVSA decodes a top-level Vendor-Specific attribute's value into
// one or more VPs, one per vendor sub-attribute found inside it. data
// points at the 4-byte Private Enterprise Number that opens every VSA;
// only 24-bit (RFC-compliant) PENs are accepted, per data[0] == 0.
//
// attrLen is this attribute's own declared length; packetLen is the
// remaining packet from the same base, which WiMAX fragment reassembly
// needs to see past attrLen into any following
// Vendor-Specific attributes.
func decodeVSA(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, parent *Descriptor, data []byte, attrLen, packetLen, depth int) (int, error) {
	if attrLen > packetLen {
		return 0, fmt.Errorf("decode vsa: attr_len exceeds packet_len")
	}
	if attrLen < 5 {
		return 0, fmt.Errorf("decode vsa: insufficient data")
	}
	if data[0] != 0 {
		dctx.logf("msg", "vsa has a private enterprise number wider than 24 bits", "name", parent.Name)
		return 0, fmt.Errorf("decode vsa: only 24-bit private enterprise numbers are supported")
	}

	vendor := uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])

	vendorDA, ok := parent.ChildByNum(int(vendor))
	var dv *Vendor
	if !ok {
		if err := tlvOK(data[4:attrLen], 1, 1); err != nil {
			dctx.logf("msg", "unregistered vsa is not a well-formed tlv run", "vendor", vendor, "err", err)
			return 0, err
		}
		dv = UnknownVendor(vendor)
		vendorDA = &Descriptor{Number: int(vendor), Name: dv.Name, Type: TypeVendor, Parent: parent, Vendor: dv, Flags: Flags{IsUnknown: true}}
	} else {
		v, ok2 := dict.VendorByNum(vendor)
		if !ok2 {
			return 0, fmt.Errorf("decode vsa: internal sanity check failed")
		}
		dv = v
	}

	if vendor == wimaxPEN && dv.IsWiMAX {
		return decodeWimax(dict, cursor, dctx, vendorDA, data, attrLen, packetLen, depth, vendor)
	}

	if err := tlvOK(data[4:attrLen], dv.TypeWidth, dv.LengthWidth); err != nil {
		dctx.logf("msg", "vsa is not a well-formed run of vendor sub-attributes", "vendor", dv.Name, "err", err)
		return 0, err
	}

	var staged Cursor
	p := data[4:attrLen]
	total := 4
	for len(p) > 0 {
		vsaLen, err := decodeVSAInternal(dict, &staged, dctx, vendorDA, p, depth+1, dv)
		if err != nil {
			dctx.logf("msg", "vendor sub-attribute decode failed", "vendor", dv.Name, "err", err)
			return 0, err
		}
		p = p[vsaLen:]
		total += vsaLen
	}

	cursor.Splice(&staged)
	return total, nil
}

// decodeVSAInternal decodes one vendor sub-attribute record out of data,
// per the vendor's declared (typeWidth, lengthWidth) schema - the
// freeform per-vendor analogue of a standard RADIUS attribute header.
// It returns the full record length so the caller can advance past it.
func decodeVSAInternal(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, parent *Descriptor, data []byte, depth int, dv *Vendor) (int, error) {
	hdrLen := dv.TypeWidth + dv.LengthWidth
	if len(data) <= hdrLen {
		return 0, fmt.Errorf("decode vsa internal: insufficient data")
	}

	var attribute int
	switch dv.TypeWidth {
	case 4:
		attribute = int(data[1])<<16 | int(data[2])<<8 | int(data[3])
	case 2:
		attribute = int(data[0])<<8 | int(data[1])
	case 1:
		attribute = int(data[0])
	default:
		return 0, fmt.Errorf("decode vsa internal: internal sanity check failed")
	}

	var attrLen int
	switch dv.LengthWidth {
	case 2:
		attrLen = int(data[dv.TypeWidth+1])
	case 1:
		attrLen = int(data[dv.TypeWidth])
	case 0:
		attrLen = len(data)
	default:
		return 0, fmt.Errorf("decode vsa internal: internal sanity check failed")
	}

	child, ok := parent.ChildByNum(attribute)
	if !ok {
		child = UnknownAttribute(parent, parent.Vendor, attribute)
	}

	if _, err := DecodePairValue(dict, cursor, dctx, child, data[hdrLen:attrLen], attrLen-hdrLen, attrLen-hdrLen, depth+1); err != nil {
		return 0, err
	}

	return attrLen, nil
}
