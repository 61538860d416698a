package radius

import (
	"encoding/binary"
	"fmt"
	"math"
	"net"
	"time"
)

// decodeLeafValue converts a bounds-checked, semantically-typed octet
// span into its Go representation. It handles every scalar semantic
// type; ipv4_prefix, ipv6_prefix and combo_ip_prefix have their own
// validation and are handled by decodeLeafOrPrefix below before
// falling back here.
func decodeLeafValue(t AttrType, data []byte) (interface{}, error) {
	switch t {
	case TypeString:
		return string(data), nil
	case TypeOctets, TypeAbinary:
		return boundsCopy(data, 0, len(data))
	case TypeIPv4Addr, TypeIPv6Addr:
		out, err := boundsCopy(data, 0, len(data))
		if err != nil {
			return nil, err
		}
		return net.IP(out), nil
	case TypeBool:
		return data[0] != 0, nil
	case TypeUint8:
		return data[0], nil
	case TypeUint16:
		return binary.BigEndian.Uint16(data), nil
	case TypeUint32:
		return binary.BigEndian.Uint32(data), nil
	case TypeUint64:
		return binary.BigEndian.Uint64(data), nil
	case TypeInt8:
		return int8(data[0]), nil
	case TypeInt16:
		return int16(binary.BigEndian.Uint16(data)), nil
	case TypeInt32:
		return int32(binary.BigEndian.Uint32(data)), nil
	case TypeInt64:
		return int64(binary.BigEndian.Uint64(data)), nil
	case TypeFloat32:
		return math.Float32frombits(binary.BigEndian.Uint32(data)), nil
	case TypeFloat64:
		return math.Float64frombits(binary.BigEndian.Uint64(data)), nil
	case TypeDate:
		return time.Unix(int64(binary.BigEndian.Uint32(data)), 0).UTC(), nil
	case TypeTimeDelta:
		return time.Duration(binary.BigEndian.Uint32(data)) * time.Second, nil
	case TypeEthernet:
		var mac [6]byte
		copy(mac[:], data)
		return mac, nil
	case TypeIfid:
		var ifid [8]byte
		copy(ifid[:], data)
		return ifid, nil
	case TypeSize:
		return binary.BigEndian.Uint64(data), nil
	}
	return nil, fmt.Errorf("decode leaf value: unsupported type %s", t)
}

// maskIP zeroes every bit of ip past the first prefixBits bits, matching
// fr_ipaddr_mask's masking of non-significant trailing bits.
func maskIP(ip []byte, prefixBits int) {
	for i := range ip {
		bitOffset := i * 8
		switch {
		case bitOffset >= prefixBits:
			ip[i] = 0
		case bitOffset+8 > prefixBits:
			keep := prefixBits - bitOffset
			ip[i] &= 0xff << (8 - keep)
		}
	}
}

// decodeLeafOrPrefix handles the RADIUS "magic" ipv4_prefix/ipv6_prefix
// wire format - a reserved byte, a prefix-length byte, then the masked
// address - before delegating every other semantic type to
// decodeLeafValue.
func decodeLeafOrPrefix(t AttrType, data []byte) (interface{}, error) {
	switch t {
	case TypeIPv4Prefix:
		if data[0] != 0 {
			return nil, fmt.Errorf("decode ipv4 prefix: reserved byte must be zero")
		}
		prefix := data[1] & 0x3f
		if prefix > 32 {
			return nil, fmt.Errorf("decode ipv4 prefix: prefix length out of range")
		}
		ip := make([]byte, 4)
		copy(ip, data[2:])
		maskIP(ip, int(prefix))
		return &IPPrefix{Length: prefix, IP: ip}, nil

	case TypeIPv6Prefix:
		if data[0] != 0 {
			return nil, fmt.Errorf("decode ipv6 prefix: reserved byte must be zero")
		}
		if data[1] > 128 {
			return nil, fmt.Errorf("decode ipv6 prefix: prefix length out of range")
		}
		if int(data[1])>>3 > len(data)-2 {
			return nil, fmt.Errorf("decode ipv6 prefix: insufficient data for declared prefix length")
		}
		ip := make([]byte, 16)
		copy(ip, data[2:])
		maskIP(ip, int(data[1]))
		return &IPPrefix{Length: data[1], IP: ip}, nil

	default:
		return decodeLeafValue(t, data)
	}
}

// DecodePairValue decodes the value of a single attribute, already
// separated from its own type/length header, into zero or more VPs
// appended to cursor. parent identifies the attribute's position in the
// dictionary; data/attrLen is this attribute's own declared span;
// packetLen is how much of the underlying packet remains visible from
// the same base offset, which long-extended and WiMAX fragment
// reassembly need to see past attrLen.
//
// Any failure below the top level degrades to a raw VP - a fabricated
// "unknown" octets descriptor holding whatever bytes were being
// examined - rather than aborting the whole decode.
func DecodePairValue(dict *Dictionary, cursor *Cursor, dctx *DecoderContext, parent *Descriptor, data []byte, attrLen, packetLen, depth int) (int, error) {
	if parent == nil || attrLen > packetLen || attrLen > maxAttrLen {
		return 0, fmt.Errorf("decode pair value: invalid arguments")
	}
	if attrLen == 0 {
		return 0, nil
	}

	p := data[:attrLen]
	dataLen := attrLen
	tag := uint8(NoTag)

	if parent.Flags.HasTag && dataLen > 1 && (p[0] < 0x20 || parent.Flags.Subtype == SubtypeTunnelPassword) {
		if dataLen >= 256 {
			return 0, fmt.Errorf("decode pair value: tagged attribute too long")
		}
		switch parent.Type {
		case TypeString:
			tag = p[0]
			dataLen--
			p = append([]byte(nil), p[1:1+dataLen]...)
		case TypeUint32:
			buf := append([]byte(nil), p[:attrLen]...)
			tag = buf[0]
			buf[0] = 0
			p = buf
		default:
			return 0, fmt.Errorf("decode pair value: only string and integer attributes may carry a tag")
		}
	}

	raw := func() (int, error) {
		rawValue, err := boundsCopy(p, 0, dataLen)
		if err != nil {
			return 0, err
		}
		dctx.logf("msg", "falling back to raw value", "number", parent.Number, "name", parent.Name, "type", parent.Type)
		unknown := UnknownAttribute(parent.Parent, parent.Vendor, parent.Number)
		cursor.Append(VP{Descriptor: unknown, Tag: NoTag, Value: rawValue, Tainted: true})
		return attrLen, nil
	}

	switch parent.Type {
	case TypeTLV, TypeVSA, TypeExtended, TypeStruct:
		if depth >= maxRecursionDepth {
			return raw()
		}
	}

	if dctx != nil && parent.Flags.Subtype != SubtypeNone {
		if attrLen > 253 {
			return 0, fmt.Errorf("decode pair value: encrypted attribute too long")
		}
		buf := append([]byte(nil), p[:dataLen]...)
		p = buf

		switch parent.Flags.Subtype {
		case SubtypeUserPassword:
			n := decodeUserPassword(buf, dctx.Secret, dctx.Vector[:])
			if parent.Flags.FixedLength > 0 {
				if dataLen > parent.Flags.FixedLength {
					dataLen = parent.Flags.FixedLength
				}
			} else {
				dataLen = n
			}
		case SubtypeTunnelPassword:
			n, err := decodeTunnelPassword(buf, dctx.Secret, dctx.Vector[:], dctx.TunnelPasswordZeros)
			if err != nil {
				dctx.logf("msg", "tunnel password decode failed", "name", parent.Name, "err", err)
				return raw()
			}
			dataLen = n
		case SubtypeAscendSecret:
			out := make([]byte, authVectorLen)
			n := decodeAscendSecret(out, dctx.Secret, dctx.Vector[:], buf)
			p = out
			dataLen = n
		}
	}

	rng, haveRange := semanticLengthRange[parent.Type]
	if haveRange && (dataLen < rng[0] || (rng[1] >= 0 && dataLen > rng[1])) {
		return raw()
	}

	switch parent.Type {
	case TypeComboIPPrefix, TypeComboIPAddr:
		v4, v6 := TypeIPv4Prefix, TypeIPv6Prefix
		if parent.Type == TypeComboIPAddr {
			v4, v6 = TypeIPv4Addr, TypeIPv6Addr
		}
		var child *Descriptor
		var found bool
		switch dataLen {
		case rng[0]:
			child, found = parent.ChildByType(v4)
		case rng[1]:
			child, found = parent.ChildByType(v6)
		}
		if !found {
			return raw()
		}
		parent = child
	}

	switch parent.Type {
	case TypeExtended:
		min := 1
		if parent.Flags.Extra {
			min = 2
		}
		if dataLen <= min {
			return raw()
		}

		if child, found := parent.ChildByNum(int(p[0])); found {
			if !parent.Flags.Extra || p[1]&0x80 == 0 {
				if _, err := DecodePairValue(dict, cursor, dctx, child, p[min:dataLen], dataLen-min, dataLen-min, depth+1); err != nil {
					return 0, err
				}
				return attrLen, nil
			}
			if dataLen > 1 {
				if rcode, err := decodeExtended(dict, cursor, dctx, child, byte(parent.Number), p, dataLen, packetLen, depth); err == nil {
					return rcode, nil
				}
			}
		}

		unknownChild := UnknownAttribute(parent, nil, int(p[0]))
		if parent.Flags.Extra {
			if rcode, err := decodeExtended(dict, cursor, dctx, unknownChild, byte(parent.Number), p, dataLen, packetLen, depth); err == nil {
				return rcode, nil
			}
		}
		if _, err := DecodePairValue(dict, cursor, dctx, unknownChild, p[min:dataLen], dataLen-min, dataLen-min, depth+1); err != nil {
			return 0, err
		}
		return attrLen, nil

	case TypeVSA:
		if parent.Parent == nil || parent.Parent.Type != TypeExtended {
			rcode, err := decodeVSA(dict, cursor, dctx, parent, p, dataLen, packetLen, depth)
			if err != nil {
				dctx.logf("msg", "vsa decode failed", "name", parent.Name, "err", err)
				return raw()
			}
			return rcode, nil
		}

		if dataLen < 6 {
			return raw()
		}
		vendor := uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3])

		vendorChild, found := parent.ChildByNum(int(vendor))
		if !found {
			unknown := UnknownAttribute(parent, nil, int(p[4]))
			if _, err := DecodePairValue(dict, cursor, dctx, unknown, p[5:dataLen], dataLen-5, dataLen-5, depth+1); err != nil {
				return 0, err
			}
			return attrLen, nil
		}

		child, found := vendorChild.ChildByNum(int(p[4]))
		if !found {
			unknown := UnknownAttribute(vendorChild, vendorChild.Vendor, int(p[4]))
			if _, err := DecodePairValue(dict, cursor, dctx, unknown, p[5:dataLen], dataLen-5, dataLen-5, depth+1); err != nil {
				return 0, err
			}
			return attrLen, nil
		}

		if _, err := DecodePairValue(dict, cursor, dctx, child, p[5:dataLen], dataLen-5, dataLen-5, depth+1); err != nil {
			return raw()
		}
		return attrLen, nil

	case TypeTLV:
		if _, err := decodeTLV(dict, cursor, dctx, parent, p[:dataLen], depth); err != nil {
			dctx.logf("msg", "tlv decode failed", "name", parent.Name, "err", err)
			return raw()
		}
		return attrLen, nil

	case TypeStruct:
		if _, err := decodeStruct(dict, cursor, dctx, parent, p[:dataLen], depth); err != nil {
			return raw()
		}
		return attrLen, nil
	}

	value, err := decodeLeafOrPrefix(parent.Type, p[:dataLen])
	if err != nil {
		return raw()
	}
	cursor.Append(VP{Descriptor: parent, Tag: tag, Value: value, Tainted: true})
	return attrLen, nil
}
