package radius

// AttrType identifies a RADIUS attribute semantic type as per the table
// in RFC2865, RFC2868, RFC6929 and the FreeRADIUS dictionary format.
type AttrType int

// Semantic types recognised by the decoder.
const (
	TypeString AttrType = iota
	TypeOctets
	TypeIPv4Addr
	TypeIPv6Addr
	TypeIPv4Prefix
	TypeIPv6Prefix
	TypeComboIPAddr
	TypeComboIPPrefix
	TypeBool
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeDate
	TypeTimeDelta
	TypeEthernet
	TypeIfid
	TypeSize
	TypeAbinary
	TypeTLV
	TypeStruct
	TypeVSA
	TypeVendor
	TypeExtended
)

// String gives a human-readable name for an AttrType.
func (t AttrType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeOctets:
		return "octets"
	case TypeIPv4Addr:
		return "ipv4_addr"
	case TypeIPv6Addr:
		return "ipv6_addr"
	case TypeIPv4Prefix:
		return "ipv4_prefix"
	case TypeIPv6Prefix:
		return "ipv6_prefix"
	case TypeComboIPAddr:
		return "combo_ip_addr"
	case TypeComboIPPrefix:
		return "combo_ip_prefix"
	case TypeBool:
		return "bool"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeDate:
		return "date"
	case TypeTimeDelta:
		return "time_delta"
	case TypeEthernet:
		return "ethernet"
	case TypeIfid:
		return "ifid"
	case TypeSize:
		return "size"
	case TypeAbinary:
		return "abinary"
	case TypeTLV:
		return "tlv"
	case TypeStruct:
		return "struct"
	case TypeVSA:
		return "vsa"
	case TypeVendor:
		return "vendor"
	case TypeExtended:
		return "extended"
	}
	return "unknown"
}

// Subtype identifies an obfuscation scheme applied to an attribute's value
// before it reaches the generic semantic-type decoder.
type Subtype int

// Obfuscation schemes recognised by the decoder.
const (
	SubtypeNone Subtype = iota
	SubtypeUserPassword
	SubtypeTunnelPassword
	SubtypeAscendSecret
)

// minLen/maxLen size table, indexed by AttrType, for the length range
// check performed by DecodePairValue before leaf parsing. A max of -1
// means unbounded (up to the 128KiB attribute ceiling).
var semanticLengthRange = map[AttrType][2]int{
	TypeString:        {0, -1},
	TypeOctets:        {0, -1},
	TypeIPv4Addr:      {4, 4},
	TypeIPv6Addr:      {16, 16},
	TypeIPv4Prefix:    {2, 6},
	TypeIPv6Prefix:    {2, 18},
	TypeComboIPAddr:   {4, 16},
	TypeComboIPPrefix: {2, 18},
	TypeBool:          {1, 1},
	TypeUint8:         {1, 1},
	TypeUint16:        {2, 2},
	TypeUint32:        {4, 4},
	TypeUint64:        {8, 8},
	TypeInt8:          {1, 1},
	TypeInt16:         {2, 2},
	TypeInt32:         {4, 4},
	TypeInt64:         {8, 8},
	TypeFloat32:       {4, 4},
	TypeFloat64:       {8, 8},
	TypeDate:          {4, 4},
	TypeTimeDelta:     {4, 4},
	TypeEthernet:      {6, 6},
	TypeIfid:          {8, 8},
	TypeSize:          {8, 8},
	TypeAbinary:       {0, -1},
	TypeTLV:           {0, -1},
	TypeStruct:        {0, -1},
	TypeVSA:           {4, -1},
	TypeVendor:        {0, -1},
	TypeExtended:      {1, -1},
}

// Well-known RFC2865/RFC2866 attribute numbers referenced directly by the
// decoder (rather than only looked up via the dictionary), because their
// behaviour is spec-mandated rather than dictionary-driven.
const (
	attrNumVendorSpecific         = 26
	attrNumChargeableUserIdentity = 89
)

// RFC6929 extended attribute numbers.
const (
	attrNumExtended1       = 241
	attrNumExtended2       = 242
	attrNumExtended3       = 243
	attrNumExtended4       = 244
	attrNumLongExtended5   = 245
	attrNumLongExtended6   = 246
)

// WiMAX Forum Private Enterprise Number, used to recognise fragmented
// Vendor-Specific attributes per T33-001-R015v01.
const wimaxPEN = 24757

// attrHeaderLen is the length of a top-level RADIUS attribute header:
// one byte of type, one byte of length (the length byte's value includes
// both header bytes).
const attrHeaderLen = 2

// maxAttrLen is the largest attr_len DecodePairValue will accept before
// refusing to process the attribute at all.
const maxAttrLen = 128 * 1024

// maxRecursionDepth bounds recursive descent into TLV/VSA/extended/struct
// children. Exceeding it collapses to a raw decode of the attribute that
// triggered the overflow.
const maxRecursionDepth = 10
