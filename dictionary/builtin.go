// Package dictionary builds radius.Dictionary values, either from a
// small built-in table of well-known RFC attributes or loaded from a
// TOML dictionary file on disk.
package dictionary

import "github.com/katalix/go-radius/radius"

type attrSpec struct {
	number  int
	name    string
	typ     radius.AttrType
	hasTag  bool
	subtype radius.Subtype
	concat  bool
	extra   bool
	fixed   int
}

// wellKnownAttributes lists the top-level RFC2865/2866/2868/2869/6929
// attributes the decoder's own logic refers to by number or whose
// obfuscation/extended/concatenation behaviour isn't otherwise
// discoverable from a plain TOML entry.
var wellKnownAttributes = []attrSpec{
	{number: 1, name: "User-Name", typ: radius.TypeString},
	{number: 2, name: "User-Password", typ: radius.TypeString, subtype: radius.SubtypeUserPassword},
	{number: 3, name: "CHAP-Password", typ: radius.TypeOctets},
	{number: 4, name: "NAS-IP-Address", typ: radius.TypeIPv4Addr},
	{number: 5, name: "NAS-Port", typ: radius.TypeUint32},
	{number: 6, name: "Service-Type", typ: radius.TypeUint32},
	{number: 7, name: "Framed-Protocol", typ: radius.TypeUint32},
	{number: 8, name: "Framed-IP-Address", typ: radius.TypeIPv4Addr},
	{number: 9, name: "Framed-IP-Netmask", typ: radius.TypeIPv4Addr},
	{number: 11, name: "Filter-Id", typ: radius.TypeString},
	{number: 12, name: "Framed-MTU", typ: radius.TypeUint32},
	{number: 18, name: "Reply-Message", typ: radius.TypeString},
	{number: 22, name: "Framed-Route", typ: radius.TypeString},
	{number: 26, name: "Vendor-Specific", typ: radius.TypeVSA},
	{number: 30, name: "Called-Station-Id", typ: radius.TypeString},
	{number: 31, name: "Calling-Station-Id", typ: radius.TypeString},
	{number: 40, name: "Acct-Status-Type", typ: radius.TypeUint32},
	{number: 44, name: "Acct-Session-Id", typ: radius.TypeString},
	{number: 61, name: "NAS-Port-Type", typ: radius.TypeUint32},
	{number: 64, name: "Tunnel-Type", typ: radius.TypeUint32, hasTag: true},
	{number: 65, name: "Tunnel-Medium-Type", typ: radius.TypeUint32, hasTag: true},
	{number: 69, name: "Tunnel-Password", typ: radius.TypeString, hasTag: true, subtype: radius.SubtypeTunnelPassword},
	{number: 77, name: "Connect-Info", typ: radius.TypeString},
	{number: 79, name: "EAP-Message", typ: radius.TypeOctets, concat: true},
	{number: 81, name: "Tunnel-Private-Group-Id", typ: radius.TypeString, hasTag: true},
	{number: 87, name: "NAS-Port-Id", typ: radius.TypeString},
	{number: 89, name: "Chargeable-User-Identity", typ: radius.TypeString},
	{number: 95, name: "NAS-IPv6-Address", typ: radius.TypeIPv6Addr},
	{number: 97, name: "Framed-IPv6-Prefix", typ: radius.TypeIPv6Prefix},
	{number: 98, name: "Login-IPv6-Host", typ: radius.TypeIPv6Addr},
	{number: 99, name: "Framed-IPv6-Route", typ: radius.TypeString},
	{number: 168, name: "Framed-IPv6-Address", typ: radius.TypeIPv6Addr},
	{number: 241, name: "Extended-Attribute-1", typ: radius.TypeExtended},
	{number: 242, name: "Extended-Attribute-2", typ: radius.TypeExtended},
	{number: 243, name: "Extended-Attribute-3", typ: radius.TypeExtended},
	{number: 244, name: "Extended-Vendor-Specific-4", typ: radius.TypeExtended},
	{number: 245, name: "Long-Extended-Attribute-5", typ: radius.TypeExtended, extra: true},
	{number: 246, name: "Long-Extended-Attribute-6", typ: radius.TypeExtended, extra: true},
}

// extendedChildren are sub-attributes nested under one of the extended
// containers above, keyed by the container's attribute number.
var extendedChildren = map[int][]attrSpec{
	241: {{number: 1, name: "Extended-1-String", typ: radius.TypeString}},
	245: {{number: 1, name: "Long-Extended-5-String", typ: radius.TypeString}},
}

type vendorSpec struct {
	pen         uint32
	name        string
	typeWidth   int
	lengthWidth int
	isWiMAX     bool
	attrs       []attrSpec
}

// wellKnownVendors lists the vendor namespaces exercised by the
// decoder's own tests and the WiMAX fragment-reassembly path. A real
// deployment would load hundreds of these from an on-disk dictionary
// via LoadFile instead.
var wellKnownVendors = []vendorSpec{
	{
		pen: 9, name: "Cisco", typeWidth: 1, lengthWidth: 1,
		attrs: []attrSpec{
			{number: 1, name: "Cisco-AVPair", typ: radius.TypeString},
			{number: 2, name: "Cisco-NAS-Port", typ: radius.TypeString},
		},
	},
	{
		pen: 529, name: "Ascend", typeWidth: 1, lengthWidth: 1,
		attrs: []attrSpec{
			{number: 214, name: "Ascend-Send-Secret", typ: radius.TypeString, subtype: radius.SubtypeAscendSecret},
			{number: 215, name: "Ascend-Receive-Secret", typ: radius.TypeString, subtype: radius.SubtypeAscendSecret},
		},
	},
	{
		pen: 24757, name: "WiMAX", typeWidth: 1, lengthWidth: 1, isWiMAX: true,
		attrs: []attrSpec{
			{number: 1, name: "WiMAX-Capability", typ: radius.TypeString},
			{number: 26, name: "WiMAX-MIP4-HA-Fqdn", typ: radius.TypeString},
		},
	},
}

func addDescriptor(dict *radius.Dictionary, parent *radius.Descriptor, s attrSpec) *radius.Descriptor {
	d := &radius.Descriptor{
		Number: s.number,
		Name:   s.name,
		Type:   s.typ,
		Flags: radius.Flags{
			HasTag:      s.hasTag,
			Subtype:     s.subtype,
			Concat:      s.concat,
			Extra:       s.extra,
			FixedLength: s.fixed,
		},
	}
	if parent == nil {
		dict.AddAttribute(d)
	} else {
		d.Vendor = parent.Vendor
		dict.AddChildAttribute(parent, d)
	}
	return d
}

// Builtin returns a Dictionary populated with the well-known attributes
// and vendors above. It is rebuilt fresh on every call: callers that
// decode many packets against the same dictionary should cache the
// result rather than calling Builtin repeatedly.
func Builtin() *radius.Dictionary {
	dict := radius.NewDictionary()

	byNumber := make(map[int]*radius.Descriptor)
	for _, s := range wellKnownAttributes {
		byNumber[s.number] = addDescriptor(dict, nil, s)
	}
	for parentNum, children := range extendedChildren {
		parent := byNumber[parentNum]
		for _, c := range children {
			addDescriptor(dict, parent, c)
		}
	}

	for _, vs := range wellKnownVendors {
		v := &radius.Vendor{
			PEN:         vs.pen,
			Name:        vs.name,
			TypeWidth:   vs.typeWidth,
			LengthWidth: vs.lengthWidth,
			IsWiMAX:     vs.isWiMAX,
		}
		dict.AddVendor(v)
		vd := v.VendorRoot()
		vd.Number = int(vs.pen)
		dict.AddChildAttribute(byNumber[26], vd)
		for _, a := range vs.attrs {
			addDescriptor(dict, vd, a)
		}
	}

	return dict
}
