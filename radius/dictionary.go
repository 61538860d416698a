package radius

import "fmt"

// Flags carries the per-attribute behavioural modifiers of a dictionary
// entry: whether a tag byte may be present, which obfuscation
// scheme (if any) applies, whether the attribute may be split across
// multiple RFC2869 concatenated attributes, whether a long-extended flag
// byte follows the extended-type byte, a fixed wire width (0 if the
// attribute is variable-length), and whether the descriptor was fabricated
// for an attribute absent from the dictionary.
type Flags struct {
	HasTag      bool
	Subtype     Subtype
	Concat      bool
	Extra       bool
	FixedLength int
	IsUnknown   bool
}

// Descriptor is an immutable dictionary entry describing one RADIUS
// attribute, at any nesting level (top-level, TLV child, VSA child,
// extended child, struct field).
type Descriptor struct {
	Number   int
	Name     string
	Type     AttrType
	Parent   *Descriptor
	Vendor   *Vendor
	Flags    Flags
	children map[int]*Descriptor
	byType   map[AttrType]*Descriptor
}

// Vendor is an immutable dictionary entry describing a RADIUS vendor
// namespace, as referenced by a Vendor-Specific attribute's PEN.
type Vendor struct {
	PEN         uint32
	Name        string
	TypeWidth   int
	LengthWidth int
	IsWiMAX     bool
	IsUnknown   bool
	root        *Descriptor
}

// ChildByNum looks up a direct child of d by attribute number, as per the
// dictionary interface's child_by_num.
func (d *Descriptor) ChildByNum(num int) (*Descriptor, bool) {
	if d == nil || d.children == nil {
		return nil, false
	}
	c, ok := d.children[num]
	return c, ok
}

// ChildByType looks up a direct child of d by semantic type, used to
// disambiguate combo_ip_addr/combo_ip_prefix into their v4/v6 variant
// descriptors.
func (d *Descriptor) ChildByType(t AttrType) (*Descriptor, bool) {
	if d == nil || d.byType == nil {
		return nil, false
	}
	c, ok := d.byType[t]
	return c, ok
}

func (d *Descriptor) addChild(c *Descriptor) {
	if d.children == nil {
		d.children = make(map[int]*Descriptor)
	}
	if d.byType == nil {
		d.byType = make(map[AttrType]*Descriptor)
	}
	c.Parent = d
	d.children[c.Number] = c
	d.byType[c.Type] = c
}

// Dictionary is the set of attribute and vendor descriptors the decoder
// consults to resolve wire numbers into semantic types. A single
// Dictionary may be shared by any number of concurrent decodes: it is
// read-only once built.
type Dictionary struct {
	root    *Descriptor
	vendors map[uint32]*Vendor
}

// NewDictionary returns an empty dictionary with just a root descriptor,
// ready to have attributes and vendors added via AddAttribute/AddVendor.
func NewDictionary() *Dictionary {
	return &Dictionary{
		root:    &Descriptor{Name: "<root>", Type: TypeTLV},
		vendors: make(map[uint32]*Vendor),
	}
}

// Root returns the dictionary's root descriptor, whose children are the
// top-level RADIUS attributes.
func (dict *Dictionary) Root() *Descriptor {
	return dict.root
}

// AddAttribute registers a top-level attribute descriptor.
func (dict *Dictionary) AddAttribute(d *Descriptor) {
	dict.root.addChild(d)
}

// AddChildAttribute registers d as a child of parent (a TLV, VSA, struct
// or extended container).
func (dict *Dictionary) AddChildAttribute(parent *Descriptor, d *Descriptor) {
	parent.addChild(d)
}

// VendorByNum looks up a vendor by its Private Enterprise Number, as per
// the dictionary interface's vendor_by_num.
func (dict *Dictionary) VendorByNum(pen uint32) (*Vendor, bool) {
	v, ok := dict.vendors[pen]
	return v, ok
}

// AddVendor registers a vendor namespace with its own attribute root.
func (dict *Dictionary) AddVendor(v *Vendor) {
	if v.root == nil {
		v.root = &Descriptor{Name: v.Name + "<root>", Type: TypeVendor, Vendor: v}
	}
	dict.vendors[v.PEN] = v
}

// VendorRoot returns the descriptor whose children are v's sub-attributes.
func (v *Vendor) VendorRoot() *Descriptor {
	if v.root == nil {
		v.root = &Descriptor{Name: v.Name + "<root>", Type: TypeVendor, Vendor: v}
	}
	return v.root
}

// UnknownAttribute fabricates a placeholder descriptor for an attribute
// number absent from the dictionary, as per unknown_afrom_fields. The
// fabricated descriptor is always of semantic type octets, and is parented
// under parent so that lineage (including vendor, if any) is preserved.
// Fabricated descriptors are not inserted into the dictionary: each call
// mints a fresh instance owned by the caller.
func UnknownAttribute(parent *Descriptor, vendor *Vendor, num int) *Descriptor {
	name := fmt.Sprintf("Unknown-Attribute-%d", num)
	if vendor != nil {
		name = fmt.Sprintf("Unknown-Vendor-%d-Attribute-%d", vendor.PEN, num)
	}
	return &Descriptor{
		Number: num,
		Name:   name,
		Type:   TypeOctets,
		Parent: parent,
		Vendor: vendor,
		Flags:  Flags{IsUnknown: true},
	}
}

// UnknownVendor fabricates a placeholder vendor record for a PEN absent
// from the dictionary, as per unknown_vendor_afrom_num. The returned
// vendor uses the most permissive TLV schema, (1,1), which is also the
// schema VSA decoding falls back to for any unrecognised vendor.
func UnknownVendor(pen uint32) *Vendor {
	return &Vendor{
		PEN:         pen,
		Name:        fmt.Sprintf("Unknown-Vendor-%d", pen),
		TypeWidth:   1,
		LengthWidth: 1,
		IsUnknown:   true,
	}
}
