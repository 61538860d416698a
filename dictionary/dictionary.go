package dictionary

import (
	"fmt"

	"github.com/katalix/go-radius/radius"
	"github.com/pelletier/go-toml"
)

// toStringTable maps the TOML dictionary format's "type" strings onto
// the decoder's semantic types.
var toStringTable = map[string]radius.AttrType{
	"string":          radius.TypeString,
	"octets":          radius.TypeOctets,
	"ipv4_addr":       radius.TypeIPv4Addr,
	"ipv6_addr":       radius.TypeIPv6Addr,
	"ipv4_prefix":     radius.TypeIPv4Prefix,
	"ipv6_prefix":     radius.TypeIPv6Prefix,
	"combo_ip_addr":   radius.TypeComboIPAddr,
	"combo_ip_prefix": radius.TypeComboIPPrefix,
	"bool":            radius.TypeBool,
	"uint8":           radius.TypeUint8,
	"uint16":          radius.TypeUint16,
	"uint32":          radius.TypeUint32,
	"uint64":          radius.TypeUint64,
	"int8":            radius.TypeInt8,
	"int16":           radius.TypeInt16,
	"int32":           radius.TypeInt32,
	"int64":           radius.TypeInt64,
	"float32":         radius.TypeFloat32,
	"float64":         radius.TypeFloat64,
	"date":            radius.TypeDate,
	"time_delta":      radius.TypeTimeDelta,
	"ethernet":        radius.TypeEthernet,
	"ifid":            radius.TypeIfid,
	"size":            radius.TypeSize,
	"abinary":         radius.TypeAbinary,
	"tlv":             radius.TypeTLV,
	"struct":          radius.TypeStruct,
	"vsa":             radius.TypeVSA,
	"extended":        radius.TypeExtended,
}

var toSubtypeTable = map[string]radius.Subtype{
	"":               radius.SubtypeNone,
	"user_password":  radius.SubtypeUserPassword,
	"tunnel_password": radius.SubtypeTunnelPassword,
	"ascend_secret":  radius.SubtypeAscendSecret,
}

func toAttrType(tree *toml.Tree, key string) (radius.AttrType, error) {
	s, ok := tree.Get(key).(string)
	if !ok {
		return 0, fmt.Errorf("dictionary: attribute %v missing required string field %q", tree.Get("number"), key)
	}
	t, ok := toStringTable[s]
	if !ok {
		return 0, fmt.Errorf("dictionary: attribute %v has unrecognised type %q", tree.Get("number"), s)
	}
	return t, nil
}

func toInt(tree *toml.Tree, key string, def int64) int64 {
	v := tree.Get(key)
	if v == nil {
		return def
	}
	n, ok := v.(int64)
	if !ok {
		return def
	}
	return n
}

func toBool(tree *toml.Tree, key string) bool {
	v, _ := tree.Get(key).(bool)
	return v
}

func newAttribute(tree *toml.Tree) (*radius.Descriptor, error) {
	num, ok := tree.Get("number").(int64)
	if !ok {
		return nil, fmt.Errorf("dictionary: attribute missing required integer field %q", "number")
	}
	name, ok := tree.Get("name").(string)
	if !ok {
		return nil, fmt.Errorf("dictionary: attribute %d missing required string field %q", num, "name")
	}
	typ, err := toAttrType(tree, "type")
	if err != nil {
		return nil, err
	}
	subtype := radius.SubtypeNone
	if s, ok := tree.Get("subtype").(string); ok {
		st, ok := toSubtypeTable[s]
		if !ok {
			return nil, fmt.Errorf("dictionary: attribute %d (%s) has unrecognised subtype %q", num, name, s)
		}
		subtype = st
	}

	return &radius.Descriptor{
		Number: int(num),
		Name:   name,
		Type:   typ,
		Flags: radius.Flags{
			HasTag:      toBool(tree, "has_tag"),
			Subtype:     subtype,
			Concat:      toBool(tree, "concat"),
			Extra:       toBool(tree, "extra"),
			FixedLength: int(toInt(tree, "fixed_length", 0)),
		},
	}, nil
}

func loadChildren(dict *radius.Dictionary, parent *radius.Descriptor, tree *toml.Tree) error {
	children, ok := tree.Get("attribute").([]*toml.Tree)
	if !ok {
		return nil
	}
	for _, child := range children {
		d, err := newAttribute(child)
		if err != nil {
			return err
		}
		dict.AddChildAttribute(parent, d)
		if err := loadChildren(dict, d, child); err != nil {
			return err
		}
	}
	return nil
}

func newDictionary(tree *toml.Tree) (*radius.Dictionary, error) {
	dict := radius.NewDictionary()

	attrs, _ := tree.Get("attribute").([]*toml.Tree)
	byNumber := make(map[int]*radius.Descriptor)
	for _, t := range attrs {
		d, err := newAttribute(t)
		if err != nil {
			return nil, err
		}
		dict.AddAttribute(d)
		byNumber[d.Number] = d
		if err := loadChildren(dict, d, t); err != nil {
			return nil, err
		}
	}

	vendors, _ := tree.Get("vendor").([]*toml.Tree)
	for _, vt := range vendors {
		pen, ok := vt.Get("pen").(int64)
		if !ok {
			return nil, fmt.Errorf("dictionary: vendor missing required integer field %q", "pen")
		}
		name, _ := vt.Get("name").(string)

		v := &radius.Vendor{
			PEN:         uint32(pen),
			Name:        name,
			TypeWidth:   int(toInt(vt, "type_width", 1)),
			LengthWidth: int(toInt(vt, "length_width", 1)),
			IsWiMAX:     toBool(vt, "wimax"),
		}
		dict.AddVendor(v)

		root := v.VendorRoot()
		root.Number = int(pen)
		if vsa, ok := byNumber[attrNumVendorSpecific]; ok {
			dict.AddChildAttribute(vsa, root)
		}

		if err := loadChildren(dict, root, vt); err != nil {
			return nil, err
		}
	}

	return dict, nil
}

// attrNumVendorSpecific mirrors the well-known Vendor-Specific
// attribute number every loaded dictionary is expected to define; a
// dictionary file that omits attribute 26 can still load, but its
// vendor entries won't be reachable through a decode.
const attrNumVendorSpecific = 26

// LoadFile parses a TOML dictionary file at path into a Dictionary.
func LoadFile(path string) (*radius.Dictionary, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	return newDictionary(tree)
}

// LoadString parses TOML dictionary content into a Dictionary.
func LoadString(content string) (*radius.Dictionary, error) {
	tree, err := toml.Load(content)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	return newDictionary(tree)
}
