package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalix/go-radius/radius"
)

func TestLoadStringTopLevelAttributes(t *testing.T) {
	toml := `
		[[attribute]]
		number = 1
		name = "User-Name"
		type = "string"

		[[attribute]]
		number = 6
		name = "Service-Type"
		type = "uint32"

		[[attribute]]
		number = 69
		name = "Tunnel-Password"
		type = "string"
		subtype = "tunnel_password"
		has_tag = true
		`

	dict, err := LoadString(toml)
	if err != nil {
		t.Fatalf("LoadString(): %v", err)
	}

	userName, ok := dict.Root().ChildByNum(1)
	if !ok || userName.Name != "User-Name" || userName.Type != radius.TypeString {
		t.Errorf("User-Name descriptor = %+v, ok %v", userName, ok)
	}

	tunnelPassword, ok := dict.Root().ChildByNum(69)
	if !ok {
		t.Fatalf("Tunnel-Password descriptor not found")
	}
	if tunnelPassword.Flags.Subtype != radius.SubtypeTunnelPassword || !tunnelPassword.Flags.HasTag {
		t.Errorf("Tunnel-Password flags = %+v, want subtype tunnel_password and has_tag", tunnelPassword.Flags)
	}
}

func TestLoadStringConcatAttribute(t *testing.T) {
	toml := `
		[[attribute]]
		number = 79
		name = "EAP-Message"
		type = "octets"
		concat = true
		`

	dict, err := LoadString(toml)
	if err != nil {
		t.Fatalf("LoadString(): %v", err)
	}

	eap, ok := dict.Root().ChildByNum(79)
	if !ok || !eap.Flags.Concat {
		t.Fatalf("EAP-Message descriptor = %+v, ok %v, want Flags.Concat", eap, ok)
	}
}

func TestLoadStringNestedTLVAndVendor(t *testing.T) {
	toml := `
		[[attribute]]
		number = 26
		name = "Vendor-Specific"
		type = "vsa"

		[[vendor]]
		pen = 9
		name = "Cisco"
		type_width = 1
		length_width = 1

		[[vendor.attribute]]
		number = 1
		name = "Cisco-AVPair"
		type = "string"

		[[vendor.attribute]]
		number = 2
		name = "Cisco-Options"
		type = "tlv"

		[[vendor.attribute.attribute]]
		number = 1
		name = "Cisco-Sub-Option"
		type = "string"
		`

	dict, err := LoadString(toml)
	if err != nil {
		t.Fatalf("LoadString(): %v", err)
	}

	v, ok := dict.VendorByNum(9)
	if !ok || v.Name != "Cisco" || v.TypeWidth != 1 || v.LengthWidth != 1 {
		t.Fatalf("vendor 9 = %+v, ok %v", v, ok)
	}

	avPair, ok := v.VendorRoot().ChildByNum(1)
	if !ok || avPair.Name != "Cisco-AVPair" {
		t.Fatalf("Cisco-AVPair descriptor not found under vendor root")
	}

	options, ok := v.VendorRoot().ChildByNum(2)
	if !ok || options.Type != radius.TypeTLV {
		t.Fatalf("Cisco-Options descriptor = %+v, ok %v", options, ok)
	}
	subOption, ok := options.ChildByNum(1)
	if !ok || subOption.Name != "Cisco-Sub-Option" {
		t.Fatalf("Cisco-Sub-Option descriptor not found under Cisco-Options")
	}
}

func TestLoadFileTopLevelAttributes(t *testing.T) {
	toml := `
		[[attribute]]
		number = 1
		name = "User-Name"
		type = "string"

		[[attribute]]
		number = 26
		name = "Vendor-Specific"
		type = "vsa"

		[[vendor]]
		pen = 9
		name = "Cisco"
		type_width = 1
		length_width = 1

		[[vendor.attribute]]
		number = 1
		name = "Cisco-AVPair"
		type = "string"
		`

	path := filepath.Join(t.TempDir(), "dictionary.toml")
	if err := os.WriteFile(path, []byte(toml), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	dict, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile(): %v", err)
	}

	userName, ok := dict.Root().ChildByNum(1)
	if !ok || userName.Name != "User-Name" {
		t.Errorf("User-Name descriptor = %+v, ok %v", userName, ok)
	}

	v, ok := dict.VendorByNum(9)
	if !ok || v.Name != "Cisco" {
		t.Fatalf("vendor 9 = %+v, ok %v", v, ok)
	}
	avPair, ok := v.VendorRoot().ChildByNum(1)
	if !ok || avPair.Name != "Cisco-AVPair" {
		t.Fatalf("Cisco-AVPair descriptor not found under vendor root")
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.toml")); err == nil {
		t.Fatalf("LoadFile(): expected an error for a missing file, got none")
	}
}

func TestLoadStringRejectsUnrecognisedType(t *testing.T) {
	toml := `
		[[attribute]]
		number = 1
		name = "Bad-Attribute"
		type = "not-a-real-type"
		`
	if _, err := LoadString(toml); err == nil {
		t.Fatalf("LoadString(): expected an error for an unrecognised type, got none")
	}
}
