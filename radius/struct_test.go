package radius

import "testing"

func TestDecodeStruct(t *testing.T) {
	parent := &Descriptor{Name: "Framed-Status", Type: TypeStruct}
	parent.addChild(&Descriptor{Number: 1, Name: "Code", Type: TypeUint8, Flags: Flags{FixedLength: 1}})
	parent.addChild(&Descriptor{Number: 2, Name: "Session-Id", Type: TypeUint16, Flags: Flags{FixedLength: 2}})

	data := []byte{0x07, 0x00, 0x2a}

	var cursor Cursor
	n, err := decodeStruct(nil, &cursor, nil, parent, data, 0)
	if err != nil {
		t.Fatalf("decodeStruct(): %v", err)
	}
	if n != len(data) {
		t.Errorf("decodeStruct() = %d, want %d", n, len(data))
	}
	if cursor.Len() != 2 {
		t.Fatalf("decodeStruct(): got %d VPs, want 2", cursor.Len())
	}
	if cursor.VPs()[0].Value.(uint8) != 0x07 {
		t.Errorf("decodeStruct() field 1 = %v, want 0x07", cursor.VPs()[0].Value)
	}
	if cursor.VPs()[1].Value.(uint16) != 0x002a {
		t.Errorf("decodeStruct() field 2 = %v, want 0x2a", cursor.VPs()[1].Value)
	}
}

func TestDecodeStructKeepsFixedFieldsWhenTailFails(t *testing.T) {
	parent := &Descriptor{Name: "Framed-Status", Type: TypeStruct}
	parent.addChild(&Descriptor{Number: 1, Name: "Code", Type: TypeUint8, Flags: Flags{FixedLength: 1}})
	tail := &Descriptor{Number: 2, Name: "Options", Type: TypeTLV}
	tail.addChild(&Descriptor{Number: 1, Name: "Sub-Option", Type: TypeString})
	parent.addChild(tail)

	// Fixed field decodes cleanly; the trailing TLV tail is malformed
	// (its declared length overflows the buffer).
	data := []byte{0x07, 0x01, 0x09, 'x'}

	var cursor Cursor
	n, err := decodeStruct(nil, &cursor, nil, parent, data, 0)
	if err != nil {
		t.Fatalf("decodeStruct(): %v", err)
	}
	if n != len(data) {
		t.Errorf("decodeStruct() = %d, want %d", n, len(data))
	}
	if cursor.Len() != 2 {
		t.Fatalf("decodeStruct(): got %d VPs, want 2 (fixed field kept plus raw tail)", cursor.Len())
	}
	if cursor.VPs()[0].Descriptor != parent.children[1] {
		t.Errorf("decodeStruct(): fixed field VP lost after tail failure")
	}
	if !cursor.VPs()[1].Descriptor.Flags.IsUnknown {
		t.Errorf("decodeStruct(): expected the tail to degrade to an unknown VP")
	}
}
