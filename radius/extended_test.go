package radius

import "testing"

func TestDecodeExtendedInPlace(t *testing.T) {
	child := &Descriptor{Number: 1, Name: "Extended-1-String", Type: TypeString}

	// Ext-Attr(1), Flag(0, no continuation), value "hi".
	data := []byte{1, 0x00, 'h', 'i'}

	var cursor Cursor
	n, err := decodeExtended(nil, &cursor, nil, child, 241, data, len(data), len(data), 0)
	if err != nil {
		t.Fatalf("decodeExtended(): %v", err)
	}
	if n != len(data) {
		t.Errorf("decodeExtended() consumed %d, want %d", n, len(data))
	}
	if cursor.Len() != 1 || cursor.VPs()[0].Value.(string) != "hi" {
		t.Fatalf("decodeExtended() VPs = %+v, want Extended-1-String = hi", cursor.VPs())
	}
}

func TestDecodeExtendedReassemblesFragments(t *testing.T) {
	child := &Descriptor{Number: 1, Name: "Long-Extended-5-String", Type: TypeString}

	data := []byte{
		// First fragment's value: Ext-Attr(1), Flag(0x80, more), body "He".
		1, 0x80, 'H', 'e',
		// Second top-level attribute (245), a continuation fragment:
		// Ext-Attr(1), Flag(0x00, no more), body "llo".
		245, 7, 1, 0x00, 'l', 'l', 'o',
	}

	var cursor Cursor
	n, err := decodeExtended(nil, &cursor, nil, child, 245, data, 4, len(data), 0)
	if err != nil {
		t.Fatalf("decodeExtended(): %v", err)
	}
	if n != len(data) {
		t.Errorf("decodeExtended() consumed %d, want %d", n, len(data))
	}
	if cursor.Len() != 1 || cursor.VPs()[0].Value.(string) != "Hello" {
		t.Fatalf("decodeExtended() VPs = %+v, want Long-Extended-5-String = Hello", cursor.VPs())
	}
}

func TestDecodeExtendedStopsAtUnrelatedAttribute(t *testing.T) {
	child := &Descriptor{Number: 1, Name: "Long-Extended-5-String", Type: TypeString}

	data := []byte{
		1, 0x80, 'H', 'i',
		// What follows isn't a continuation of this fragment: wrong
		// Ext-Attr number.
		245, 5, 2, 0x00, 'x',
	}

	var cursor Cursor
	n, err := decodeExtended(nil, &cursor, nil, child, 245, data, 4, len(data), 0)
	if err != nil {
		t.Fatalf("decodeExtended(): %v", err)
	}
	if n != 4 {
		t.Errorf("decodeExtended() consumed %d, want 4 (fragment scan should stop before the unrelated attribute)", n)
	}
	if cursor.VPs()[0].Value.(string) != "Hi" {
		t.Errorf("decodeExtended() value = %q, want %q", cursor.VPs()[0].Value, "Hi")
	}
}
