package radius

import (
	"bytes"
	"testing"
)

// encodeUserPassword is the RFC2865 User-Password encrypt direction: the
// mirror image of decodeUserPassword, used only to build ciphertext
// fixtures for the tests below. Package radius never ships an encoder.
func encodeUserPassword(plaintext, secret, vector []byte) []byte {
	buf := append([]byte(nil), plaintext...)
	for len(buf)%authPassLen != 0 {
		buf = append(buf, 0)
	}
	digest := md5Block(secret, vector)
	for n := 0; n < len(buf); n += authPassLen {
		block := buf[n : n+authPassLen]
		for i := range block {
			block[i] ^= digest[i]
		}
		digest = md5Block(secret, block)
	}
	return buf
}

// encodeTunnelPassword is the RFC2868 Tunnel-Password encrypt direction,
// the mirror image of decodeTunnelPassword.
func encodeTunnelPassword(plaintext, secret, vector []byte, salt [2]byte) []byte {
	u := append([]byte{byte(len(plaintext))}, plaintext...)
	for len(u)%authPassLen != 0 {
		u = append(u, 0)
	}
	seed := append(append([]byte(nil), vector...), salt[:]...)
	digest := md5Block(secret, seed)

	buf := make([]byte, 2+len(u))
	copy(buf[:2], salt[:])
	for n := 0; n < len(u); n += authPassLen {
		block := u[n : n+authPassLen]
		c := make([]byte, authPassLen)
		for i := range block {
			c[i] = block[i] ^ digest[i]
		}
		copy(buf[2+n:2+n+authPassLen], c)
		digest = md5Block(secret, c)
	}
	return buf
}

func TestDecodeUserPassword(t *testing.T) {
	secret := []byte("testing123")
	vector := []byte("0123456789abcdef")

	cases := []struct {
		plaintext string
	}{
		{plaintext: "hello"},
		{plaintext: ""},
		{plaintext: "exactly-sixteen!"},
		{plaintext: "this password is longer than one sixteen byte block"},
	}
	for _, c := range cases {
		cipher := encodeUserPassword([]byte(c.plaintext), secret, vector)
		n := decodeUserPassword(cipher, secret, vector)
		got := string(cipher[:n])
		if got != c.plaintext {
			t.Errorf("decodeUserPassword(encodeUserPassword(%q)) = %q, want %q", c.plaintext, got, c.plaintext)
		}
	}
}

func TestDecodeTunnelPassword(t *testing.T) {
	secret := []byte("testing123")
	vector := []byte("0123456789abcdef")
	salt := [2]byte{0x80, 0x01}

	cases := []struct {
		plaintext string
	}{
		{plaintext: "mytunnel"},
		{plaintext: "a"},
		{plaintext: "a password that spans more than a single sixteen byte block"},
	}
	for _, c := range cases {
		buf := encodeTunnelPassword([]byte(c.plaintext), secret, vector, salt)
		n, err := decodeTunnelPassword(buf, secret, vector, false)
		if err != nil {
			t.Errorf("decodeTunnelPassword(%q): %v", c.plaintext, err)
			continue
		}
		got := string(buf[:n])
		if got != c.plaintext {
			t.Errorf("decodeTunnelPassword(encodeTunnelPassword(%q)) = %q, want %q", c.plaintext, got, c.plaintext)
		}
	}
}

func TestDecodeTunnelPasswordTooLong(t *testing.T) {
	secret := []byte("testing123")
	vector := []byte("0123456789abcdef")
	salt := [2]byte{0x80, 0x01}

	buf := encodeTunnelPassword([]byte("short"), secret, vector, salt)
	buf[2] = 0xff // corrupt the embedded length so it exceeds the ciphertext

	if _, err := decodeTunnelPassword(buf, secret, vector, false); err == nil {
		t.Errorf("decodeTunnelPassword: expected error for an embedded length exceeding the ciphertext, got none")
	}
}

func TestDecodeTunnelPasswordZerosRequired(t *testing.T) {
	secret := []byte("testing123")
	vector := []byte("0123456789abcdef")
	salt := [2]byte{0x80, 0x01}

	buf := encodeTunnelPassword([]byte("short"), secret, vector, salt)
	if _, err := decodeTunnelPassword(append([]byte(nil), buf...), secret, vector, true); err != nil {
		t.Errorf("decodeTunnelPassword with zeros=true on well-formed padding: %v", err)
	}

	// Corrupting a padding byte trips the zeros check only when requested.
	corrupt := append([]byte(nil), buf...)
	corrupt[len(corrupt)-1] ^= 0xff
	if _, err := decodeTunnelPassword(append([]byte(nil), corrupt...), secret, vector, false); err != nil {
		t.Errorf("decodeTunnelPassword with zeros=false should tolerate garbage padding: %v", err)
	}
	if _, err := decodeTunnelPassword(corrupt, secret, vector, true); err == nil {
		t.Errorf("decodeTunnelPassword with zeros=true should reject garbage padding")
	}
}

func TestDecodeAscendSecret(t *testing.T) {
	secret := []byte("testing123")
	vector := []byte("0123456789abcdef")
	plaintext := []byte("ascendsecret")

	digest := md5Block(secret, vector)
	cipher := make([]byte, len(plaintext))
	for i := range plaintext {
		cipher[i] = plaintext[i] ^ digest[i]
	}

	dst := make([]byte, authVectorLen)
	n := decodeAscendSecret(dst, secret, vector, cipher)
	if !bytes.Equal(dst[:n], plaintext) {
		t.Errorf("decodeAscendSecret() = %q, want %q", dst[:n], plaintext)
	}
}
