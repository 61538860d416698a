package radius

import (
	"crypto/md5"
	"fmt"
)

const authVectorLen = 16
const authPassLen = 16

// md5Block computes one round of the RADIUS keystream generator:
// MD5(secret || seed). Every obfuscation scheme in this file chains
// these blocks together, each one seeded by either the request
// authenticator (the first block) or the previous block's original
// ciphertext (every block after) - never the decrypted plaintext.
func md5Block(secret, seed []byte) [md5.Size]byte {
	h := md5.New()
	h.Write(secret)
	h.Write(seed)
	var out [md5.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// splitBlocks copies buf into consecutive blockLen-sized (or shorter,
// for the final block) slices, so the keystream chain below can be
// computed from the original ciphertext before any byte of buf is
// overwritten in place.
func splitBlocks(buf []byte, blockLen int) [][]byte {
	var blocks [][]byte
	for n := 0; n < len(buf); n += blockLen {
		end := n + blockLen
		if end > len(buf) {
			end = len(buf)
		}
		blocks = append(blocks, append([]byte(nil), buf[n:end]...))
	}
	return blocks
}

// decodeUserPassword reverses the RFC2865 User-Password obfuscation in
// place. The caller is responsible for chopping the ciphertext to at
// most 253 bytes first (value.go does this before dispatching here).
//
// It returns the plaintext length after stripping trailing NUL bytes,
// matching fr_radius_decode_password's strlen-based termination.
func decodeUserPassword(buf []byte, secret, vector []byte) int {
	blocks := splitBlocks(buf, authPassLen)
	digest := md5Block(secret, vector)
	for idx, block := range blocks {
		n := idx * authPassLen
		for i := range block {
			buf[n+i] = block[i] ^ digest[i]
		}
		digest = md5Block(secret, block)
	}

	n := len(buf)
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	return n
}

// decodeTunnelPassword reverses the RFC2868 Tunnel-Password obfuscation.
// buf is the full ciphertext including the two-byte salt: buf[0:2] is
// the salt, buf[2] is the embedded plaintext length, and buf[2:] is the
// MD5-keystreamed ciphertext in authPassLen blocks.
//
// It mutates buf in place and returns the embedded plaintext length, or
// an error if the embedded length is inconsistent with the ciphertext,
// or (when zeros is set) the padding past the embedded length isn't all
// zero. Both are treated by the caller as "fall back to raw" rather than
// aborting the whole packet decode.
func decodeTunnelPassword(buf []byte, secret, vector []byte, zeros bool) (int, error) {
	if len(buf) < 2 {
		return 0, fmt.Errorf("tunnel password is too short")
	}
	if len(buf) <= 3 {
		return 0, nil
	}

	encryptedLen := len(buf) - 2

	blocks := splitBlocks(buf[2:], authPassLen)

	seed := append(append([]byte(nil), vector...), buf[:2]...)
	digest := md5Block(secret, seed)

	embeddedLen := int(buf[2] ^ digest[0])
	if embeddedLen > encryptedLen {
		return 0, fmt.Errorf("tunnel password is too long for the attribute (shared secret is probably incorrect!)")
	}

	for idx, block := range blocks {
		n := idx * authPassLen
		base := 0
		if idx == 0 {
			base = 1
		}
		for i := base; i < len(block); i++ {
			buf[n+i-1] = block[i] ^ digest[i]
		}
		digest = md5Block(secret, block)
	}

	if zeros {
		for i := embeddedLen; i < encryptedLen-1; i++ {
			if buf[i] != 0 {
				return 0, fmt.Errorf("trailing garbage in tunnel password (shared secret is probably incorrect!)")
			}
		}
	}

	return embeddedLen, nil
}

// decodeAscendSecret reverses the single-block Ascend-Send-Secret /
// Ascend-Receive-Secret obfuscation: one MD5(secret||vector) keystream
// block XORed against up to authVectorLen bytes of ciphertext, matching
// fr_radius_ascend_secret. Longer inputs are silently truncated to
// authVectorLen, as the source does, and the result is NUL-terminated
// the same way User-Password is.
func decodeAscendSecret(dst, secret, vector, ciphertext []byte) int {
	digest := md5Block(secret, vector)
	n := len(ciphertext)
	if n > authVectorLen {
		n = authVectorLen
	}
	for i := 0; i < n; i++ {
		dst[i] = ciphertext[i] ^ digest[i]
	}
	end := n
	for end > 0 && dst[end-1] == 0 {
		end--
	}
	return end
}
