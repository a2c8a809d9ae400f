package radius

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// decryptAttribute decodes an obscured attribute value.
//
// The key stream is a single digest of MD5(secret || authenticator):
// the first 16 ciphertext bytes are XORed with the digest, and any
// trailing bytes are emitted unmodified.  This deliberately does not
// chain digests for longer values the way the RFC2865 User-Password
// algorithm does; it matches the limited-scope scheme used by the
// attributes the dictionary marks as encrypted.
//
// The plaintext is rendered with printable bytes passed through
// literally and anything else as a 3-digit octal escape, and the whole
// result is wrapped in double quotes.
func decryptAttribute(ciphertext []byte, secret string, authenticator [authenticatorLen]byte) string {
	h := md5.New()
	h.Write([]byte(secret))
	h.Write(authenticator[:])
	digest := h.Sum(nil)

	var str strings.Builder
	str.WriteByte('"')
	for i, c := range ciphertext {
		if i < md5.Size {
			c ^= digest[i]
		}
		if isPrint(c) {
			str.WriteByte(c)
		} else {
			fmt.Fprintf(&str, "\\%03o", c)
		}
	}
	str.WriteByte('"')
	return str.String()
}
