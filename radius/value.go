package radius

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Value decoders render a raw attribute value into a display string.
// A decoder given a value of the wrong length does not fail the packet:
// it returns a bracketed note which is surfaced alongside the attribute.

func decodeValue(info *AttributeInfo, value []byte, secret string, salt [authenticatorLen]byte) (display, note string) {
	switch info.Kind {
	case KindInteger, KindInteger64:
		return decodeInteger(info, value)
	case KindString:
		return decodeString(info, value, secret, salt), ""
	case KindIPAddr:
		return decodeIPAddr(value)
	case KindIPv6Addr:
		return decodeIPv6Addr(value)
	case KindDate:
		return decodeDate(value)
	case KindOctets, KindIfID, KindABinary:
		return hexString(value), ""
	}
	return hexString(value), ""
}

func decodeInteger(info *AttributeInfo, value []byte) (display, note string) {
	var v uint32

	switch len(value) {
	case 2:
		v = uint32(binary.BigEndian.Uint16(value))
	case 3:
		v = uint32(value[0])<<16 | uint32(value[1])<<8 | uint32(value[2])
	case 4:
		v = binary.BigEndian.Uint32(value)
	case 8:
		// 64-bit integers carry no enumerated labels
		return strconv.FormatUint(binary.BigEndian.Uint64(value), 10), ""
	default:
		note = fmt.Sprintf("[unhandled integer length(%d)]", len(value))
		return note, note
	}

	if info.Values != nil {
		label, ok := info.Values[v]
		if !ok {
			label = "Unknown"
		}
		return fmt.Sprintf("%s(%d)", label, v), ""
	}
	return strconv.FormatUint(uint64(v), 10), ""
}

func decodeString(info *AttributeInfo, value []byte, secret string, salt [authenticatorLen]byte) string {
	if info.Encrypted {
		if secret == "" {
			// No key material configured: don't guess, just show
			// the ciphertext.
			return fmt.Sprintf("Encrypted (%s)", hexString(value))
		}
		return "Decrypted: " + decryptAttribute(value, secret, salt)
	}
	return formatText(value)
}

func decodeIPAddr(value []byte) (display, note string) {
	if len(value) != 4 {
		note = "[wrong length for IP address]"
		return note, note
	}
	return net.IP(value).String(), ""
}

func decodeIPv6Addr(value []byte) (display, note string) {
	if len(value) != 16 {
		note = "[wrong length for IPv6 address]"
		return note, note
	}
	return net.IP(value).String(), ""
}

func decodeDate(value []byte) (display, note string) {
	if len(value) != 4 {
		note = "[wrong length for timestamp]"
		return note, note
	}
	secs := int64(binary.BigEndian.Uint32(value))
	return time.Unix(secs, 0).UTC().Format(time.RFC3339), ""
}

// hexString renders a byte string as lowercase hex digits.
func hexString(value []byte) string {
	return hex.EncodeToString(value)
}

// formatText renders a byte string as text: printable bytes pass
// through literally, anything else becomes a 3-digit octal escape.
func formatText(value []byte) string {
	var str strings.Builder
	for _, c := range value {
		if isPrint(c) {
			str.WriteByte(c)
		} else {
			fmt.Fprintf(&str, "\\%03o", c)
		}
	}
	return str.String()
}

func isPrint(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// CosineVPVC decodes the CoSine VP/VC attribute (vendor 3085,
// attribute 5): a pair of big-endian 16-bit values rendered as
// "<vpi>/<vci>".  It is intended for registration via
// Context.RegisterAVPDecoder as the attribute's value syntax is not
// one of the standard semantic kinds.
func CosineVPVC(value []byte) string {
	if len(value) != 4 {
		return "[wrong length for VP/VC AVP]"
	}
	vpi := binary.BigEndian.Uint16(value[0:2])
	vci := binary.BigEndian.Uint16(value[2:4])
	return fmt.Sprintf("%d/%d", vpi, vci)
}
