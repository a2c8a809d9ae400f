package radius

import (
	"encoding/binary"
	"fmt"

	"github.com/friendsofgo/errors"
	"github.com/go-kit/kit/log/level"
)

// Packet is one decoded RADIUS packet.  Instances are built by
// Context.DecodePacket and are read-only thereafter.
type Packet struct {
	// Code is the packet type from the header.
	Code PacketCode
	// Identifier is the header identifier octet used to match
	// requests with responses.
	Identifier uint8
	// Length is the total packet length declared by the header,
	// including the header itself.
	Length uint16
	// Authenticator is the 16 byte header authenticator.  For request
	// packets it doubles as key material for obscured attributes.
	Authenticator [authenticatorLen]byte
	// Attributes holds one decoded record per attribute, in wire
	// order.  On a fatal attribute decode error the attributes
	// decoded before the fault are retained here.
	Attributes []Attribute
	// EAPMessage is the reassembled EAP payload, or nil if the packet
	// carried no EAP-Message attributes.
	EAPMessage []byte
}

// Summary returns the one-line packet summary in the conventional
// columnar form, e.g. "Access-Request(1) (id=7, l=32)".
func (p *Packet) Summary() string {
	return fmt.Sprintf("%s(%d) (id=%d, l=%d)", p.Code, uint8(p.Code), p.Identifier, p.Length)
}

// DecodePacket decodes one RADIUS packet from the supplied UDP payload.
// Obscured attribute values are decrypted against the packet's own
// authenticator.
//
// On a fatal attribute-region error the returned Packet is non-nil and
// retains the attributes decoded before the fault; the error wraps one
// of ErrMalformedAVP or ErrFragmentOverflow.  Header-level failures
// return a nil Packet wrapping ErrMalformedHeader or ErrTruncatedPacket.
func (ctx *Context) DecodePacket(b []byte) (*Packet, error) {
	return ctx.decodePacket(b, nil)
}

// DecodePacketWithAuth decodes one RADIUS packet using reqAuth as the
// decryption key material instead of the packet's own authenticator.
// Response packets obscure attribute values against the authenticator
// of the request which elicited them, so callers tracking
// request/response pairings should decode responses through this entry
// point.  reqAuth must be 16 bytes.
func (ctx *Context) DecodePacketWithAuth(b []byte, reqAuth []byte) (*Packet, error) {
	if len(reqAuth) != authenticatorLen {
		return nil, errors.Errorf("request authenticator must be %d bytes, got %d",
			authenticatorLen, len(reqAuth))
	}
	return ctx.decodePacket(b, reqAuth)
}

func (ctx *Context) decodePacket(b []byte, reqAuth []byte) (*Packet, error) {
	if len(b) < headerLen {
		return nil, errors.Wrapf(ErrMalformedHeader,
			"packet length %d below minimum %d", len(b), headerLen)
	}

	pkt := &Packet{
		Code:       PacketCode(b[0]),
		Identifier: b[1],
		Length:     binary.BigEndian.Uint16(b[2:4]),
	}
	copy(pkt.Authenticator[:], b[4:headerLen])

	// The AVP region length derives from the declared total length.
	// A declared length below the fixed header is bogus, and RFC2865
	// caps the total at 4096 octets.
	if pkt.Length < headerLen {
		return nil, errors.Wrapf(ErrMalformedHeader,
			"bogus header length %d", pkt.Length)
	}
	if pkt.Length > MaxPacketSize {
		return nil, errors.Wrapf(ErrMalformedHeader,
			"header length %d exceeds maximum %d", pkt.Length, MaxPacketSize)
	}
	if int(pkt.Length) > len(b) {
		return nil, errors.Wrapf(ErrTruncatedPacket,
			"header declares %d bytes, buffer holds %d", pkt.Length, len(b))
	}

	// Decryption key material for this decode: the packet's own
	// authenticator unless the caller supplied the pairing request's.
	salt := pkt.Authenticator
	if reqAuth != nil {
		copy(salt[:], reqAuth)
	}

	level.Debug(ctx.logger).Log(
		"message", "decode packet",
		"code", pkt.Code,
		"id", pkt.Identifier,
		"length", pkt.Length)

	d := decoder{ctx: ctx, pkt: pkt, salt: salt}
	if err := d.walkAVPs(b[headerLen:pkt.Length]); err != nil {
		return pkt, err
	}
	return pkt, nil
}
