package radius

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/go-kit/kit/log/level"
)

const (
	// avpHeaderLen is the attribute type + length header width.
	avpHeaderLen = 2
	// avpMinLen is the minimum legal attribute length: the header
	// plus at least one value byte.
	avpMinLen = 3
	// vsaHeaderLen is the bytes consumed from the start of a
	// Vendor-Specific attribute before its value: the outer header,
	// the 4 byte vendor ID and the nested sub-attribute header.
	vsaHeaderLen = 8
)

// Attribute is one decoded attribute record.
type Attribute struct {
	// Name is the dictionary name resolved for the attribute, or
	// "Unknown-Attribute" if the dictionary has no entry.
	Name string
	// Code is the attribute code from the wire.  For vendor-specific
	// attributes this is the nested sub-attribute code.
	Code uint8
	// VendorID is the vendor enterprise number, or 0 for standard
	// attributes.
	VendorID uint32
	// VendorName is the resolved vendor name, "Unknown" for an
	// unrecognised vendor, or "" for standard attributes.
	VendorName string
	// Tag is the RFC2868 tag octet.  Valid only if HasTag is set.
	Tag uint8
	// HasTag indicates a tag octet was extracted from the value.
	HasTag bool
	// Value is the formatted display value.
	Value string
	// Note carries a non-fatal decode annotation such as a
	// wrong-length condition, or "" if the decode was clean.
	Note string
}

// String represents the attribute as a human-readable string.
// Implements the fmt.Stringer() interface.
var _ fmt.Stringer = (*Attribute)(nil)

func (a Attribute) String() string {
	var str strings.Builder
	if a.VendorName != "" {
		fmt.Fprintf(&str, "v=%s(%d) ", a.VendorName, a.VendorID)
	}
	fmt.Fprintf(&str, "t=%s(%d)", a.Name, a.Code)
	if a.HasTag {
		fmt.Fprintf(&str, " Tag=0x%.2x", a.Tag)
	}
	fmt.Fprintf(&str, ": %s", a.Value)
	return str.String()
}

// decoder carries the per-call state for one packet decode: the
// destination packet, the decryption key material and the EAP
// reassembly buffer.  A fresh decoder per call keeps concurrent
// decodes independent.
type decoder struct {
	ctx  *Context
	pkt  *Packet
	salt [authenticatorLen]byte
	eap  eapAssembler
}

// walkAVPs iterates the attribute region of one packet, emitting one
// decoded attribute record per AVP.
//
// The cursor is the sole source of truth for consumption: each AVP
// advances it by the attribute's declared length, and the loop runs
// until the cursor reaches the end of the region.  An attribute whose
// declared length disagrees with its content still advances the cursor
// by the declared length, keeping the walk in lockstep with the
// packet's own length accounting.
func (d *decoder) walkAVPs(region []byte) error {
	off, end := 0, len(region)

	for off < end {
		if end-off < avpHeaderLen {
			return errors.Wrapf(ErrMalformedAVP,
				"attribute header truncated at offset %d", off)
		}

		avpType := region[off]
		avpLen := int(region[off+1])

		if avpLen < avpMinLen {
			return errors.Wrapf(ErrMalformedAVP,
				"attribute length %d below minimum %d at offset %d", avpLen, avpMinLen, off)
		}

		next := off + avpLen
		if next > end {
			return errors.Wrapf(ErrMalformedAVP,
				"attribute length %d overruns region by %d bytes at offset %d",
				avpLen, next-end, off)
		}

		switch avpType {
		case attrVendorSpecific:
			// The value must hold the 4 byte vendor ID plus one
			// nested sub-attribute header before it can be
			// interpreted.
			if avpLen < vsaHeaderLen {
				return errors.Wrapf(ErrMalformedAVP,
					"vendor-specific attribute length %d below minimum %d at offset %d",
					avpLen, vsaHeaderLen, off)
			}
			vendorID := binary.BigEndian.Uint32(region[off+2 : off+6])
			subType := region[off+6]

			vendorName := "Unknown"
			var info *AttributeInfo
			if vendor := d.ctx.dict.LookupVendor(vendorID); vendor != nil {
				vendorName = vendor.Name
				info = vendor.LookupAttribute(subType)
			}
			if info == nil {
				info = unknownAttribute
			}

			// The sub-attribute's own length octet is untrusted:
			// the outer declared length governs the value bounds.
			d.emit(info, subType, vendorID, vendorName, region[off+vsaHeaderLen:next])

		case attrEAPMessage:
			if err := d.eap.addFragment(region[off+avpHeaderLen : next]); err != nil {
				return err
			}
			// Peek at the next attribute (if any) to detect the
			// final fragment of the sequence.
			if next >= end || region[next] != attrEAPMessage {
				d.eap.complete = true
			}

		default:
			info := d.ctx.dict.LookupAttribute(avpType)
			if info == nil {
				info = unknownAttribute
			}
			d.emit(info, avpType, 0, "", region[off+avpHeaderLen:next])
		}

		off = next
	}

	// The reassembled EAP payload is handed off exactly once, after
	// the walk completes, so reassembly order matches encounter order.
	if d.eap.complete {
		d.pkt.EAPMessage = d.eap.data
		level.Debug(d.ctx.logger).Log(
			"message", "reassembled EAP payload",
			"segments", d.eap.segments,
			"bytes", len(d.eap.data))
		if d.ctx.eapHandler != nil {
			d.ctx.eapHandler(d.eap.data)
		}
	}

	return nil
}

// emit decodes one attribute value and appends the record to the packet.
func (d *decoder) emit(info *AttributeInfo, code uint8, vendorID uint32, vendorName string, value []byte) {
	attr := Attribute{
		Name:       info.Name,
		Code:       code,
		VendorID:   vendorID,
		VendorName: vendorName,
	}

	if info.Tagged && len(value) > 0 && value[0] <= tagMax {
		// A tagged attribute whose true data begins with a byte in
		// the tag range is indistinguishable from a tag: the tag
		// interpretation wins, per the protocol's own rule.
		attr.Tag = value[0]
		attr.HasTag = true
		value = value[1:]
	}

	if info.Decoder != nil {
		attr.Value = info.Decoder(value)
	} else {
		attr.Value, attr.Note = decodeValue(info, value, d.ctx.secret, d.salt)
	}

	d.pkt.Attributes = append(d.pkt.Attributes, attr)
}

// eapAssembler accumulates consecutive EAP-Message fragments into one
// payload.  State is private to a single packet decode and is never
// carried across packets.
type eapAssembler struct {
	data     []byte
	segments int
	complete bool
}

func (e *eapAssembler) addFragment(frag []byte) error {
	if len(e.data)+len(frag) > MaxPacketSize {
		return errors.Wrapf(ErrFragmentOverflow,
			"reassembly of %d bytes plus fragment of %d exceeds %d",
			len(e.data), len(frag), MaxPacketSize)
	}
	e.data = append(e.data, frag...)
	e.segments++
	return nil
}
