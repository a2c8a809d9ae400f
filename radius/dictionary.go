package radius

import (
	"fmt"
)

// AttrKind indicates the semantic kind of the value carried by an
// attribute.  The kind selects the value decoder used to render the
// attribute, and is carried explicitly on the dictionary entry rather
// than being inferred from the decoder itself.
type AttrKind int

const (
	// KindOctets represents an attribute carrying an opaque byte string
	KindOctets AttrKind = iota
	// KindString represents an attribute carrying printable text
	KindString
	// KindInteger represents an attribute carrying a 2, 3 or 4 byte
	// big-endian unsigned integer
	KindInteger
	// KindInteger64 represents an attribute carrying an 8 byte
	// big-endian unsigned integer
	KindInteger64
	// KindIPAddr represents an attribute carrying an IPv4 address
	KindIPAddr
	// KindIPv6Addr represents an attribute carrying an IPv6 address
	KindIPv6Addr
	// KindDate represents an attribute carrying a timestamp encoded as
	// seconds since the Unix epoch
	KindDate
	// KindIfID represents an attribute carrying an 8 byte IPv6
	// interface identifier
	KindIfID
	// KindABinary represents an attribute carrying an Ascend binary
	// filter, rendered as opaque bytes
	KindABinary
	// kindMax is a sentinel value for test purposes
	kindMax
)

// String converts an AttrKind into a human-readable string.
// Implements the fmt.Stringer() interface.
var _ fmt.Stringer = (*AttrKind)(nil)

func (k AttrKind) String() string {
	switch k {
	case KindOctets:
		return "octets"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindInteger64:
		return "integer64"
	case KindIPAddr:
		return "ipaddr"
	case KindIPv6Addr:
		return "ipv6addr"
	case KindDate:
		return "date"
	case KindIfID:
		return "ifid"
	case KindABinary:
		return "abinary"
	}
	return "unrecognised attribute kind"
}

// AVPDecoderFunc decodes a raw attribute value into a display string.
// Decoder functions registered via Context.RegisterAVPDecoder override
// the kind-driven semantic decode for their attribute.
type AVPDecoderFunc func(value []byte) string

// AttributeInfo is the dictionary metadata describing one attribute.
// Instances are owned by their Dictionary and must not be mutated once
// decode traffic begins.
type AttributeInfo struct {
	// Name is the attribute's dictionary name, e.g. "User-Name".
	Name string
	// Code is the attribute's numeric code within its namespace.
	Code uint8
	// Tagged indicates the value may carry a leading tag octet
	// per RFC2868.
	Tagged bool
	// Encrypted indicates the value is obscured using the shared
	// secret and the packet authenticator.
	Encrypted bool
	// Kind selects the semantic value decoder for the attribute.
	Kind AttrKind
	// Values optionally maps enumerated integer values to labels.
	Values map[uint32]string
	// Decoder optionally overrides the kind-driven decode entirely.
	Decoder AVPDecoderFunc
}

// VendorInfo is the dictionary metadata describing one vendor
// namespace: the vendor name and its own attribute map.
type VendorInfo struct {
	// Name is the vendor's dictionary name, e.g. "Cisco".
	Name string
	// ID is the vendor's SMI enterprise number.
	ID uint32

	attrs map[uint8]*AttributeInfo
}

// LookupAttribute returns the vendor's dictionary entry for the given
// attribute code, or nil if the vendor has no such attribute.
func (v *VendorInfo) LookupAttribute(code uint8) *AttributeInfo {
	return v.attrs[code]
}

// AddAttribute adds an attribute entry to the vendor's namespace,
// replacing any existing entry with the same code.
func (v *VendorInfo) AddAttribute(a *AttributeInfo) {
	v.attrs[a.Code] = a
}

// Dictionary maps attribute codes, and (vendor, attribute code) pairs,
// to attribute metadata.  A Dictionary is built during initialisation
// and treated as read-only by the decoder: it may be shared freely
// between concurrent decode calls.
type Dictionary struct {
	attrs   map[uint8]*AttributeInfo
	vendors map[uint32]*VendorInfo
}

// unknownAttribute is substituted whenever an attribute code has no
// dictionary entry.  Unknown attributes degrade to an opaque byte
// rendering rather than failing the decode.
var unknownAttribute = &AttributeInfo{
	Name: "Unknown-Attribute",
	Kind: KindOctets,
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		attrs:   make(map[uint8]*AttributeInfo),
		vendors: make(map[uint32]*VendorInfo),
	}
}

// AddAttribute adds a top-level attribute entry to the dictionary,
// replacing any existing entry with the same code.
func (d *Dictionary) AddAttribute(a *AttributeInfo) {
	d.attrs[a.Code] = a
}

// AddVendor adds a vendor namespace to the dictionary and returns it.
// If the vendor ID is already present the existing entry is returned
// unchanged.
func (d *Dictionary) AddVendor(id uint32, name string) *VendorInfo {
	if v, ok := d.vendors[id]; ok {
		return v
	}
	v := &VendorInfo{
		Name:  name,
		ID:    id,
		attrs: make(map[uint8]*AttributeInfo),
	}
	d.vendors[id] = v
	return v
}

// LookupAttribute returns the dictionary entry for the given top-level
// attribute code, or nil if there is no such entry.
func (d *Dictionary) LookupAttribute(code uint8) *AttributeInfo {
	return d.attrs[code]
}

// LookupVendor returns the vendor entry for the given enterprise
// number, or nil if there is no such vendor.
func (d *Dictionary) LookupVendor(id uint32) *VendorInfo {
	return d.vendors[id]
}

// registerDecoder installs fn for the (vendor, attribute) pair,
// creating synthetic entries where the dictionary has none.
func (d *Dictionary) registerDecoder(vendorID uint32, code uint8, fn AVPDecoderFunc) {
	var entry *AttributeInfo

	if vendorID != 0 {
		vendor := d.vendors[vendorID]
		if vendor == nil {
			vendor = d.AddVendor(vendorID, fmt.Sprintf("Unknown-Vendor-%d", vendorID))
		}
		entry = vendor.attrs[code]
		if entry == nil {
			entry = &AttributeInfo{
				Name: fmt.Sprintf("Unknown-Attribute-%d", code),
				Code: code,
				Kind: KindOctets,
			}
			vendor.attrs[code] = entry
		}
	} else {
		entry = d.attrs[code]
		if entry == nil {
			entry = &AttributeInfo{
				Name: fmt.Sprintf("Unknown-Attribute-%d", code),
				Code: code,
				Kind: KindOctets,
			}
			d.attrs[code] = entry
		}
	}

	entry.Decoder = fn
}
