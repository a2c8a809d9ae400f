package radius

import (
	"fmt"

	"github.com/friendsofgo/errors"
	"github.com/go-kit/kit/log"
)

// PacketCode is the RADIUS packet type carried in the first header octet.
type PacketCode uint8

// RADIUS packet codes as per RFC2865, RFC2866 and RFC3576,
// plus the Ascend vendor extensions.
const (
	CodeAccessRequest         PacketCode = 1
	CodeAccessAccept          PacketCode = 2
	CodeAccessReject          PacketCode = 3
	CodeAccountingRequest     PacketCode = 4
	CodeAccountingResponse    PacketCode = 5
	CodeAccountingStatus      PacketCode = 6
	CodeAccessPasswordRequest PacketCode = 7
	CodeAccessPasswordAck     PacketCode = 8
	CodeAccessPasswordReject  PacketCode = 9
	CodeAccountingMessage     PacketCode = 10
	CodeAccessChallenge       PacketCode = 11
	CodeStatusServer          PacketCode = 12
	CodeStatusClient          PacketCode = 13
	CodeAscendAccessNextCode  PacketCode = 29
	CodeAscendAccessNewPin    PacketCode = 30
	CodeAscendPasswordExpired PacketCode = 32
	CodeAscendEventRequest    PacketCode = 33
	CodeAscendEventResponse   PacketCode = 34
	CodeDisconnectRequest     PacketCode = 40
	CodeDisconnectRequestAck  PacketCode = 41
	CodeDisconnectRequestNak  PacketCode = 42
	CodeChangeFilterRequest   PacketCode = 43
	CodeChangeFilterAck       PacketCode = 44
	CodeChangeFilterNak       PacketCode = 45
	CodeReserved              PacketCode = 255
)

const (
	// headerLen is the fixed RADIUS header length: code, identifier,
	// length and the 16 byte authenticator.
	headerLen = 20
	// authenticatorLen is the length of the header authenticator field.
	authenticatorLen = 16
	// MaxPacketSize is the maximum RADIUS packet size per RFC2865.
	MaxPacketSize = 4096
	// attrVendorSpecific is the reserved Vendor-Specific attribute code.
	attrVendorSpecific = 26
	// attrEAPMessage is the EAP-Message attribute code per RFC2869.
	attrEAPMessage = 79
	// tagMax is the largest value the optional attribute tag octet
	// may take per RFC2868.
	tagMax = 0x1f
)

// Decode failure conditions.  Errors returned by DecodePacket wrap one
// of these sentinels and may be matched using errors.Is.
var (
	// ErrMalformedHeader indicates the packet header is invalid: the
	// buffer is shorter than the fixed header, or the declared length
	// is out of the legal range.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrTruncatedPacket indicates the buffer is shorter than the
	// length declared by the packet header.
	ErrTruncatedPacket = errors.New("truncated packet")
	// ErrMalformedAVP indicates an attribute header which cannot be
	// consumed safely.  Decoding of the remaining attribute region is
	// abandoned; attributes decoded before the fault are retained.
	ErrMalformedAVP = errors.New("malformed attribute")
	// ErrFragmentOverflow indicates EAP-Message reassembly exceeded
	// the maximum RADIUS packet size.
	ErrFragmentOverflow = errors.New("EAP fragment exceeds maximum packet size")
)

// EAPHandler receives a reassembled EAP message payload.
// The handler is invoked at most once per decoded packet, after the
// attribute walk has completed.
type EAPHandler func(payload []byte)

// Context holds the process-wide state shared by packet decodes: the
// attribute dictionary, registered custom decoders, the shared secret
// and the logger.
//
// A Context must be treated as immutable once decode traffic begins.
// The setter methods and RegisterAVPDecoder exist for the benefit of an
// initialisation phase and are not safe to interleave with concurrent
// DecodePacket calls.
type Context struct {
	dict       *Dictionary
	secret     string
	eapHandler EAPHandler
	logger     log.Logger
}

// NewContext creates a decode context from the supplied dictionary.
// A nil dictionary selects the builtin baseline dictionary.
// A nil logger disables logging.
func NewContext(dict *Dictionary, logger log.Logger) (*Context, error) {
	if dict == nil {
		dict = BuiltinDictionary()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Context{
		dict:   dict,
		logger: logger,
	}, nil
}

// Dictionary returns the dictionary the context decodes against.
func (ctx *Context) Dictionary() *Dictionary {
	return ctx.dict
}

// SetSharedSecret sets the shared secret used to decrypt obscured
// attribute values.  An empty secret (the default) disables decryption:
// obscured values are reported as encrypted instead.
func (ctx *Context) SetSharedSecret(secret string) {
	ctx.secret = secret
}

// SetEAPHandler sets the handler invoked with the reassembled payload
// when a packet carries one or more EAP-Message attributes.
func (ctx *Context) SetEAPHandler(handler EAPHandler) {
	ctx.eapHandler = handler
}

// RegisterAVPDecoder installs fn as the decoder for the given
// (vendor, attribute) pair, overriding the dictionary-driven semantic
// decode for that attribute.  A vendorID of 0 addresses the standard
// top-level attribute space.
//
// If the dictionary has no entry for the pair, a synthetic
// Unknown-Vendor-<id> / Unknown-Attribute-<code> entry is created.
// Repeated registration for the same pair is permitted: the last
// registration wins.
func (ctx *Context) RegisterAVPDecoder(vendorID uint32, code uint8, fn AVPDecoderFunc) {
	ctx.dict.registerDecoder(vendorID, code, fn)
}

// String converts a PacketCode into a human-readable string.
// Implements the fmt.Stringer() interface.
var _ fmt.Stringer = (*PacketCode)(nil)

func (c PacketCode) String() string {
	switch c {
	case CodeAccessRequest:
		return "Access-Request"
	case CodeAccessAccept:
		return "Access-Accept"
	case CodeAccessReject:
		return "Access-Reject"
	case CodeAccountingRequest:
		return "Accounting-Request"
	case CodeAccountingResponse:
		return "Accounting-Response"
	case CodeAccountingStatus:
		return "Accounting-Status"
	case CodeAccessPasswordRequest:
		return "Access-Password-Request"
	case CodeAccessPasswordAck:
		return "Access-Password-Ack"
	case CodeAccessPasswordReject:
		return "Access-Password-Reject"
	case CodeAccountingMessage:
		return "Accounting-Message"
	case CodeAccessChallenge:
		return "Access-Challenge"
	case CodeStatusServer:
		return "Status-Server"
	case CodeStatusClient:
		return "Status-Client"
	case CodeAscendAccessNextCode:
		return "Ascend-Access-Next-Code"
	case CodeAscendAccessNewPin:
		return "Ascend-Access-New-Pin"
	case CodeAscendPasswordExpired:
		return "Ascend-Password-Expired"
	case CodeAscendEventRequest:
		return "Ascend-Access-Event-Request"
	case CodeAscendEventResponse:
		return "Ascend-Access-Event-Response"
	case CodeDisconnectRequest:
		return "Disconnect-Request"
	case CodeDisconnectRequestAck:
		return "Disconnect-Request ACK"
	case CodeDisconnectRequestNak:
		return "Disconnect-Request NAK"
	case CodeChangeFilterRequest:
		return "Change-Filter-Request"
	case CodeChangeFilterAck:
		return "Change-Filter-Request-ACK"
	case CodeChangeFilterNak:
		return "Change-Filter-Request-NAK"
	case CodeReserved:
		return "Reserved"
	}
	return "Unknown Packet"
}

// IsRequest returns true for packet codes which carry a request
// authenticator, i.e. those sent from a client towards a server.
func (c PacketCode) IsRequest() bool {
	switch c {
	case CodeAccessRequest, CodeAccountingRequest, CodeStatusServer,
		CodeDisconnectRequest, CodeChangeFilterRequest:
		return true
	}
	return false
}
