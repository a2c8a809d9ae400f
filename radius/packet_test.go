package radius

import (
	"crypto/md5"
	"testing"

	"github.com/friendsofgo/errors"
)

// buildPacket assembles a packet buffer from header fields and an
// attribute region.
func buildPacket(code PacketCode, id uint8, auth [16]byte, avps []byte) []byte {
	total := headerLen + len(avps)
	b := make([]byte, 0, total)
	b = append(b, byte(code), id, byte(total>>8), byte(total))
	b = append(b, auth[:]...)
	b = append(b, avps...)
	return b
}

func testAuthenticator() [16]byte {
	return [16]byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	}
}

func TestDecodePacketUserName(t *testing.T) {
	ctx, err := NewContext(nil, nil)
	if err != nil {
		t.Fatalf("NewContext() failed: %v", err)
	}

	avps := []byte{0x01, 0x0a, 't', 'e', 's', 't', 'u', 's', 'e', 'r'}
	b := buildPacket(CodeAccessRequest, 7, testAuthenticator(), avps)

	pkt, err := ctx.DecodePacket(b)
	if err != nil {
		t.Fatalf("DecodePacket() failed: %v", err)
	}

	if want := "Access-Request(1) (id=7, l=30)"; pkt.Summary() != want {
		t.Errorf("Summary() == %q; want %q", pkt.Summary(), want)
	}
	if len(pkt.Attributes) != 1 {
		t.Fatalf("decoded %d attributes; want 1", len(pkt.Attributes))
	}
	attr := pkt.Attributes[0]
	if attr.Name != "User-Name" {
		t.Errorf("attribute name == %q; want %q", attr.Name, "User-Name")
	}
	if attr.Value != "testuser" {
		t.Errorf("attribute value == %q; want %q", attr.Value, "testuser")
	}
	if attr.Note != "" {
		t.Errorf("unexpected attribute note %q", attr.Note)
	}
}

func TestDecodePacketHeaderErrors(t *testing.T) {
	ctx, _ := NewContext(nil, nil)

	cases := []struct {
		name string
		in   []byte
		want error
	}{
		{
			name: "short buffer",
			in:   []byte{0x01, 0x07, 0x00, 0x14},
			want: ErrMalformedHeader,
		},
		{
			name: "bogus header length",
			in: append([]byte{0x01, 0x07, 0x00, 0x0a},
				make([]byte, 16)...),
			want: ErrMalformedHeader,
		},
		{
			name: "length above protocol maximum",
			in: append([]byte{0x01, 0x07, 0x20, 0x00},
				make([]byte, 16)...),
			want: ErrMalformedHeader,
		},
		{
			name: "truncated packet",
			in: append([]byte{0x01, 0x07, 0x00, 0x28},
				make([]byte, 16)...),
			want: ErrTruncatedPacket,
		},
	}
	for _, c := range cases {
		pkt, err := ctx.DecodePacket(c.in)
		if err == nil {
			t.Errorf("%s: expected error, got none", c.name)
			continue
		}
		if !errors.Is(err, c.want) {
			t.Errorf("%s: error %v; want %v", c.name, err, c.want)
		}
		if pkt != nil {
			t.Errorf("%s: expected nil packet on header failure", c.name)
		}
	}
}

func TestDecodePacketRetainsAttributesOnFault(t *testing.T) {
	ctx, _ := NewContext(nil, nil)

	// A valid User-Name attribute followed by an attribute declaring
	// length 1, which is below the legal minimum.
	avps := []byte{
		0x01, 0x06, 'a', 'b', 'c', 'd',
		0x05, 0x01,
	}
	b := buildPacket(CodeAccessRequest, 1, testAuthenticator(), avps)

	pkt, err := ctx.DecodePacket(b)
	if !errors.Is(err, ErrMalformedAVP) {
		t.Fatalf("error %v; want %v", err, ErrMalformedAVP)
	}
	if pkt == nil {
		t.Fatal("expected partial packet alongside the error")
	}
	if len(pkt.Attributes) != 1 || pkt.Attributes[0].Name != "User-Name" {
		t.Errorf("retained attributes %v; want the single User-Name decoded before the fault",
			pkt.Attributes)
	}
}

func TestDecodePacketWithAuth(t *testing.T) {
	const secret = "s3cret"

	ctx, _ := NewContext(nil, nil)
	ctx.SetSharedSecret(secret)

	reqAuth := testAuthenticator()

	// Obscure a Tunnel-Password value against the request
	// authenticator the way a server would.
	h := md5.New()
	h.Write([]byte(secret))
	h.Write(reqAuth[:])
	digest := h.Sum(nil)

	plaintext := []byte("hunter2")
	cipher := make([]byte, len(plaintext))
	for i := range plaintext {
		cipher[i] = plaintext[i] ^ digest[i]
	}

	// Tunnel-Password (69) is tagged: tag octet then ciphertext.
	value := append([]byte{0x01}, cipher...)
	avps := append([]byte{69, byte(2 + len(value))}, value...)

	var respAuth [16]byte // response authenticator differs from the request's
	b := buildPacket(CodeAccessAccept, 7, respAuth, avps)

	pkt, err := ctx.DecodePacketWithAuth(b, reqAuth[:])
	if err != nil {
		t.Fatalf("DecodePacketWithAuth() failed: %v", err)
	}
	if len(pkt.Attributes) != 1 {
		t.Fatalf("decoded %d attributes; want 1", len(pkt.Attributes))
	}
	attr := pkt.Attributes[0]
	if !attr.HasTag || attr.Tag != 0x01 {
		t.Errorf("tag (%v, 0x%.2x); want (true, 0x01)", attr.HasTag, attr.Tag)
	}
	if want := `Decrypted: "hunter2"`; attr.Value != want {
		t.Errorf("attribute value == %q; want %q", attr.Value, want)
	}

	// Decoding against the response's own (wrong) authenticator must
	// produce a different plaintext.
	pkt2, err := ctx.DecodePacket(b)
	if err != nil {
		t.Fatalf("DecodePacket() failed: %v", err)
	}
	if pkt2.Attributes[0].Value == attr.Value {
		t.Error("decryption ignored the supplied request authenticator")
	}
}

func TestDecodePacketWithAuthBadLength(t *testing.T) {
	ctx, _ := NewContext(nil, nil)
	b := buildPacket(CodeAccessAccept, 7, testAuthenticator(), nil)
	if _, err := ctx.DecodePacketWithAuth(b, []byte{0x01, 0x02}); err == nil {
		t.Error("expected error for short request authenticator")
	}
}

func TestPacketSummaryStrings(t *testing.T) {
	cases := []struct {
		code PacketCode
		id   uint8
		want string
	}{
		{CodeAccessRequest, 7, "Access-Request(1) (id=7, l=20)"},
		{CodeAccessAccept, 0, "Access-Accept(2) (id=0, l=20)"},
		{CodeAccountingRequest, 255, "Accounting-Request(4) (id=255, l=20)"},
		{CodeDisconnectRequest, 9, "Disconnect-Request(40) (id=9, l=20)"},
		{PacketCode(200), 1, "Unknown Packet(200) (id=1, l=20)"},
	}
	ctx, _ := NewContext(nil, nil)
	for _, c := range cases {
		b := buildPacket(c.code, c.id, testAuthenticator(), nil)
		pkt, err := ctx.DecodePacket(b)
		if err != nil {
			t.Fatalf("DecodePacket() failed: %v", err)
		}
		if pkt.Summary() != c.want {
			t.Errorf("Summary() == %q; want %q", pkt.Summary(), c.want)
		}
	}
}

func TestPacketCodeStringer(t *testing.T) {
	known := []PacketCode{
		CodeAccessRequest, CodeAccessAccept, CodeAccessReject,
		CodeAccountingRequest, CodeAccountingResponse, CodeAccountingStatus,
		CodeAccessPasswordRequest, CodeAccessPasswordAck, CodeAccessPasswordReject,
		CodeAccountingMessage, CodeAccessChallenge, CodeStatusServer,
		CodeStatusClient, CodeAscendAccessNextCode, CodeAscendAccessNewPin,
		CodeAscendPasswordExpired, CodeAscendEventRequest, CodeAscendEventResponse,
		CodeDisconnectRequest, CodeDisconnectRequestAck, CodeDisconnectRequestNak,
		CodeChangeFilterRequest, CodeChangeFilterAck, CodeChangeFilterNak,
		CodeReserved,
	}
	for _, c := range known {
		if s := c.String(); s == "Unknown Packet" || s == "" {
			t.Errorf("PacketCode(%d) stringer returned %q", uint8(c), s)
		}
	}
	if s := PacketCode(254).String(); s != "Unknown Packet" {
		t.Errorf("PacketCode(254) stringer returned %q; want \"Unknown Packet\"", s)
	}
}
