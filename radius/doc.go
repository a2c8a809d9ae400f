/*
Package radius implements a decoder for RADIUS protocol packets.

RADIUS is specified by RFC2865 (authentication) and RFC2866 (accounting),
with attribute extensions described by RFC2868, RFC2869 and RFC3162.

A RADIUS packet is a fixed 20 byte header followed by a sequence of
self-describing Attribute Value Pairs (AVPs).  Attributes may be
vendor-specific sub-containers keyed by an enterprise number, fragments
of an encapsulated EAP message which must be reassembled, or values
obscured using a stream cipher keyed on a shared secret and the packet
authenticator.

Package radius decodes the packet header and walks the attribute stream,
resolving each attribute through a dictionary of attribute metadata and
producing one decoded attribute record per AVP.  EAP-Message fragments
are reassembled into a single payload which is handed off to a caller
supplied handler: the EAP protocol itself is not decoded here.

Usage

	import (
		"github.com/packetflare/go-radius/radius"
	)

	# Note we're ignoring errors for brevity.

	# Creation of a decode context requires a dictionary.
	# Passing a nil dictionary selects the builtin baseline
	# dictionary covering the standard RFC attribute set.
	ctx, _ := radius.NewContext(nil, logger)

	# The shared secret enables decryption of obscured attributes.
	ctx.SetSharedSecret("s3cret")

	# Decode a received UDP payload.
	pkt, _ := ctx.DecodePacket(payload)
	fmt.Println(pkt.Summary())
	for _, attr := range pkt.Attributes {
		fmt.Println(attr)
	}

Dictionaries

The decoder is driven by attribute metadata: the attribute's name, its
semantic kind (integer, string, address, timestamp and so on), whether
it carries a tag prefix, whether its value is obscured, and an optional
table of enumerated value labels.  The builtin dictionary covers the
standard attribute space and a small set of common vendors.  Callers
may build their own Dictionary instances, and may override the decoding
of individual (vendor, attribute) pairs by registering a custom decoder
function via Context.RegisterAVPDecoder.

The Context is immutable once decode traffic begins: dictionary edits
and decoder registration are only safe during an initialisation phase
before concurrent decoding starts.  The decoder itself takes no locks.
Separate packets may be decoded concurrently: each DecodePacket call
carries its own reassembly and decryption state.

Logging

Package radius uses structured logging.  The logger of choice is the
go-kit logger: https://godoc.org/github.com/go-kit/kit/log, and uses
go-kit levels in order to separate verbose debugging logs from normal
informational output.

To disable all logging from package radius, pass in a nil logger.
*/
package radius
