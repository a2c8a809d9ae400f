package radius

// Baseline dictionary content covering the standard RADIUS attribute
// space per RFC2865, RFC2866, RFC2868, RFC2869 and RFC3162, plus a
// small set of common vendor namespaces.  Loading site-specific
// dictionary files is out of scope here: callers with richer needs
// build their own Dictionary.

// Enumerated value labels for the standard integer attributes.
var (
	serviceTypeValues = map[uint32]string{
		1:  "Login-User",
		2:  "Framed-User",
		3:  "Callback-Login-User",
		4:  "Callback-Framed-User",
		5:  "Outbound-User",
		6:  "Administrative-User",
		7:  "NAS-Prompt-User",
		8:  "Authenticate-Only",
		9:  "Callback-NAS-Prompt",
		10: "Call-Check",
		11: "Callback-Administrative",
	}
	framedProtocolValues = map[uint32]string{
		1: "PPP",
		2: "SLIP",
		3: "ARAP",
		4: "Gandalf-SLML",
		5: "Xylogics-IPX-SLIP",
		6: "X.75-Synchronous",
	}
	framedRoutingValues = map[uint32]string{
		0: "None",
		1: "Broadcast",
		2: "Listen",
		3: "Broadcast-Listen",
	}
	framedCompressionValues = map[uint32]string{
		0: "None",
		1: "Van-Jacobson-TCP-IP",
		2: "IPX-Header-Compression",
		3: "Stac-LZS",
	}
	loginServiceValues = map[uint32]string{
		0: "Telnet",
		1: "Rlogin",
		2: "TCP-Clear",
		3: "PortMaster",
		4: "LAT",
		5: "X25-PAD",
		6: "X25-T3POS",
		8: "TCP-Clear-Quiet",
	}
	terminationActionValues = map[uint32]string{
		0: "Default",
		1: "RADIUS-Request",
	}
	acctStatusTypeValues = map[uint32]string{
		1:  "Start",
		2:  "Stop",
		3:  "Interim-Update",
		7:  "Accounting-On",
		8:  "Accounting-Off",
		9:  "Tunnel-Start",
		10: "Tunnel-Stop",
		11: "Tunnel-Reject",
		12: "Tunnel-Link-Start",
		13: "Tunnel-Link-Stop",
		14: "Tunnel-Link-Reject",
		15: "Failed",
	}
	acctAuthenticValues = map[uint32]string{
		1: "RADIUS",
		2: "Local",
		3: "Remote",
	}
	acctTerminateCauseValues = map[uint32]string{
		1:  "User-Request",
		2:  "Lost-Carrier",
		3:  "Lost-Service",
		4:  "Idle-Timeout",
		5:  "Session-Timeout",
		6:  "Admin-Reset",
		7:  "Admin-Reboot",
		8:  "Port-Error",
		9:  "NAS-Error",
		10: "NAS-Request",
		11: "NAS-Reboot",
		12: "Port-Unneeded",
		13: "Port-Preempted",
		14: "Port-Suspended",
		15: "Service-Unavailable",
		16: "Callback",
		17: "User-Error",
		18: "Host-Request",
	}
	nasPortTypeValues = map[uint32]string{
		0:  "Async",
		1:  "Sync",
		2:  "ISDN-Sync",
		3:  "ISDN-Async-V.120",
		4:  "ISDN-Async-V.110",
		5:  "Virtual",
		6:  "PIAFS",
		7:  "HDLC-Clear-Channel",
		8:  "X.25",
		9:  "X.75",
		10: "G.3-Fax",
		11: "SDSL",
		12: "ADSL-CAP",
		13: "ADSL-DMT",
		14: "IDSL",
		15: "Ethernet",
		16: "xDSL",
		17: "Cable",
		18: "Wireless-Other",
		19: "Wireless-802.11",
	}
	tunnelTypeValues = map[uint32]string{
		1:  "PPTP",
		2:  "L2F",
		3:  "L2TP",
		4:  "ATMP",
		5:  "VTP",
		6:  "AH",
		7:  "IP-IP",
		8:  "MIN-IP-IP",
		9:  "ESP",
		10: "GRE",
		11: "DVS",
		12: "IP-in-IP-Tunneling",
	}
	tunnelMediumTypeValues = map[uint32]string{
		1:  "IPv4",
		2:  "IPv6",
		3:  "NSAP",
		4:  "HDLC",
		5:  "BBN-1822",
		6:  "802",
		7:  "E.163",
		8:  "E.164",
		9:  "F.69",
		10: "X.121",
	}
	promptValues = map[uint32]string{
		0: "No-Echo",
		1: "Echo",
	}
)

var builtinAttributes = [...]AttributeInfo{
	{Name: "User-Name", Code: 1, Kind: KindString},
	{Name: "User-Password", Code: 2, Kind: KindString, Encrypted: true},
	{Name: "CHAP-Password", Code: 3, Kind: KindOctets},
	{Name: "NAS-IP-Address", Code: 4, Kind: KindIPAddr},
	{Name: "NAS-Port", Code: 5, Kind: KindInteger},
	{Name: "Service-Type", Code: 6, Kind: KindInteger, Values: serviceTypeValues},
	{Name: "Framed-Protocol", Code: 7, Kind: KindInteger, Values: framedProtocolValues},
	{Name: "Framed-IP-Address", Code: 8, Kind: KindIPAddr},
	{Name: "Framed-IP-Netmask", Code: 9, Kind: KindIPAddr},
	{Name: "Framed-Routing", Code: 10, Kind: KindInteger, Values: framedRoutingValues},
	{Name: "Filter-Id", Code: 11, Kind: KindString},
	{Name: "Framed-MTU", Code: 12, Kind: KindInteger},
	{Name: "Framed-Compression", Code: 13, Kind: KindInteger, Values: framedCompressionValues},
	{Name: "Login-IP-Host", Code: 14, Kind: KindIPAddr},
	{Name: "Login-Service", Code: 15, Kind: KindInteger, Values: loginServiceValues},
	{Name: "Login-TCP-Port", Code: 16, Kind: KindInteger},
	{Name: "Reply-Message", Code: 18, Kind: KindString},
	{Name: "Callback-Number", Code: 19, Kind: KindString},
	{Name: "Callback-Id", Code: 20, Kind: KindString},
	{Name: "Framed-Route", Code: 22, Kind: KindString},
	{Name: "Framed-IPX-Network", Code: 23, Kind: KindInteger},
	{Name: "State", Code: 24, Kind: KindOctets},
	{Name: "Class", Code: 25, Kind: KindOctets},
	{Name: "Session-Timeout", Code: 27, Kind: KindInteger},
	{Name: "Idle-Timeout", Code: 28, Kind: KindInteger},
	{Name: "Termination-Action", Code: 29, Kind: KindInteger, Values: terminationActionValues},
	{Name: "Called-Station-Id", Code: 30, Kind: KindString},
	{Name: "Calling-Station-Id", Code: 31, Kind: KindString},
	{Name: "NAS-Identifier", Code: 32, Kind: KindString},
	{Name: "Proxy-State", Code: 33, Kind: KindOctets},
	{Name: "Login-LAT-Service", Code: 34, Kind: KindString},
	{Name: "Login-LAT-Node", Code: 35, Kind: KindString},
	{Name: "Login-LAT-Group", Code: 36, Kind: KindOctets},
	{Name: "Framed-AppleTalk-Link", Code: 37, Kind: KindInteger},
	{Name: "Framed-AppleTalk-Network", Code: 38, Kind: KindInteger},
	{Name: "Framed-AppleTalk-Zone", Code: 39, Kind: KindString},
	{Name: "Acct-Status-Type", Code: 40, Kind: KindInteger, Values: acctStatusTypeValues},
	{Name: "Acct-Delay-Time", Code: 41, Kind: KindInteger},
	{Name: "Acct-Input-Octets", Code: 42, Kind: KindInteger},
	{Name: "Acct-Output-Octets", Code: 43, Kind: KindInteger},
	{Name: "Acct-Session-Id", Code: 44, Kind: KindString},
	{Name: "Acct-Authentic", Code: 45, Kind: KindInteger, Values: acctAuthenticValues},
	{Name: "Acct-Session-Time", Code: 46, Kind: KindInteger},
	{Name: "Acct-Input-Packets", Code: 47, Kind: KindInteger},
	{Name: "Acct-Output-Packets", Code: 48, Kind: KindInteger},
	{Name: "Acct-Terminate-Cause", Code: 49, Kind: KindInteger, Values: acctTerminateCauseValues},
	{Name: "Acct-Multi-Session-Id", Code: 50, Kind: KindString},
	{Name: "Acct-Link-Count", Code: 51, Kind: KindInteger},
	{Name: "Acct-Input-Gigawords", Code: 52, Kind: KindInteger},
	{Name: "Acct-Output-Gigawords", Code: 53, Kind: KindInteger},
	{Name: "Event-Timestamp", Code: 55, Kind: KindDate},
	{Name: "CHAP-Challenge", Code: 60, Kind: KindOctets},
	{Name: "NAS-Port-Type", Code: 61, Kind: KindInteger, Values: nasPortTypeValues},
	{Name: "Port-Limit", Code: 62, Kind: KindInteger},
	{Name: "Login-LAT-Port", Code: 63, Kind: KindString},
	{Name: "Tunnel-Type", Code: 64, Kind: KindInteger, Tagged: true, Values: tunnelTypeValues},
	{Name: "Tunnel-Medium-Type", Code: 65, Kind: KindInteger, Tagged: true, Values: tunnelMediumTypeValues},
	{Name: "Tunnel-Client-Endpoint", Code: 66, Kind: KindString, Tagged: true},
	{Name: "Tunnel-Server-Endpoint", Code: 67, Kind: KindString, Tagged: true},
	{Name: "Acct-Tunnel-Connection", Code: 68, Kind: KindString},
	{Name: "Tunnel-Password", Code: 69, Kind: KindString, Tagged: true, Encrypted: true},
	{Name: "ARAP-Password", Code: 70, Kind: KindOctets},
	{Name: "ARAP-Features", Code: 71, Kind: KindOctets},
	{Name: "ARAP-Zone-Access", Code: 72, Kind: KindInteger},
	{Name: "ARAP-Security", Code: 73, Kind: KindInteger},
	{Name: "ARAP-Security-Data", Code: 74, Kind: KindString},
	{Name: "Password-Retry", Code: 75, Kind: KindInteger},
	{Name: "Prompt", Code: 76, Kind: KindInteger, Values: promptValues},
	{Name: "Connect-Info", Code: 77, Kind: KindString},
	{Name: "Configuration-Token", Code: 78, Kind: KindString},
	{Name: "EAP-Message", Code: 79, Kind: KindOctets},
	{Name: "Message-Authenticator", Code: 80, Kind: KindOctets},
	{Name: "Tunnel-Private-Group-Id", Code: 81, Kind: KindString, Tagged: true},
	{Name: "Tunnel-Assignment-Id", Code: 82, Kind: KindString, Tagged: true},
	{Name: "Tunnel-Preference", Code: 83, Kind: KindInteger, Tagged: true},
	{Name: "Acct-Interim-Interval", Code: 85, Kind: KindInteger},
	{Name: "Acct-Tunnel-Packets-Lost", Code: 86, Kind: KindInteger},
	{Name: "NAS-Port-Id", Code: 87, Kind: KindString},
	{Name: "Framed-Pool", Code: 88, Kind: KindString},
	{Name: "Tunnel-Client-Auth-Id", Code: 90, Kind: KindString, Tagged: true},
	{Name: "Tunnel-Server-Auth-Id", Code: 91, Kind: KindString, Tagged: true},
	{Name: "NAS-IPv6-Address", Code: 95, Kind: KindIPv6Addr},
	{Name: "Framed-Interface-Id", Code: 96, Kind: KindIfID},
	{Name: "Framed-IPv6-Prefix", Code: 97, Kind: KindOctets},
	{Name: "Login-IPv6-Host", Code: 98, Kind: KindIPv6Addr},
	{Name: "Framed-IPv6-Route", Code: 99, Kind: KindString},
	{Name: "Framed-IPv6-Pool", Code: 100, Kind: KindString},
}

// Well-known vendor enterprise numbers carried by the builtin
// dictionary.
const (
	// VendorCisco is the Cisco Systems enterprise number.
	VendorCisco = 9
	// VendorMicrosoft is the Microsoft enterprise number.
	VendorMicrosoft = 311
	// VendorCosine is the CoSine Communications enterprise number.
	VendorCosine = 3085
)

// BuiltinDictionary builds the baseline dictionary.  Each call returns
// a fresh instance: callers may extend the returned dictionary without
// affecting other contexts.
func BuiltinDictionary() *Dictionary {
	d := NewDictionary()

	for i := range builtinAttributes {
		a := builtinAttributes[i]
		d.AddAttribute(&a)
	}

	cisco := d.AddVendor(VendorCisco, "Cisco")
	cisco.AddAttribute(&AttributeInfo{Name: "Cisco-AVPair", Code: 1, Kind: KindString})
	cisco.AddAttribute(&AttributeInfo{Name: "Cisco-NAS-Port", Code: 2, Kind: KindString})

	microsoft := d.AddVendor(VendorMicrosoft, "Microsoft")
	microsoft.AddAttribute(&AttributeInfo{Name: "MS-CHAP-Response", Code: 1, Kind: KindOctets})
	microsoft.AddAttribute(&AttributeInfo{Name: "MS-MPPE-Encryption-Policy", Code: 7, Kind: KindInteger})
	microsoft.AddAttribute(&AttributeInfo{Name: "MS-CHAP-Challenge", Code: 11, Kind: KindOctets})
	microsoft.AddAttribute(&AttributeInfo{Name: "MS-MPPE-Send-Key", Code: 16, Kind: KindOctets})
	microsoft.AddAttribute(&AttributeInfo{Name: "MS-MPPE-Recv-Key", Code: 17, Kind: KindOctets})
	microsoft.AddAttribute(&AttributeInfo{Name: "MS-CHAP2-Response", Code: 25, Kind: KindOctets})

	cosine := d.AddVendor(VendorCosine, "CoSine")
	cosine.AddAttribute(&AttributeInfo{Name: "Cosine-Connection-Profile-Name", Code: 1, Kind: KindString})
	cosine.AddAttribute(&AttributeInfo{Name: "Cosine-Enterprise-Id", Code: 2, Kind: KindString})
	cosine.AddAttribute(&AttributeInfo{Name: "Cosine-VPI-VCI", Code: 5, Kind: KindOctets})
	cosine.AddAttribute(&AttributeInfo{Name: "Cosine-DLCI", Code: 6, Kind: KindInteger})

	return d
}
