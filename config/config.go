/*
Package config implements a parser for radwatchd configuration
represented in the TOML format: https://github.com/toml-lang/toml.

Please refer to the TOML repos for an in-depth description of the syntax.

Top-level keys configure the daemon itself.  Clients sending packets
to the daemon are called out using named TOML tables, keyed by the
client's source IP address.  Each client table contains configuration
parameters for that client as key:value pairs.

	# secret is the default shared secret, used to decrypt obscured
	# attribute values for clients without a per-client secret.
	# If unset, obscured values are reported as encrypted rather than
	# being decrypted.
	secret = "s3cret"

	# listen specifies the UDP addresses the daemon binds to.
	# The conventional authentication and accounting ports are 1812
	# and 1813 respectively.
	listen = ["0.0.0.0:1812", "0.0.0.0:1813"]

	# metrics_address, if set, enables the metrics HTTP endpoint on
	# the given address.
	# By default no metrics endpoint is started.
	metrics_address = "127.0.0.1:9812"

	# pending_max bounds how many outstanding requests are tracked
	# per client for correlating responses with the request
	# authenticator they were computed against.
	# The default is 256 requests per client.
	pending_max = 256

	# This is a client instance for the NAS at 192.0.2.1.
	[client."192.0.2.1"]

	# secret overrides the default shared secret for this client.
	secret = "per-client-secret"
*/
package config

import (
	"fmt"

	"github.com/pelletier/go-toml"
)

// DefaultPendingMax bounds per-client request tracking when the
// configuration does not specify pending_max.
const DefaultPendingMax = 256

// Config contains radwatchd configuration.
type Config struct {
	// The entire tree as a map as parsed from the TOML representation.
	// Apps may access this tree to handle their own config tables.
	Map map[string]interface{}
	// Secret is the default shared secret.  Empty disables decryption
	// of obscured attribute values.
	Secret string
	// Listen holds the UDP addresses the daemon binds to.
	Listen []string
	// MetricsAddress, if non-empty, enables the metrics HTTP endpoint.
	MetricsAddress string
	// PendingMax bounds per-client outstanding request tracking.
	PendingMax uint16
	// Clients holds the per-client configuration, keyed by source IP
	// address as specified in the config file.
	Clients []NamedClient
}

// NamedClient contains configuration for one client instance.
type NamedClient struct {
	// The client's source IP address as specified in the config file.
	Address string
	// Secret is the client's shared secret, overriding the default.
	Secret string
}

// go-toml's ToMap function represents numbers as either uint64 or int64.
// So when we are converting numbers, we need to figure out which one it
// has picked and range check to ensure that the number from the config
// fits within the range of the destination type.
func toUint16(v interface{}) (uint16, error) {
	if b, ok := v.(int64); ok {
		if b < 0x0 || b > 0xffff {
			return 0, fmt.Errorf("value %x out of range", b)
		}
		return uint16(b), nil
	} else if b, ok := v.(uint64); ok {
		if b > 0xffff {
			return 0, fmt.Errorf("value %x out of range", b)
		}
		return uint16(b), nil
	}
	return 0, fmt.Errorf("unexpected %T value %v", v, v)
}

func toString(v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("supplied value could not be parsed as a string")
}

func toStrings(v interface{}) ([]string, error) {
	var out []string

	// First ensure that the supplied value is actually an array
	values, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array value")
	}

	// TOML arrays can be mixed type, so we have to check on a value-by-value
	// basis that the value in the array can be represented as a string.
	for _, value := range values {
		s, err := toString(value)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func newClientConfig(address string, ccfg map[string]interface{}) (*NamedClient, error) {
	nc := &NamedClient{Address: address}
	for k, v := range ccfg {
		var err error
		switch k {
		case "secret":
			nc.Secret, err = toString(v)
		default:
			return nil, fmt.Errorf("unrecognised parameter '%v'", k)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to process %v: %v", k, err)
		}
	}
	return nc, nil
}

func (cfg *Config) loadClients() error {
	got, ok := cfg.Map["client"]
	if !ok {
		// Clients are optional: every client falls back to the
		// default secret.
		return nil
	}
	clients, ok := got.(map[string]interface{})
	if !ok {
		return fmt.Errorf("client instances must be named, e.g. '[client.\"192.0.2.1\"]'")
	}
	for address, got := range clients {
		cmap, ok := got.(map[string]interface{})
		if !ok {
			return fmt.Errorf("client instances must be named, e.g. '[client.\"192.0.2.1\"]'")
		}
		ccfg, err := newClientConfig(address, cmap)
		if err != nil {
			return fmt.Errorf("client %v: %v", address, err)
		}
		cfg.Clients = append(cfg.Clients, *ccfg)
	}
	return nil
}

func (cfg *Config) loadTopLevel() error {
	for k, v := range cfg.Map {
		var err error
		switch k {
		case "secret":
			cfg.Secret, err = toString(v)
		case "listen":
			cfg.Listen, err = toStrings(v)
		case "metrics_address":
			cfg.MetricsAddress, err = toString(v)
		case "pending_max":
			cfg.PendingMax, err = toUint16(v)
		case "client":
			// handled by loadClients
		default:
			return fmt.Errorf("unrecognised parameter '%v'", k)
		}
		if err != nil {
			return fmt.Errorf("failed to process %v: %v", k, err)
		}
	}
	return nil
}

// SecretFor returns the shared secret for packets from the given
// client IP address: the client's own secret if one is configured,
// the default secret otherwise.
func (cfg *Config) SecretFor(address string) string {
	for _, c := range cfg.Clients {
		if c.Address == address {
			return c.Secret
		}
	}
	return cfg.Secret
}

func newConfig(tree *toml.Tree) (*Config, error) {
	cfg := &Config{
		Map:        tree.ToMap(),
		PendingMax: DefaultPendingMax,
	}
	if err := cfg.loadTopLevel(); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if err := cfg.loadClients(); err != nil {
		return nil, fmt.Errorf("failed to parse clients: %v", err)
	}
	if len(cfg.Listen) == 0 {
		return nil, fmt.Errorf("no listen addresses configured")
	}
	return cfg, nil
}

// LoadFile loads configuration from the specified file.
func LoadFile(path string) (*Config, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %v", err)
	}
	return newConfig(tree)
}

// LoadString loads configuration from the specified string.
func LoadString(content string) (*Config, error) {
	tree, err := toml.Load(content)
	if err != nil {
		return nil, fmt.Errorf("failed to load config string: %v", err)
	}
	return newConfig(tree)
}
