package config

import (
	"reflect"
	"testing"
)

func TestLoadStringGood(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *Config
	}{
		{
			name: "minimal",
			in: `listen = ["0.0.0.0:1812"]
				 `,
			want: &Config{
				Listen:     []string{"0.0.0.0:1812"},
				PendingMax: DefaultPendingMax,
			},
		},
		{
			name: "full daemon config",
			in: `secret = "s3cret"
				 listen = ["0.0.0.0:1812", "0.0.0.0:1813"]
				 metrics_address = "127.0.0.1:9812"
				 pending_max = 64
				 `,
			want: &Config{
				Secret:         "s3cret",
				Listen:         []string{"0.0.0.0:1812", "0.0.0.0:1813"},
				MetricsAddress: "127.0.0.1:9812",
				PendingMax:     64,
			},
		},
		{
			name: "per-client secret",
			in: `secret = "default"
				 listen = ["0.0.0.0:1812"]

				 [client."192.0.2.1"]
				 secret = "nas1"
				 `,
			want: &Config{
				Secret:     "default",
				Listen:     []string{"0.0.0.0:1812"},
				PendingMax: DefaultPendingMax,
				Clients: []NamedClient{
					{Address: "192.0.2.1", Secret: "nas1"},
				},
			},
		},
	}
	for _, c := range cases {
		cfg, err := LoadString(c.in)
		if err != nil {
			t.Fatalf("%s: LoadString(): %v", c.name, err)
		}
		cfg.Map = nil // compare the parsed fields only
		if !reflect.DeepEqual(cfg, c.want) {
			t.Fatalf("%s: LoadString(): got %v, want %v", c.name, cfg, c.want)
		}
	}
}

func TestLoadStringBad(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{
			name: "no listen addresses",
			in:   `secret = "s3cret"`,
		},
		{
			name: "unrecognised top-level parameter",
			in: `listen = ["0.0.0.0:1812"]
				 shared_secret = "s3cret"
				 `,
		},
		{
			name: "listen is not an array",
			in:   `listen = "0.0.0.0:1812"`,
		},
		{
			name: "listen holds a non-string",
			in:   `listen = [1812]`,
		},
		{
			name: "pending_max out of range",
			in: `listen = ["0.0.0.0:1812"]
				 pending_max = 90000
				 `,
		},
		{
			name: "unnamed client instance",
			in: `listen = ["0.0.0.0:1812"]
				 client = "192.0.2.1"
				 `,
		},
		{
			name: "unrecognised client parameter",
			in: `listen = ["0.0.0.0:1812"]

				 [client."192.0.2.1"]
				 password = "nas1"
				 `,
		},
		{
			name: "client secret is not a string",
			in: `listen = ["0.0.0.0:1812"]

				 [client."192.0.2.1"]
				 secret = 42
				 `,
		},
	}
	for _, c := range cases {
		if _, err := LoadString(c.in); err == nil {
			t.Fatalf("%s: expected error from LoadString()", c.name)
		}
	}
}

func TestSecretFor(t *testing.T) {
	cfg, err := LoadString(`secret = "default"
		listen = ["0.0.0.0:1812"]

		[client."192.0.2.1"]
		secret = "nas1"

		[client."192.0.2.2"]
		secret = "nas2"
		`)
	if err != nil {
		t.Fatalf("LoadString(): %v", err)
	}

	cases := []struct {
		address string
		want    string
	}{
		{address: "192.0.2.1", want: "nas1"},
		{address: "192.0.2.2", want: "nas2"},
		{address: "192.0.2.99", want: "default"},
	}
	for _, c := range cases {
		if got := cfg.SecretFor(c.address); got != c.want {
			t.Errorf("SecretFor(%q) == %q; want %q", c.address, got, c.want)
		}
	}
}
