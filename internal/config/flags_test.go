package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
	}{
		{"localhost", "localhost:8080", "localhost", 8080},
		{"ip address", "127.0.0.1:9090", "127.0.0.1", 9090},
		{"all interfaces", "0.0.0.0:80", "0.0.0.0", 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var addr NetAddress
			require.NoError(t, addr.Set(tc.input))

			assert.Equal(t, tc.wantHost, addr.Host)
			assert.Equal(t, tc.wantPort, addr.Port)
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing port", "localhost"},
		{"non-numeric port", "localhost:http"},
		{"zero port", "localhost:0"},
		{"negative port", "localhost:-1"},
		{"bad host", "not-an-ip:8080"},
		{"too many parts", "a:b:c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var addr NetAddress
			assert.Error(t, addr.Set(tc.input))
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}

func TestNetAddress_String_RoundTrip(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", addr.String())
}
