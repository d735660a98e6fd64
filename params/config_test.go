package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestParseConfig(t *testing.T) {
	file := writeConfig(t, `
[Network]
Name = "xahau"
NativeAsset = "XAH"
NetworkID = 21337

[RPC]
Endpoint = "https://xahau.network"
TimeoutSeconds = 5

[Cache]
DataDir = "/tmp/xahau-cache"
TTLSeconds = 60

[Log]
Verbosity = 5
File = "logs/tools.log"
RotationHours = 1
`)
	config, err := ParseConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "XAH", config.Network.NativeAsset)
	assert.Equal(t, int32(6), config.Network.NativeDecimals)
	assert.Equal(t, uint32(21337), config.Network.NetworkID)
	assert.Equal(t, 5*time.Second, config.RPC.Timeout())
	assert.Equal(t, time.Minute, config.Cache.TTL())
	assert.Equal(t, "/tmp/xahau-cache", config.Cache.Path())
	assert.Equal(t, defaultDeviceIDFile, config.Digest.DeviceIDFile)
	assert.Equal(t, uint32(5), config.Log.Verbosity)
}

func TestCheckConfig(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     string
	}{
		{"no name", "[Network]\nNativeAsset = \"XRP\"\n", "'Name'"},
		{"bad asset", "[Network]\nName = \"x\"\nNativeAsset = \"TOOLONG\"\n", "'NativeAsset'"},
		{"bad decimals", "[Network]\nName = \"x\"\nNativeDecimals = 30\n", "'NativeDecimals'"},
		{"bad endpoint", "[Network]\nName = \"x\"\n[RPC]\nEndpoint = \"tcp://node:6006\"\n", "http(s) or ws(s)"},
		{"no cache dir", "[Network]\nName = \"x\"\n[Cache]\nCacheMB = 8\n", "'DataDir'"},
		{"log file without rotation", "[Network]\nName = \"x\"\n[Log]\nFile = \"a.log\"\n", "'RotationHours'"},
	}
	for _, c := range cases {
		_, err := ParseConfig(writeConfig(t, c.content))
		require.Error(t, err, c.name)
		assert.True(t, strings.Contains(err.Error(), c.err), "%s: %v", c.name, err)
	}

	disabled := "[Network]\nName = \"x\"\n[Cache]\nDisable = true\n"
	_, err := ParseConfig(writeConfig(t, disabled))
	assert.NoError(t, err)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.CheckConfig())
	assert.Equal(t, "XRP", config.Network.NativeAsset)
	assert.Equal(t, 30*time.Second, config.RPC.Timeout())
}

func TestApply(t *testing.T) {
	defer codec.SetNativeCurrency("XRP", 6)

	config := DefaultConfig()
	config.Network.NativeAsset = "XAH"
	Apply(config)
	assert.Equal(t, "XAH", codec.Native().Code)

	amount, err := codec.AmountCodec.Decode("1500000")
	require.NoError(t, err)
	assert.Equal(t, "1.5", amount.Value)
	assert.Equal(t, "XAH", amount.Currency)
}

func TestVersion(t *testing.T) {
	defer func(meta string) { VersionMeta = meta }(VersionMeta)

	tests := []struct {
		meta, commit, date string
		want               string
	}{
		{"unstable", "0123abcdef", "20240601", "0.1.0-unstable-0123abcd-20240601"},
		{"stable", "0123abcdef", "20240601", "0.1.0-stable-0123abcd"},
		{"stable", "", "", "0.1.0-stable"},
		{"", "0123", "20240601", "0.1.0-20240601"},
	}
	for _, tt := range tests {
		VersionMeta = tt.meta
		assert.Equal(t, tt.want, VersionWithCommit(tt.commit, tt.date), tt.meta)
	}

	VersionMeta = "unstable"
	assert.Equal(t, "0.1.0-unstable", VersionWithMeta())
}
