package params

import (
	"encoding/json"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/anyswap/xrpl-txmodel/common"
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/log"
)

const (
	defaultNetwork        = "mainnet"
	defaultEndpoint       = "https://s1.ripple.com:51234"
	defaultRPCTimeout     = 30
	defaultCacheDir       = "ledgercache"
	defaultDeviceIDFile   = "device-id"
	defaultLogVerbosity   = 4
	defaultRotationHours  = 24
	defaultMaxAgeHours    = 24 * 7
	defaultCacheMB        = 16
	defaultCacheHandles   = 16
	defaultCacheTTLSecond = 600
)

var (
	locDataDir        string
	toolsConfig       *Config
	loadConfigStarter sync.Once
)

// Config config items (decode from toml file)
type Config struct {
	Network *NetworkConfig
	Digest  *DigestConfig `toml:",omitempty" json:",omitempty"`
	RPC     *RPCConfig    `toml:",omitempty" json:",omitempty"`
	Cache   *CacheConfig  `toml:",omitempty" json:",omitempty"`
	Log     *LogConfig    `toml:",omitempty" json:",omitempty"`
}

// NetworkConfig describes the ledger network
type NetworkConfig struct {
	Name           string
	NativeAsset    string
	NativeDecimals int32
	NetworkID      uint32 `toml:",omitempty" json:",omitempty"`
}

// DigestConfig canonical digest config
type DigestConfig struct {
	DeviceIDFile string
}

// RPCConfig rippled json-rpc endpoint
type RPCConfig struct {
	Endpoint       string
	TimeoutSeconds int64
}

// CacheConfig local ledger entry cache
type CacheConfig struct {
	Disable    bool
	DataDir    string
	CacheMB    int
	Handles    int
	TTLSeconds int64
}

// LogConfig log config
type LogConfig struct {
	Verbosity     uint32
	JSONFormat    bool
	ColorFormat   bool
	File          string `toml:",omitempty" json:",omitempty"`
	RotationHours uint64 `toml:",omitempty" json:",omitempty"`
	MaxAgeHours   uint64 `toml:",omitempty" json:",omitempty"`
}

// DefaultConfig is used when no config file is given
func DefaultConfig() *Config {
	return &Config{
		Network: &NetworkConfig{
			Name:           defaultNetwork,
			NativeAsset:    "XRP",
			NativeDecimals: 6,
		},
		Digest: &DigestConfig{DeviceIDFile: defaultDeviceIDFile},
		RPC: &RPCConfig{
			Endpoint:       defaultEndpoint,
			TimeoutSeconds: defaultRPCTimeout,
		},
		Cache: &CacheConfig{
			DataDir:    defaultCacheDir,
			CacheMB:    defaultCacheMB,
			Handles:    defaultCacheHandles,
			TTLSeconds: defaultCacheTTLSecond,
		},
		Log: &LogConfig{
			Verbosity:     defaultLogVerbosity,
			RotationHours: defaultRotationHours,
			MaxAgeHours:   defaultMaxAgeHours,
		},
	}
}

// fillDefaults completes sections omitted from the file
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Network == nil {
		c.Network = def.Network
	}
	if c.Network.NativeAsset == "" {
		c.Network.NativeAsset = def.Network.NativeAsset
	}
	if c.Network.NativeDecimals == 0 {
		c.Network.NativeDecimals = def.Network.NativeDecimals
	}
	if c.Digest == nil {
		c.Digest = def.Digest
	}
	if c.RPC == nil {
		c.RPC = def.RPC
	}
	if c.RPC.TimeoutSeconds == 0 {
		c.RPC.TimeoutSeconds = def.RPC.TimeoutSeconds
	}
	if c.Cache == nil {
		c.Cache = def.Cache
	}
	if c.Log == nil {
		c.Log = def.Log
	}
}

// GetConfig get config
func GetConfig() *Config {
	if toolsConfig == nil {
		return DefaultConfig()
	}
	return toolsConfig
}

// SetConfig set config
func SetConfig(config *Config) {
	toolsConfig = config
}

// GetNetworkConfig get network config
func GetNetworkConfig() *NetworkConfig {
	return GetConfig().Network
}

// GetRPCConfig get rpc config
func GetRPCConfig() *RPCConfig {
	return GetConfig().RPC
}

// GetCacheConfig get cache config
func GetCacheConfig() *CacheConfig {
	return GetConfig().Cache
}

// GetDigestConfig get digest config
func GetDigestConfig() *DigestConfig {
	return GetConfig().Digest
}

// GetLogConfig get log config
func GetLogConfig() *LogConfig {
	return GetConfig().Log
}

// Timeout of rpc requests
func (c *RPCConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TTL of cached ledger entries, zero keeps them until pruned
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Path of the cache database, relative paths resolve against the data dir
func (c *CacheConfig) Path() string {
	return resolvePath(c.DataDir)
}

// Path of the device id file, relative paths resolve against the data dir
func (c *DigestConfig) Path() string {
	return resolvePath(c.DeviceIDFile)
}

func resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || locDataDir == "" {
		return path
	}
	return common.AbsolutePath(locDataDir, path)
}

// ParseConfig decodes and checks a config file
func ParseConfig(configFile string) (*Config, error) {
	config := &Config{}
	if _, err := toml.DecodeFile(configFile, config); err != nil {
		return nil, err
	}
	config.fillDefaults()
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig load config, the defaults when configFile is empty
func LoadConfig(configFile string) *Config {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			log.Info("no config file specified, use default config")
			SetConfig(DefaultConfig())
			return
		}
		log.Println("Config file is", configFile)
		if !common.FileExist(configFile) {
			log.Fatalf("LoadConfig error: config file %v not exist", configFile)
		}
		config, err := ParseConfig(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}

		SetConfig(config)
		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))
		log.Info("Check config success", "configFile", configFile)
	})
	return toolsConfig
}

// Apply pushes the network settings into the codec layer.
// Call it once at start up, before decoding any entity.
func Apply(config *Config) {
	network := config.Network
	codec.SetNativeCurrency(network.NativeAsset, network.NativeDecimals)
	log.Debug("apply network config", "network", network.Name, "native", network.NativeAsset, "decimals", network.NativeDecimals)
}

// SetDataDir set data dir
func SetDataDir(dir string) {
	if dir == "" {
		return
	}
	currDir, err := common.CurrentDir()
	if err != nil {
		log.Fatal("get current dir failed", "err", err)
	}
	locDataDir = common.AbsolutePath(currDir, dir)
	log.Info("set data dir success", "datadir", locDataDir)
}

// GetDataDir get data dir
func GetDataDir() string {
	return locDataDir
}
