package params

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/anyswap/xrpl-txmodel/log"
)

const maxNativeDecimals = 18

var (
	standardCurrency = regexp.MustCompile(`^[A-Za-z0-9?!@#$%^&*<>(){}\[\]|]{3}$`)
	hexCurrency      = regexp.MustCompile(`^[0-9A-Fa-f]{40}$`)
)

// CheckConfig check config
func (c *Config) CheckConfig() (err error) {
	if c.Network == nil {
		return errors.New("must config 'Network'")
	}
	if err = c.Network.CheckConfig(); err != nil {
		return err
	}
	if c.RPC != nil {
		if err = c.RPC.CheckConfig(); err != nil {
			return err
		}
	}
	if c.Cache != nil {
		if err = c.Cache.CheckConfig(); err != nil {
			return err
		}
	}
	if c.Log != nil {
		if err = c.Log.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check network config
func (c *NetworkConfig) CheckConfig() error {
	if c.Name == "" {
		return errors.New("network must config non empty 'Name'")
	}
	if !standardCurrency.MatchString(c.NativeAsset) && !hexCurrency.MatchString(c.NativeAsset) {
		return fmt.Errorf("network has wrong 'NativeAsset' %q", c.NativeAsset)
	}
	if c.NativeDecimals <= 0 || c.NativeDecimals > maxNativeDecimals {
		return fmt.Errorf("network has wrong 'NativeDecimals' %v, must be in range [1, %v]", c.NativeDecimals, maxNativeDecimals)
	}
	return nil
}

// CheckConfig check rpc config
func (c *RPCConfig) CheckConfig() error {
	if c.Endpoint == "" {
		return errors.New("rpc must config non empty 'Endpoint'")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("rpc has wrong 'Endpoint' %q: %w", c.Endpoint, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("rpc 'Endpoint' %q must be http(s) or ws(s)", c.Endpoint)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("rpc has negative 'TimeoutSeconds' %v", c.TimeoutSeconds)
	}
	return nil
}

// CheckConfig check cache config
func (c *CacheConfig) CheckConfig() error {
	if c.Disable {
		return nil
	}
	if c.DataDir == "" {
		return errors.New("cache must config non empty 'DataDir' or set 'Disable'")
	}
	if c.CacheMB < 0 || c.Handles < 0 || c.TTLSeconds < 0 {
		return errors.New("cache 'CacheMB', 'Handles' and 'TTLSeconds' must not be negative")
	}
	if c.TTLSeconds == 0 {
		log.Warn("cache entries never expire, prune the cache manually")
	}
	return nil
}

// CheckConfig check log config
func (c *LogConfig) CheckConfig() error {
	if c.Verbosity > 6 {
		return fmt.Errorf("log has wrong 'Verbosity' %v, must be in range [0, 6]", c.Verbosity)
	}
	if c.File != "" && c.RotationHours == 0 {
		return errors.New("log must config 'RotationHours' when 'File' is set")
	}
	return nil
}
