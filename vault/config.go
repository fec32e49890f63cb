package vault

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"strings"
	"time"
)

const (
	DefaultPrefixURL  = "https://vault.immudb.io/ics/api/v1/ledger/"
	DefaultLedger     = "default"
	DefaultCollection = "default"
	DefaultTimeout    = 30 * time.Second

	envPrefix = "VAULT"
)

// Config is resolved once when the client is created and never changes afterwards.
type Config struct {
	APIKey     string        `mapstructure:"api_key"`
	PrefixURL  string        `mapstructure:"prefix_url"`
	Ledger     string        `mapstructure:"ledger"`
	Collection string        `mapstructure:"collection"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// LoadConfig reads the configuration from VAULT_* environment variables (e.g. VAULT_API_KEY, VAULT_PREFIX_URL). When a
// config file is given, its keys (api_key, prefix_url, ledger, collection, timeout) are used for everything not set in
// the environment. The format of the file is determined by its extension, so ".env", ".yaml", ".json" etc. work.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Unmarshal only considers known keys, so every key needs a default for the environment variables to be used.
	v.SetDefault("api_key", "")
	v.SetDefault("prefix_url", DefaultPrefixURL)
	v.SetDefault("ledger", DefaultLedger)
	v.SetDefault("collection", DefaultCollection)
	v.SetDefault("timeout", DefaultTimeout)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if strings.HasSuffix(configFile, ".env") {
			v.SetConfigType("env")
		}

		err := v.ReadInConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to read config file %s", configFile)
		}
		sigolo.Debugf("Read config file %s", configFile)
	}

	config := &Config{}
	err := v.Unmarshal(config)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to unmarshal config")
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return errors.Errorf("No API key configured. Set %s_API_KEY or api_key in the config file.", envPrefix)
	}
	if c.PrefixURL == "" {
		return errors.New("The prefix URL must not be empty")
	}
	if c.Ledger == "" {
		return errors.New("The ledger name must not be empty")
	}
	if c.Collection == "" {
		return errors.New("The collection name must not be empty")
	}
	if c.Timeout <= 0 {
		return errors.Errorf("The timeout must be positive but was %s", c.Timeout)
	}

	if !strings.HasSuffix(c.PrefixURL, "/") {
		c.PrefixURL += "/"
	}

	return nil
}
