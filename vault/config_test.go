package vault

import (
	"imvault/util"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearVaultEnv(t *testing.T) {
	for _, key := range []string{"VAULT_API_KEY", "VAULT_PREFIX_URL", "VAULT_LEDGER", "VAULT_COLLECTION", "VAULT_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestConfig_loadFromEnvironmentWithDefaults(t *testing.T) {
	// Arrange
	clearVaultEnv(t)
	t.Setenv("VAULT_API_KEY", "abc")

	// Act
	config, err := LoadConfig("")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, &Config{
		APIKey:     "abc",
		PrefixURL:  DefaultPrefixURL,
		Ledger:     DefaultLedger,
		Collection: DefaultCollection,
		Timeout:    DefaultTimeout,
	}, config)
}

func TestConfig_loadFromEnvironment(t *testing.T) {
	// Arrange
	clearVaultEnv(t)
	t.Setenv("VAULT_API_KEY", "abc")
	t.Setenv("VAULT_PREFIX_URL", "http://localhost:8080/api/ledger")
	t.Setenv("VAULT_LEDGER", "books")
	t.Setenv("VAULT_COLLECTION", "authors")
	t.Setenv("VAULT_TIMEOUT", "5s")

	// Act
	config, err := LoadConfig("")

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, "http://localhost:8080/api/ledger/", config.PrefixURL)
	util.AssertEqual(t, "books", config.Ledger)
	util.AssertEqual(t, "authors", config.Collection)
	util.AssertEqual(t, 5*time.Second, config.Timeout)
}

func TestConfig_environmentOverridesFile(t *testing.T) {
	// Arrange
	clearVaultEnv(t)
	t.Setenv("VAULT_LEDGER", "from-env")
	configFile := filepath.Join(t.TempDir(), "vault.env")
	err := os.WriteFile(configFile, []byte("API_KEY=from-file\nLEDGER=from-file\nCOLLECTION=people\n"), 0644)
	util.AssertNil(t, err)

	// Act
	config, err := LoadConfig(configFile)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, "from-file", config.APIKey)
	util.AssertEqual(t, "from-env", config.Ledger)
	util.AssertEqual(t, "people", config.Collection)
}

func TestConfig_missingConfigFile(t *testing.T) {
	// Arrange
	clearVaultEnv(t)
	t.Setenv("VAULT_API_KEY", "abc")

	// Act
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	// Assert
	util.AssertNil(t, config)
	util.AssertErrorContains(t, "Unable to read config file", err)
}

func TestConfig_missingApiKey(t *testing.T) {
	// Arrange
	clearVaultEnv(t)

	// Act
	config, err := LoadConfig("")

	// Assert
	util.AssertNil(t, config)
	util.AssertError(t, "No API key configured. Set VAULT_API_KEY or api_key in the config file.", err)
}

func TestConfig_invalidTimeout(t *testing.T) {
	// Arrange
	clearVaultEnv(t)
	t.Setenv("VAULT_API_KEY", "abc")
	t.Setenv("VAULT_TIMEOUT", "-1s")

	// Act
	config, err := LoadConfig("")

	// Assert
	util.AssertNil(t, config)
	util.AssertError(t, "The timeout must be positive but was -1s", err)
}
