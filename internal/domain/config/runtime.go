package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	WorkDir string

	// Context settings
	Tenant *Tenant // resolved once per process, never read from globals

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Listing settings
	PageSize int
	CacheTTL time.Duration // 0 disables the proposal cache

	// Server settings
	ListenAddr string

	// Config source tracking
	ConfigSource string // "agora.toml" or "builtin"
}

// Tenant is the per-DAO configuration every data call is scoped to
type Tenant struct {
	Namespace     string `toml:"-" json:"namespace" yaml:"namespace"`
	Name          string `toml:"name" json:"name" yaml:"name"`
	ChainID       uint64 `toml:"chain_id" json:"chainId" yaml:"chain_id"`
	RPCURL        string `toml:"rpc_url" json:"rpcUrl,omitempty" yaml:"rpc_url,omitempty"`
	Governor      string `toml:"governor" json:"governor" yaml:"governor"`
	Token         string `toml:"token" json:"token" yaml:"token"`
	TokenSymbol   string `toml:"token_symbol" json:"tokenSymbol" yaml:"token_symbol"`
	TokenDecimals uint8  `toml:"token_decimals" json:"tokenDecimals" yaml:"token_decimals"`

	// DaoNodeURLTemplate overrides DAONODE_URL_TEMPLATE for this tenant
	DaoNodeURLTemplate string `toml:"dao_node_url_template" json:"-" yaml:"-"`
	// DaoNodeURL is the resolved indexer base URL, always ending in a slash
	DaoNodeURL string `toml:"-" json:"daoNodeUrl" yaml:"dao_node_url"`
}

// TenantFile is the on-disk shape of agora.toml
type TenantFile struct {
	Tenant map[string]Tenant `toml:"tenant"`
}
