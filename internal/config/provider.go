package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/voteagora/agora-cli/internal/domain/config"
)

// Viper defaults
const (
	DefaultTenant     = "optimism"
	DefaultTimeout    = "30s"
	DefaultPageSize   = 10
	DefaultCacheTTL   = "60s"
	DefaultListenAddr = ":8080"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	workDir := v.GetString("work_dir")
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		WorkDir:        workDir,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		PageSize:       v.GetInt("page_size"),
		CacheTTL:       v.GetDuration("cache_ttl"),
		ListenAddr:     v.GetString("addr"),
	}

	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("page_size must be at least 1, got %d", cfg.PageSize)
	}

	// .env files feed ${VAR} expansion in agora.toml and DAONODE_URL_TEMPLATE
	LoadDotEnv(workDir)

	namespace := v.GetString("tenant")
	tenant, source, err := LoadTenant(workDir, namespace)
	if err != nil {
		return nil, err
	}

	// AGORA_RPC_URL or --rpc-url replaces the tenant's RPC endpoint
	if rpcURL := v.GetString("rpc_url"); rpcURL != "" {
		tenant.RPCURL = rpcURL
	}

	template := tenant.DaoNodeURLTemplate
	if template == "" {
		template = os.Getenv(DaoNodeURLEnv)
	}
	tenant.DaoNodeURL = DaoNodeURL(template, tenant.Namespace)

	cfg.Tenant = tenant
	cfg.ConfigSource = source
	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(workDir string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workDir, ".agora"))

	// Set up environment variables
	v.SetEnvPrefix("AGORA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("tenant", DefaultTenant)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("cache_ttl", DefaultCacheTTL)
	v.SetDefault("addr", DefaultListenAddr)
	v.SetDefault("rpc_url", "")
	v.SetDefault("debug", false)
	v.SetDefault("json", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("work_dir", workDir)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bindFlags(v, cmd.Flags())
	}

	return v
}

// bindFlags binds every flag under its snake_case key so flags win over
// env and config file values only when set
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}
