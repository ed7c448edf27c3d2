package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderDefaults(t *testing.T) {
	t.Setenv(DaoNodeURLEnv, "https://dao-node.example/{TENANT_NAMESPACE}")
	dir := t.TempDir()

	cfg, err := Provider(SetupViper(dir, nil))

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.WorkDir)
	assert.Equal(t, "optimism", cfg.Tenant.Namespace)
	assert.Equal(t, "https://dao-node.example/optimism/", cfg.Tenant.DaoNodeURL)
	assert.Equal(t, SourceBuiltin, cfg.ConfigSource)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.False(t, cfg.Debug)
}

func TestProviderEnvOverrides(t *testing.T) {
	t.Setenv("AGORA_TENANT", "ens")
	t.Setenv("AGORA_PAGE_SIZE", "25")
	t.Setenv("AGORA_CACHE_TTL", "0s")

	cfg, err := Provider(SetupViper(t.TempDir(), nil))

	require.NoError(t, err)
	assert.Equal(t, "ens", cfg.Tenant.Namespace)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
}

func TestProviderFlagsWin(t *testing.T) {
	t.Setenv("AGORA_TENANT", "ens")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("tenant", "t", "", "")
	cmd.Flags().Bool("debug", false, "")
	require.NoError(t, cmd.ParseFlags([]string{"--tenant", "uniswap", "--debug"}))

	cfg, err := Provider(SetupViper(t.TempDir(), cmd))

	require.NoError(t, err)
	assert.Equal(t, "uniswap", cfg.Tenant.Namespace)
	assert.True(t, cfg.Debug)
}

func TestProviderTenantTemplateWinsOverEnv(t *testing.T) {
	t.Setenv(DaoNodeURLEnv, "https://env.example/{TENANT_NAMESPACE}")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TenantFileName), []byte(`
[tenant.optimism]
dao_node_url_template = "http://localhost:8004"
`), 0644))

	cfg, err := Provider(SetupViper(dir, nil))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8004/", cfg.Tenant.DaoNodeURL)
	assert.Equal(t, SourceFile, cfg.ConfigSource)
}

func TestProviderDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TEST_AGORA_DOTENV_RPC=http://localhost:9545\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TenantFileName), []byte(`
[tenant.optimism]
rpc_url = "${TEST_AGORA_DOTENV_RPC}"
`), 0644))
	t.Cleanup(func() { os.Unsetenv("TEST_AGORA_DOTENV_RPC") })

	cfg, err := Provider(SetupViper(dir, nil))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9545", cfg.Tenant.RPCURL)
}

func TestProviderRPCURLOverride(t *testing.T) {
	t.Setenv("AGORA_RPC_URL", "https://rpc.override.example")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TenantFileName), []byte(`
[tenant.optimism]
rpc_url = "http://localhost:8545"
`), 0644))

	cfg, err := Provider(SetupViper(dir, nil))

	require.NoError(t, err)
	assert.Equal(t, "https://rpc.override.example", cfg.Tenant.RPCURL)
}

func TestProviderRejectsPageSize(t *testing.T) {
	t.Setenv("AGORA_PAGE_SIZE", "0")

	_, err := Provider(SetupViper(t.TempDir(), nil))
	assert.ErrorContains(t, err, "page_size")
}
