package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const daoNodeProposals = `{
  "proposals": [
    {
      "id": "7",
      "proposer": "0x1111111111111111111111111111111111111111",
      "description": "# Season 7 grants\nbody",
      "start_block": 700,
      "end_block": 800,
      "voting_module_name": "standard",
      "totals": {"no-param": {"0": "1", "1": "2000000000000000000000", "2": "0"}}
    },
    {
      "id": "6",
      "proposer": "0x1111111111111111111111111111111111111111",
      "description": "# Cancelled upgrade",
      "start_block": 600,
      "end_block": 650,
      "cancel_event": {"block_number": 610},
      "voting_module_name": "standard",
      "totals": {}
    }
  ]
}`

// newDaoNode serves a fixed optimism tenant and points the CLI at it
func newDaoNode(t *testing.T) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/optimism/v1/proposals", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(daoNodeProposals))
	})
	mux.HandleFunc("/optimism/v1/proposal_types", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"proposal_types": {}}`))
	})
	mux.HandleFunc("/optimism/v1/voting_power", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"voting_power": "5000000000000000000000"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Chdir(t.TempDir())
	t.Setenv("DAONODE_URL_TEMPLATE", srv.URL+"/{TENANT_NAMESPACE}")
	t.Setenv("AGORA_TENANT", "")
	t.Setenv("AGORA_CACHE_TTL", "0s")

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"proposals", "proposal", "voting-power", "serve", "config", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"tenant", "debug", "json", "non-interactive", "rpc-url"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
	assert.Equal(t, "t", root.PersistentFlags().Lookup("tenant").Shorthand)
}

func TestSkipInit(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		expected bool
	}{
		{"version", &cobra.Command{Use: "version"}, true},
		{"help", &cobra.Command{Use: "help"}, true},
		{"completion", &cobra.Command{Use: "completion"}, true},
		{"proposals", &cobra.Command{Use: "proposals"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, skipInit(tt.cmd))
		})
	}

	completion := &cobra.Command{Use: "completion"}
	bash := &cobra.Command{Use: "bash"}
	completion.AddCommand(bash)
	assert.True(t, skipInit(bash))
}

func TestVersionRunsWithoutTenant(t *testing.T) {
	t.Setenv("AGORA_TENANT", "does-not-exist")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "agora version")
}

func TestUnknownTenant(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "proposals", "--tenant", "does-not-exist")
	assert.ErrorContains(t, err, "tenant not found")
}

func TestProposalsJSON(t *testing.T) {
	newDaoNode(t)

	out, err := execute(t, "proposals", "--json")
	require.NoError(t, err)

	var page struct {
		Meta struct {
			CurrentPage int  `json:"current_page"`
			HasNextPage bool `json:"has_next_page"`
		} `json:"meta"`
		Data []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 1, page.Meta.CurrentPage)
	assert.False(t, page.Meta.HasNextPage)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "7", page.Data[0].ID)
	assert.Equal(t, "PENDING", page.Data[0].Status)
}

func TestProposalsEverythingTable(t *testing.T) {
	newDaoNode(t)

	out, err := execute(t, "proposals", "--filter", "everything")
	require.NoError(t, err)

	assert.Contains(t, out, "Season 7 grants")
	assert.Contains(t, out, "Cancelled upgrade")
	assert.Contains(t, out, "Cancelled")
	assert.Contains(t, out, "2,000")
	assert.Contains(t, out, "Page 1")
}

func TestProposalsInvalidFilter(t *testing.T) {
	newDaoNode(t)

	_, err := execute(t, "proposals", "--filter", "all")
	assert.ErrorContains(t, err, "unknown proposal filter")
}

func TestProposalRequiresIDWhenNonInteractive(t *testing.T) {
	newDaoNode(t)

	_, err := execute(t, "proposal", "--non-interactive")
	assert.ErrorContains(t, err, "non-interactive")
}

func TestVotingPowerJSON(t *testing.T) {
	newDaoNode(t)

	out, err := execute(t, "voting-power", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"voting_power":"5000000000000000000000"}`, out)
}

func TestVotingPowerTable(t *testing.T) {
	newDaoNode(t)

	out, err := execute(t, "voting-power")
	require.NoError(t, err)
	assert.Contains(t, out, "Optimism votable supply: 5,000 OP")
}

func TestConfigYAML(t *testing.T) {
	newDaoNode(t)

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "# source: builtin")
	assert.Contains(t, out, "namespace: optimism")
	assert.Contains(t, out, "chain_id: 10")
	assert.Contains(t, out, "page_size: 10")
}
