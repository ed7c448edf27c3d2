package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/voteagora/agora-cli/internal/app"
	"github.com/voteagora/agora-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agora",
		Short: "Browse DAO governance proposals from the command line",
		Long: `agora reads governance proposals for a DAO tenant from its DAO Node
indexer, derives their status and serves them as tables, JSON or a
read-only HTTP API.

The tenant is picked with --tenant (or AGORA_TENANT) and resolved from
agora.toml in the working directory, falling back to the built-in tenants.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipInit(cmd) {
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			// Set up viper, flags win over env and config file
			v := config.SetupViper(workDir, cmd)
			if cmd.Name() == "serve" {
				// a server never prompts or spins
				v.Set("non_interactive", true)
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			if appInstance.Config.JSON {
				color.NoColor = true
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured, serve runs until interrupted
			if appInstance.Config.Timeout > 0 && cmd.Name() != "serve" {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("tenant", "t", "", "DAO tenant namespace (defaults to 'optimism')")
	rootCmd.PersistentFlags().String("rpc-url", "", "JSON-RPC endpoint used to derive proposal statuses (env AGORA_RPC_URL)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	proposalsCmd := NewProposalsCmd()
	proposalsCmd.GroupID = "main"
	rootCmd.AddCommand(proposalsCmd)

	proposalCmd := NewProposalCmd()
	proposalCmd.GroupID = "main"
	rootCmd.AddCommand(proposalCmd)

	votingPowerCmd := NewVotingPowerCmd()
	votingPowerCmd.GroupID = "main"
	rootCmd.AddCommand(votingPowerCmd)

	// Management commands
	serveCmd := NewServeCmd()
	serveCmd.GroupID = "management"
	rootCmd.AddCommand(serveCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipInit reports whether cmd runs without a resolved tenant
func skipInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.HasParent() && cmd.Parent().Name() == "completion"
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// useColor reports whether human output should be colored
func useColor() bool {
	return !color.NoColor
}
