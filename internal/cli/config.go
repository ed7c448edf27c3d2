package cli

import (
	"github.com/spf13/cobra"
	"github.com/voteagora/agora-cli/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved tenant configuration",
		Long: `Show the tenant configuration every command runs with.

Tenants are read from [tenant.<namespace>] sections of agora.toml in the
working directory; ${VAR} references are expanded from the environment and
.env files. Without a matching section the built-in tenant is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout(), useColor())
			return renderer.Render(result)
		},
	}
}
