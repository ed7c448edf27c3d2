package cli

import (
	"github.com/spf13/cobra"
	"github.com/voteagora/agora-cli/internal/cli/render"
)

// NewVotingPowerCmd creates the voting-power command
func NewVotingPowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voting-power",
		Short: "Show the tenant's total votable supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			supply, err := app.GetVotableSupply.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), map[string]string{
					"voting_power": supply.String(),
				})
			}

			renderer := render.NewVotingPowerRenderer(cmd.OutOrStdout(), app.Config.Tenant, useColor())
			return renderer.Render(supply)
		},
	}
}
