package cli

import (
	"github.com/spf13/cobra"
	"github.com/voteagora/agora-cli/internal/cli/render"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// NewProposalCmd creates the proposal command
func NewProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal [id]",
		Short: "Show a single proposal",
		Long: `Show a single proposal with its tally, quorum and actions.

When no id is given an interactive picker lists the relevant proposals.
Pass an id when running with --non-interactive.`,
		Example: `  agora proposal 10389337455286813462862779386417426640731236512153893512849581744693826553404
  agora proposal --json 1234`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var params usecase.ShowProposalParams
			if len(args) == 1 {
				params.ID = args[0]
			}

			result, err := app.ShowProposal.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result.Proposal)
			}

			renderer := render.NewProposalRenderer(cmd.OutOrStdout(), app.Config.Tenant, useColor())
			return renderer.Render(result)
		},
	}

	return cmd
}
