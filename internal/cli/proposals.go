package cli

import (
	"github.com/spf13/cobra"
	"github.com/voteagora/agora-cli/internal/cli/render"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// NewProposalsCmd creates the proposals command
func NewProposalsCmd() *cobra.Command {
	var (
		filter   string
		search   string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:     "proposals",
		Aliases: []string{"ls", "list"},
		Short:   "List governance proposals",
		Long: `List the tenant's governance proposals, newest first.

Cancelled proposals are hidden unless --filter everything is passed.
Statuses are derived from the chain head when an RPC URL is configured
(agora.toml rpc_url, AGORA_RPC_URL or --rpc-url), otherwise proposals that have not been queued, executed or cancelled
show as pending.`,
		Example: `  # List the first page of relevant proposals
  agora proposals

  # Include cancelled proposals, third page of 20
  agora proposals --filter everything --page 3 --page-size 20

  # Fuzzy search titles and ids
  agora proposals --search "grants"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			params := usecase.ListProposalsParams{
				Filter:   domain.ProposalSet(filter),
				Search:   search,
				Page:     page,
				PageSize: pageSize,
			}

			result, err := app.ListProposals.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result.Page)
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout(), app.Config.Tenant, useColor())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(domain.ProposalSetRelevant), "Proposal set (relevant, everything)")
	cmd.Flags().StringVar(&search, "search", "", "Fuzzy search proposal titles and ids")
	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Proposals per page (defaults to page_size config)")

	return cmd
}
