package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/usecase"
)

const maxTitleWidth = 48

// ProposalsRenderer renders a page of proposals as a table
type ProposalsRenderer struct {
	out    io.Writer
	tenant *config.Tenant
	color  bool
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer, tenant *config.Tenant, color bool) *ProposalsRenderer {
	return &ProposalsRenderer{out: out, tenant: tenant, color: color}
}

// Render renders the proposal list
func (r *ProposalsRenderer) Render(result *usecase.ProposalListResult) error {
	if result.Page == nil || result.Page.IsEmpty() {
		if result.Filter.Search != "" {
			fmt.Fprintf(r.out, "No proposals match %q\n", result.Filter.Search)
		} else {
			fmt.Fprintln(r.out, "No proposals found")
		}
		return nil
	}

	decimals := tokenDecimals(r.tenant)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = true
	t.Style().Format.Header = text.FormatUpper

	t.AppendHeader(table.Row{"ID", "Title", "Type", "Status", "For", "Against", "Abstain", "End Block"})
	for _, p := range result.Page.Data {
		tally := p.ProposalResults.Standard
		t.AppendRow(table.Row{
			paint(r.color, faintStyle, ShortID(p.ID)),
			truncate(p.Title(), maxTitleWidth),
			FormatType(p.ProposalType),
			FormatStatus(p.Status, r.color),
			FormatTokenAmount(tally.For, decimals),
			FormatTokenAmount(tally.Against, decimals),
			FormatTokenAmount(tally.Abstain, decimals),
			FormatNumber(p.EndBlock),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignLeft, WidthMax: maxTitleWidth},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.footer(result))
	return nil
}

func (r *ProposalsRenderer) footer(result *usecase.ProposalListResult) string {
	meta := result.Page.Meta
	s := fmt.Sprintf("Page %d · %d of %d proposals", meta.CurrentPage, len(result.Page.Data), result.Total)
	if meta.HasNextPage {
		s += fmt.Sprintf(" · next: --page %d", meta.CurrentPage+1)
	}
	if result.LatestBlock == nil {
		s += " · no RPC configured, open proposals show as pending"
	}
	return paint(r.color, faintStyle, s)
}

func tokenDecimals(tenant *config.Tenant) uint8 {
	if tenant == nil || tenant.TokenDecimals == 0 {
		return config.DefaultTokenDecimals
	}
	return tenant.TokenDecimals
}

var _ Renderer[*usecase.ProposalListResult] = (*ProposalsRenderer)(nil)
