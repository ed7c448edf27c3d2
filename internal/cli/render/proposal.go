package render

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// ProposalRenderer renders the detail view of a single proposal
type ProposalRenderer struct {
	out    io.Writer
	tenant *config.Tenant
	color  bool
}

// NewProposalRenderer creates a new proposal renderer
func NewProposalRenderer(out io.Writer, tenant *config.Tenant, color bool) *ProposalRenderer {
	return &ProposalRenderer{out: out, tenant: tenant, color: color}
}

// Render renders the proposal detail
func (r *ProposalRenderer) Render(result *usecase.ProposalDetailResult) error {
	p := result.Proposal
	decimals := tokenDecimals(r.tenant)
	symbol := ""
	if r.tenant != nil && r.tenant.TokenSymbol != "" {
		symbol = " " + r.tenant.TokenSymbol
	}

	title := p.Title()
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintln(r.out, paint(r.color, headingStyle, title))
	fmt.Fprintln(r.out)

	r.field("ID", p.ID)
	r.field("Status", FormatStatus(p.Status, r.color))
	r.field("Type", r.typeLabel(p))
	r.field("Proposer", p.Proposer)
	r.field("Created", "block "+FormatNumber(p.CreatedBlock))
	r.field("Voting", fmt.Sprintf("blocks %s → %s", FormatNumber(p.StartBlock), FormatNumber(p.EndBlock)))
	if p.QueuedBlock != nil {
		r.field("Queued", "block "+FormatNumber(p.QueuedBlock))
	}
	if p.ExecutedBlock != nil {
		r.field("Executed", "block "+FormatNumber(p.ExecutedBlock))
	}
	if p.CancelledBlock != nil {
		r.field("Cancelled", "block "+FormatNumber(p.CancelledBlock))
	}
	if result.LatestBlock != nil {
		r.field("Head", "block "+FormatNumber(result.LatestBlock.Number))
	}
	fmt.Fprintln(r.out)

	tally := p.ProposalResults.Standard
	total := new(big.Int)
	for _, v := range []*big.Int{tally.For, tally.Against, tally.Abstain} {
		if v != nil {
			total.Add(total, v)
		}
	}

	fmt.Fprintln(r.out, paint(r.color, labelStyle, "Results"))
	t := r.newTable()
	t.AppendHeader(table.Row{"Outcome", "Votes", "Share"})
	t.AppendRow(table.Row{paint(r.color, succeededStyle, "For"), FormatTokenAmount(tally.For, decimals) + symbol, FormatPercent(tally.For, total)})
	if p.ProposalType != models.ProposalTypeOptimistic || tally.Against != nil {
		t.AppendRow(table.Row{paint(r.color, defeatedStyle, "Against"), FormatTokenAmount(tally.Against, decimals) + symbol, FormatPercent(tally.Against, total)})
	}
	t.AppendRow(table.Row{"Abstain", FormatTokenAmount(tally.Abstain, decimals) + symbol, FormatPercent(tally.Abstain, total)})
	t.Render()

	if p.ProposalType == models.ProposalTypeApproval && len(p.ProposalResults.Approval) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, paint(r.color, labelStyle, "Options"))
		opts := r.newTable()
		opts.AppendHeader(table.Row{"Option", "Votes"})
		for _, opt := range p.ProposalResults.Approval {
			opts.AppendRow(table.Row{opt.Param, FormatTokenAmount(opt.Votes, decimals) + symbol})
		}
		opts.Render()
	}

	fmt.Fprintln(r.out)
	if result.RequiredQuorum != nil {
		r.field("Quorum", FormatTokenAmount(result.RequiredQuorum, decimals)+symbol)
	}
	if result.VotableSupply != nil {
		r.field("Votable", FormatTokenAmount(result.VotableSupply, decimals)+symbol)
	}

	if len(p.ProposalData.Targets) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, paint(r.color, labelStyle, "Actions"))
		r.renderActions(p.ProposalData)
	}

	if body := descriptionBody(p.Description); body != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, paint(r.color, labelStyle, "Description"))
		fmt.Fprintln(r.out, body)
	}
	return nil
}

func (r *ProposalRenderer) renderActions(data models.ProposalData) {
	t := r.newTable()
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
	t.AppendHeader(table.Row{"#", "Target", "Value", "Signature"})
	for i, target := range data.Targets {
		var value *big.Int
		if i < len(data.Values) {
			value = data.Values[i]
		}
		sig := ""
		if i < len(data.Signatures) {
			sig = data.Signatures[i]
		}
		if sig == "" && i < len(data.Calldatas) {
			sig = truncate(data.Calldatas[i], 18)
		}
		t.AppendRow(table.Row{i + 1, target, FormatNumber(value), sig})
	}
	t.Render()
}

func (r *ProposalRenderer) typeLabel(p *models.Proposal) string {
	label := FormatType(p.ProposalType)
	if cfg := p.TypeConfig; cfg != nil {
		label += paint(r.color, faintStyle, fmt.Sprintf(" (%s, quorum %s, threshold %s)",
			cfg.Name, FormatBasisPoints(cfg.Quorum), FormatBasisPoints(cfg.ApprovalThreshold)))
	}
	return label
}

func (r *ProposalRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "%s %s\n", paint(r.color, labelStyle, fmt.Sprintf("%-10s", label+":")), value)
}

func (r *ProposalRenderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return t
}

// descriptionBody drops the title line that is already printed as the heading
func descriptionBody(description string) string {
	lines := strings.Split(strings.TrimSpace(description), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		}
	}
	return ""
}

var _ Renderer[*usecase.ProposalDetailResult] = (*ProposalRenderer)(nil)
