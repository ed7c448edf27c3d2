package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/voteagora/agora-cli/internal/domain/config"
)

// VotingPowerRenderer renders the tenant's votable supply
type VotingPowerRenderer struct {
	out    io.Writer
	tenant *config.Tenant
	color  bool
}

// NewVotingPowerRenderer creates a new voting power renderer
func NewVotingPowerRenderer(out io.Writer, tenant *config.Tenant, color bool) *VotingPowerRenderer {
	return &VotingPowerRenderer{out: out, tenant: tenant, color: color}
}

// Render renders the votable supply in whole tokens, with the raw amount alongside
func (r *VotingPowerRenderer) Render(supply *big.Int) error {
	symbol := ""
	name := ""
	if r.tenant != nil {
		symbol = r.tenant.TokenSymbol
		name = r.tenant.Name
	}

	label := "Votable supply"
	if name != "" {
		label = name + " votable supply"
	}
	fmt.Fprintf(r.out, "%s: %s %s\n",
		paint(r.color, labelStyle, label),
		FormatTokenAmount(supply, tokenDecimals(r.tenant)),
		symbol,
	)
	if supply != nil {
		fmt.Fprintln(r.out, paint(r.color, faintStyle, "raw: "+supply.String()))
	}
	return nil
}

var _ Renderer[*big.Int] = (*VotingPowerRenderer)(nil)
