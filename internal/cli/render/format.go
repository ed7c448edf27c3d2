package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fatih/color"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
)

// Color styles
var (
	succeededStyle = color.New(color.FgGreen)
	defeatedStyle  = color.New(color.FgRed)
	activeStyle    = color.New(color.FgCyan, color.Bold)
	waitingStyle   = color.New(color.FgYellow)
	faintStyle     = color.New(color.Faint)
	labelStyle     = color.New(color.Bold)
	headingStyle   = color.New(color.Bold, color.FgHiWhite)
)

// FormatNumber groups thousands: 1234567 -> 1,234,567
func FormatNumber(v *big.Int) string {
	if v == nil {
		return "-"
	}
	if v.IsInt64() {
		return printer.Sprintf("%d", v.Int64())
	}
	return v.String()
}

// FormatTokenAmount renders a raw token amount in whole tokens with up to two
// decimals: 1234500000000000000000 at 18 decimals -> 1,234.5
func FormatTokenAmount(v *big.Int, decimals uint8) string {
	if v == nil {
		return "-"
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(v, unit, new(big.Int))

	// two decimal places, truncated
	cents := new(big.Int).Quo(new(big.Int).Mul(frac.Abs(frac), big.NewInt(100)), unit)

	s := FormatNumber(whole)
	if cents.Sign() == 0 {
		return s
	}
	return s + "." + strings.TrimRight(fmt.Sprintf("%02d", cents.Int64()), "0")
}

// FormatPercent renders part/total as a percentage with one decimal
func FormatPercent(part, total *big.Int) string {
	if part == nil || total == nil || total.Sign() == 0 {
		return "-"
	}
	// per-mille for one decimal of precision
	pm := new(big.Int).Quo(new(big.Int).Mul(part, big.NewInt(1000)), total)
	return fmt.Sprintf("%d.%d%%", pm.Int64()/10, pm.Int64()%10)
}

// FormatBasisPoints renders 2500 as 25%
func FormatBasisPoints(bps uint64) string {
	if bps%100 == 0 {
		return fmt.Sprintf("%d%%", bps/100)
	}
	return fmt.Sprintf("%.2f%%", float64(bps)/100)
}

// FormatStatus renders a status as a colored title-cased word
func FormatStatus(status models.ProposalStatus, colored bool) string {
	if status == "" {
		return "-"
	}
	return paint(colored, statusStyle(status), title.String(strings.ToLower(string(status))))
}

// FormatType renders STANDARD as Standard
func FormatType(t models.ProposalType) string {
	return title.String(strings.ToLower(string(t)))
}

func statusStyle(status models.ProposalStatus) *color.Color {
	switch status {
	case models.ProposalStatusSucceeded, models.ProposalStatusExecuted:
		return succeededStyle
	case models.ProposalStatusDefeated, models.ProposalStatusFailed, models.ProposalStatusCancelled:
		return defeatedStyle
	case models.ProposalStatusActive:
		return activeStyle
	default:
		return waitingStyle
	}
}

// ShortID abbreviates long decimal proposal ids for tables
func ShortID(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:6] + "…" + id[len(id)-4:]
}

// truncate cuts s to n runes with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
