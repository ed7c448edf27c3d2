package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// maxTitleWidth keeps options on one terminal line
const maxTitleWidth = 72

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectProposal selects a proposal from a list
func (s *SelectorAdapter) SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode, pass a proposal id")
	}

	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals provided for selection")
	}

	if len(proposals) == 1 {
		return proposals[0], nil
	}

	options := formatProposalOptions(proposals)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Type to search, arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return proposals[index], nil
}

// formatProposalOptions renders "Title [TYPE] (id)" for each proposal
func formatProposalOptions(proposals []*models.Proposal) []string {
	options := make([]string, len(proposals))
	for i, p := range proposals {
		title := p.Title()
		if title == "" {
			title = "(untitled)"
		}
		if len(title) > maxTitleWidth {
			title = title[:maxTitleWidth-3] + "..."
		}

		typeStr := color.New(color.FgYellow).Sprintf("[%s]", strings.ToLower(string(p.ProposalType)))
		idStr := color.New(color.FgBlue).Sprint(shortID(p.ID))
		options[i] = fmt.Sprintf("%s %s (%s)", title, typeStr, idStr)
	}
	return options
}

// shortID abbreviates the long decimal ids governors hash proposals into
func shortID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "…" + id[len(id)-6:]
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ProposalSelector = (*SelectorAdapter)(nil)
