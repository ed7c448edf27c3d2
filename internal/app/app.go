package app

import (
	"log/slog"

	"github.com/voteagora/agora-cli/internal/api"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	ListProposals    *usecase.ListProposals
	ShowProposal     *usecase.ShowProposal
	GetVotableSupply *usecase.GetVotableSupply
	ShowConfig       *usecase.ShowConfig

	// HTTP API
	Server *api.Server
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	listProposals *usecase.ListProposals,
	showProposal *usecase.ShowProposal,
	getVotableSupply *usecase.GetVotableSupply,
	showConfig *usecase.ShowConfig,
	server *api.Server,
) (*App, error) {
	return &App{
		Config:           cfg,
		Logger:           logger,
		ListProposals:    listProposals,
		ShowProposal:     showProposal,
		GetVotableSupply: getVotableSupply,
		ShowConfig:       showConfig,
		Server:           server,
	}, nil
}
