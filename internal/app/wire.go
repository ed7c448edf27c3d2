//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/voteagora/agora-cli/internal/adapters"
	"github.com/voteagora/agora-cli/internal/api"
	"github.com/voteagora/agora-cli/internal/config"
	"github.com/voteagora/agora-cli/internal/logging"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewListProposals,
		usecase.NewShowProposal,
		usecase.NewGetVotableSupply,
		usecase.NewShowConfig,

		// HTTP API
		api.NewController,
		api.NewServer,

		// App
		NewApp,
	)
	return nil, nil
}
