package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/voteagora/agora-cli/internal/adapters/blockchain"
	"github.com/voteagora/agora-cli/internal/adapters/cache"
	"github.com/voteagora/agora-cli/internal/adapters/daonode"
	"github.com/voteagora/agora-cli/internal/adapters/interactive"
	"github.com/voteagora/agora-cli/internal/adapters/progress"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// ProvideProposalSource puts the read-through cache in front of the DAO Node
func ProvideProposalSource(source *daonode.Source, cfg *config.RuntimeConfig, log *slog.Logger) usecase.ProposalSource {
	return cache.NewProposalCache(source, cfg.CacheTTL, log)
}

// DaoNodeSet provides the indexer-backed proposal source
var DaoNodeSet = wire.NewSet(
	daonode.NewClient,
	daonode.NewSource,
	ProvideProposalSource,
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewBlockReader,
	wire.Bind(new(usecase.BlockReader), new(*blockchain.BlockReader)),
)

// ProgressSet provides the progress sink for the current invocation
var ProgressSet = wire.NewSet(
	progress.Provide,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	DaoNodeSet,
	InteractiveSet,
	BlockchainSet,
	ProgressSet,
)
