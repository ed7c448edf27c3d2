package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// headTimeout bounds a single head lookup
const headTimeout = 5 * time.Second

// HeaderFetcher is the slice of ethclient.Client the reader needs
type HeaderFetcher interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// BlockReader implements usecase.BlockReader over JSON-RPC
type BlockReader struct {
	rpcURL  string
	chainID uint64
	log     *slog.Logger

	mu     sync.Mutex
	client HeaderFetcher
}

// NewBlockReader creates a reader for the tenant's RPC endpoint. The
// connection is opened lazily on first use.
func NewBlockReader(cfg *config.RuntimeConfig, log *slog.Logger) *BlockReader {
	r := &BlockReader{log: log.With("component", "blockchain")}
	if cfg.Tenant != nil {
		r.rpcURL = cfg.Tenant.RPCURL
		r.chainID = cfg.Tenant.ChainID
	}
	return r
}

// NewBlockReaderWithClient creates a reader over an existing client
func NewBlockReaderWithClient(client HeaderFetcher, chainID uint64, log *slog.Logger) *BlockReader {
	return &BlockReader{
		client:  client,
		chainID: chainID,
		log:     log.With("component", "blockchain"),
	}
}

// LatestBlock returns the chain head, or nil when no RPC URL is configured
func (r *BlockReader) LatestBlock(ctx context.Context) (*models.BlockInfo, error) {
	client, err := r.connect(ctx)
	if err != nil || client == nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, headTimeout)
	defer cancel()

	header, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	r.log.Debug("latest block", "number", header.Number, "time", header.Time)
	return &models.BlockInfo{
		Number:    new(big.Int).Set(header.Number),
		Timestamp: header.Time,
	}, nil
}

// connect dials the RPC endpoint once and checks it serves the tenant's chain
func (r *BlockReader) connect(ctx context.Context) (HeaderFetcher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}
	if r.rpcURL == "" {
		return nil, nil
	}

	client, err := ethclient.DialContext(ctx, r.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	if r.chainID != 0 {
		ctx, cancel := context.WithTimeout(ctx, headTimeout)
		defer cancel()

		networkChainID, err := client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to get chain ID: %w", err)
		}
		if networkChainID.Uint64() != r.chainID {
			client.Close()
			return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", r.chainID, networkChainID.Uint64())
		}
	}

	r.client = client
	return client, nil
}

var _ usecase.BlockReader = (*BlockReader)(nil)
