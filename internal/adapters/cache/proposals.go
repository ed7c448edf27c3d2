package cache

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/singleflight"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/models"
	"github.com/voteagora/agora-cli/internal/usecase"
)

const votableSupplyKey = "votable_supply"

type entry[T any] struct {
	Value   T
	Fetched time.Time
}

// ProposalCache is a read-through TTL cache in front of a ProposalSource.
// Failed fetches are never stored. Concurrent misses for the same key share
// one upstream fetch.
type ProposalCache struct {
	next usecase.ProposalSource
	ttl  time.Duration
	now  func() time.Time
	log  *slog.Logger

	flight singleflight.Group

	lists     *xsync.Map[domain.ProposalSet, entry[[]*models.Proposal]]
	proposals *xsync.Map[string, entry[*models.Proposal]]
	supply    *xsync.Map[string, entry[*big.Int]]
}

// NewProposalCache wraps next. A ttl of zero disables caching.
func NewProposalCache(next usecase.ProposalSource, ttl time.Duration, log *slog.Logger) *ProposalCache {
	return &ProposalCache{
		next:      next,
		ttl:       ttl,
		now:       time.Now,
		log:       log.With("component", "cache"),
		lists:     xsync.NewMap[domain.ProposalSet, entry[[]*models.Proposal]](),
		proposals: xsync.NewMap[string, entry[*models.Proposal]](),
		supply:    xsync.NewMap[string, entry[*big.Int]](),
	}
}

// ListProposals implements usecase.ProposalSource
func (c *ProposalCache) ListProposals(ctx context.Context, set domain.ProposalSet) ([]*models.Proposal, error) {
	return readThrough(c, c.lists, set, "proposals:"+string(set), func() ([]*models.Proposal, error) {
		return c.next.ListProposals(ctx, set)
	})
}

// GetProposal implements usecase.ProposalSource
func (c *ProposalCache) GetProposal(ctx context.Context, id string) (*models.Proposal, error) {
	return readThrough(c, c.proposals, id, "proposal:"+id, func() (*models.Proposal, error) {
		return c.next.GetProposal(ctx, id)
	})
}

// VotableSupply implements usecase.ProposalSource
func (c *ProposalCache) VotableSupply(ctx context.Context) (*big.Int, error) {
	v, err := readThrough(c, c.supply, votableSupplyKey, votableSupplyKey, func() (*big.Int, error) {
		return c.next.VotableSupply(ctx)
	})
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

// Invalidate drops every cached entry
func (c *ProposalCache) Invalidate() {
	c.lists.Clear()
	c.proposals.Clear()
	c.supply.Clear()
}

func readThrough[K comparable, V any](c *ProposalCache, m *xsync.Map[K, entry[V]], key K, flightKey string, fetch func() (V, error)) (V, error) {
	if c.ttl <= 0 {
		return fetch()
	}

	if v, ok := fresh(c, m, key); ok {
		return v, nil
	}

	v, err, shared := c.flight.Do(flightKey, func() (any, error) {
		// an earlier flight may have filled the entry since the first lookup
		if v, ok := fresh(c, m, key); ok {
			return v, nil
		}
		c.log.Debug("cache miss", "key", key)
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		m.Store(key, entry[V]{Value: v, Fetched: c.now()})
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	if shared {
		c.log.Debug("shared fetch", "key", key)
	}
	return v.(V), nil
}

func fresh[K comparable, V any](c *ProposalCache, m *xsync.Map[K, entry[V]], key K) (V, bool) {
	cached, ok := m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	age := c.now().Sub(cached.Fetched)
	if age >= c.ttl {
		var zero V
		return zero, false
	}
	c.log.Debug("cache hit", "key", key, "age", age)
	return cached.Value, true
}

var _ usecase.ProposalSource = (*ProposalCache)(nil)
