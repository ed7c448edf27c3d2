package daonode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/config"
)

// maxErrorBody bounds how much of a failed response is kept in a StatusError
const maxErrorBody = 512

// Client talks to a tenant's DAO Node indexer
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	log        *slog.Logger
}

// NewClient creates a client for the tenant's resolved DAO Node URL.
// Requests fail with ErrNoBaseURL when the tenant has none.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var baseURL string
	if cfg.Tenant != nil {
		baseURL = cfg.Tenant.DaoNodeURL
	}
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, log)
}

// NewClientWithHTTP creates a client against an explicit base URL
func NewClientWithHTTP(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		validate:   validator.New(),
		log:        log.With("component", "daonode"),
	}
}

// BaseURL returns the indexer base URL, always ending in a slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Proposals fetches every proposal in the given set
func (c *Client) Proposals(ctx context.Context, set domain.ProposalSet) ([]RawProposal, error) {
	query := url.Values{}
	query.Set("set", string(set))

	var resp proposalsResponse
	if err := c.get(ctx, "v1/proposals?"+query.Encode(), "proposals", &resp); err != nil {
		return nil, err
	}
	return resp.Proposals, nil
}

// Proposal fetches a single proposal. A 404 maps to domain.ErrNotFound.
func (c *Client) Proposal(ctx context.Context, id string) (*RawProposal, error) {
	var resp proposalResponse
	if err := c.get(ctx, "v1/proposal/"+url.PathEscape(id), "proposal", &resp); err != nil {
		return nil, err
	}
	return resp.Proposal, nil
}

// ProposalTypes fetches the governor's proposal type table
func (c *Client) ProposalTypes(ctx context.Context) (ProposalTypes, error) {
	var resp proposalTypesResponse
	if err := c.get(ctx, "v1/proposal_types", "proposal_types", &resp); err != nil {
		return nil, err
	}
	if resp.ProposalTypes == nil {
		return ProposalTypes{}, nil
	}
	return resp.ProposalTypes, nil
}

// VotingPower fetches the total votable supply
func (c *Client) VotingPower(ctx context.Context) (*Quantity, error) {
	var resp votingPowerResponse
	if err := c.get(ctx, "v1/voting_power", "voting_power", &resp); err != nil {
		return nil, err
	}
	return resp.VotingPower, nil
}

func (c *Client) get(ctx context.Context, path, payload string, out any) error {
	if c.baseURL == "" {
		return ErrNoBaseURL
	}
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("GET", "url", endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", payload, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Debug("response", "url", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			URL:        endpoint,
			Body:       truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
		if statusErr.NotFound() {
			return fmt.Errorf("%w: %w", domain.ErrNotFound, statusErr)
		}
		return statusErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ValidationError{Payload: payload, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if err := c.validate.Struct(out); err != nil {
		return &ValidationError{Payload: payload, Err: err}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
