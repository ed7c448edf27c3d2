package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/voteagora/agora-cli/internal/adapters/daonode"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/usecase"
)

// Controller serves proposal data over HTTP
type Controller struct {
	listProposals    *usecase.ListProposals
	showProposal     *usecase.ShowProposal
	getVotableSupply *usecase.GetVotableSupply
	log              *slog.Logger
}

// NewController returns a new controller.
func NewController(
	listProposals *usecase.ListProposals,
	showProposal *usecase.ShowProposal,
	getVotableSupply *usecase.GetVotableSupply,
	log *slog.Logger,
) *Controller {
	return &Controller{
		listProposals:    listProposals,
		showProposal:     showProposal,
		getVotableSupply: getVotableSupply,
		log:              log.With("component", "api"),
	}
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(c.logRequests)

	r.HandleFunc("/healthz", c.HandleHealth).Methods("GET")
	r.HandleFunc("/v1/proposals", c.HandleProposals).Methods("GET")
	r.HandleFunc("/v1/proposals/{id}", c.HandleProposal).Methods("GET")
	r.HandleFunc("/v1/voting_power", c.HandleVotingPower).Methods("GET")

	return r
}

// HandleHealth reports liveness
func (c *Controller) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleProposals returns one page of proposals
func (c *Controller) HandleProposals(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.listProposals.Run(r.Context(), usecase.ListProposalsParams{
		Filter:   q.Filter,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		c.writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result.Page)
}

// HandleProposal returns a single proposal
func (c *Controller) HandleProposal(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing proposal id")
		return
	}

	result, err := c.showProposal.Run(r.Context(), usecase.ShowProposalParams{ID: id})
	if err != nil {
		c.writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result.Proposal)
}

// HandleVotingPower returns the tenant's votable supply as a decimal string
func (c *Controller) HandleVotingPower(w http.ResponseWriter, r *http.Request) {
	supply, err := c.getVotableSupply.Run(r.Context())
	if err != nil {
		c.writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"voting_power": supply.String()})
}

// writeUsecaseError maps domain and upstream failures to HTTP statuses
func (c *Controller) writeUsecaseError(w http.ResponseWriter, err error) {
	var statusErr *daonode.StatusError

	switch {
	case errors.Is(err, domain.ErrInvalidPagination):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "proposal not found")
	case errors.As(err, &statusErr), errors.Is(err, domain.ErrInvalidPayload):
		c.log.Warn("upstream failure", "error", err)
		writeError(w, http.StatusBadGateway, "upstream indexer error")
	default:
		c.log.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (c *Controller) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.log.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "elapsed", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
