// Package api is the HTTP surface a front-end consumes: the marketplace,
// the portfolio with rent claims, and the AI valuation endpoints.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/decentraestate/marketd/internal/catalog"
	"github.com/decentraestate/marketd/internal/market"
	"github.com/decentraestate/marketd/internal/models"
	"github.com/decentraestate/marketd/internal/portfolio"
	"github.com/decentraestate/marketd/internal/valuation"
)

type Logger interface {
	Error(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
}

type Server struct {
	catalog *catalog.Catalog
	ledger  *portfolio.Ledger
	book    *market.Book
	gateway *valuation.Gateway
	logger  Logger
}

func NewServer(cat *catalog.Catalog, ledger *portfolio.Ledger, book *market.Book, gateway *valuation.Gateway, logger Logger) *Server {
	return &Server{
		catalog: cat,
		ledger:  ledger,
		book:    book,
		gateway: gateway,
		logger:  logger,
	}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", s.listProperties)
		r.Get("/{id}", s.getProperty)
		r.Get("/{id}/offers", s.getOffers)
		r.Get("/{id}/history", s.getHistory)
	})

	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/", s.getPortfolio)
		r.Get("/claims", s.listClaims)
		r.Post("/claims", s.createClaim)
	})

	r.Post("/valuations", s.createValuation)
	r.Post("/verifications", s.createVerification)

	return r
}

// listProperties filters the marketplace by the query parameters min_price,
// max_price and min_sold. Unparsable values impose no constraint.
// GET /properties
func (s *Server) listProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := catalog.ParseCriteria(q.Get("min_price"), q.Get("max_price"), q.Get("min_sold"))

	properties := catalog.Filter(s.catalog.Properties(), criteria)
	s.writeJSON(w, http.StatusOK, properties)
}

// GET /properties/{id}
func (s *Server) getProperty(w http.ResponseWriter, r *http.Request) {
	property, ok := s.propertyFromURL(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, property)
}

// GET /properties/{id}/offers
func (s *Server) getOffers(w http.ResponseWriter, r *http.Request) {
	property, ok := s.propertyFromURL(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.book.Offers(property.ID))
}

// GET /properties/{id}/history
func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	property, ok := s.propertyFromURL(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.book.History(property.ID))
}

// PortfolioItem joins a holding with its catalog entry. Property is nil for
// holdings whose listing is no longer in the catalog.
type PortfolioItem struct {
	models.UserHolding
	Property *models.Property `json:"property,omitempty"`
}

type PortfolioResponse struct {
	Holdings []PortfolioItem  `json:"holdings"`
	Totals   portfolio.Totals `json:"totals"`
}

// GET /portfolio
func (s *Server) getPortfolio(w http.ResponseWriter, r *http.Request) {
	holdings := s.ledger.Holdings()

	items := make([]PortfolioItem, 0, len(holdings))
	for _, h := range holdings {
		item := PortfolioItem{UserHolding: h}
		if p, ok := s.catalog.ByID(h.PropertyID); ok {
			item.Property = &p
		}
		items = append(items, item)
	}

	s.writeJSON(w, http.StatusOK, PortfolioResponse{
		Holdings: items,
		Totals:   s.ledger.Totals(s.catalog),
	})
}

// GET /portfolio/claims
func (s *Server) listClaims(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.ledger.Receipts())
}

type ClaimRequest struct {
	PropertyID int  `json:"property_id"`
	All        bool `json:"all"`
}

// createClaim settles accrued rent for one holding or all of them. Returns
// 409 while another claim is still settling.
// POST /portfolio/claims
func (s *Server) createClaim(w http.ResponseWriter, r *http.Request) {
	var req ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !req.All && req.PropertyID <= 0 {
		http.Error(w, "property_id or all is required", http.StatusBadRequest)
		return
	}

	var (
		receipt *portfolio.ClaimReceipt
		err     error
	)
	if req.All {
		receipt, err = s.ledger.ClaimAll(r.Context())
	} else {
		receipt, err = s.ledger.Claim(r.Context(), req.PropertyID)
	}

	if errors.Is(err, portfolio.ErrClaimInFlight) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		s.logger.Error("claim failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusCreated, receipt)
}

type ValuationRequest struct {
	Address string `json:"address"`
}

// POST /valuations
func (s *Server) createValuation(w http.ResponseWriter, r *http.Request) {
	var req ValuationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.gateway.Valuate(r.Context(), req.Address)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

type VerificationRequest struct {
	Document string `json:"document"` // base64-encoded file content
	MimeType string `json:"mime_type"`
}

// POST /verifications
func (s *Server) createVerification(w http.ResponseWriter, r *http.Request) {
	var req VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.gateway.VerifyDocument(r.Context(), req.Document, req.MimeType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) propertyFromURL(w http.ResponseWriter, r *http.Request) (models.Property, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return models.Property{}, false
	}

	property, ok := s.catalog.ByID(id)
	if !ok {
		http.Error(w, "property not found", http.StatusNotFound)
		return models.Property{}, false
	}
	return property, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
