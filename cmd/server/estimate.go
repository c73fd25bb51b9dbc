package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/boba-tech/site-api/internal/pricing"
	"github.com/boba-tech/site-api/internal/store"
)

type estimateRequest struct {
	Email      string             `json:"email"`
	Selections pricing.Selections `json:"selections"`
}

func (req *estimateRequest) validate() []fieldError {
	var errs []fieldError

	if !validEmail(req.Email) {
		errs = append(errs, fieldError{Field: "email", Message: "Invalid email address"})
	}
	if len(req.Selections) == 0 {
		errs = append(errs, fieldError{Field: "selections", Message: "At least one selection is required"})
	}

	return errs
}

func (s *server) handlePricingCatalog(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, "", s.catalog)
}

// handleEstimateSubmit recomputes the total and breakdown on the
// server; a client-supplied price is never trusted.
func (s *server) handleEstimateSubmit(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	totalPrice := s.catalog.Total(req.Selections)
	breakdown := s.catalog.FormatSummary(req.Selections)

	estimate, err := s.store.InsertEstimate(r.Context(), req.Email, totalPrice, req.Selections, breakdown)
	if err != nil {
		s.log.Error("failed to save pricing estimate", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to save estimate")
		return
	}

	s.log.Info("pricing estimate saved",
		zap.Int64("id", estimate.ID),
		zap.String("reference", estimate.Reference),
		zap.String("email", estimate.Email),
		zap.Int("total_price", estimate.TotalPrice),
	)

	respondSuccess(w, http.StatusCreated, "Estimate saved successfully", map[string]any{
		"id":         estimate.ID,
		"reference":  estimate.Reference,
		"totalPrice": estimate.TotalPrice,
	})
}

func (s *server) handleEstimateDetail(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	estimate, err := s.store.GetEstimateByReference(r.Context(), reference)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Estimate not found")
		return
	}
	if err != nil {
		s.log.Error("failed to load pricing estimate", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to load estimate")
		return
	}

	respondSuccess(w, http.StatusOK, "", map[string]any{
		"reference":  estimate.Reference,
		"email":      estimate.Email,
		"totalPrice": estimate.TotalPrice,
		"selections": estimate.Selections,
		"breakdown":  estimate.Breakdown,
		"createdAt":  estimate.CreatedAt,
	})
}
