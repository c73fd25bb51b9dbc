package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	valid, err := s.auth.validateCredentials(req.Email, req.Password)
	if err != nil {
		s.log.Error("authentication error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "authentication error")
		return
	}
	if !valid {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.auth.setSessionCookie(w, req.Email)
	respondSuccess(w, http.StatusOK, "logged in", nil)
}

func (s *server) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	respondSuccess(w, http.StatusOK, "logged out", nil)
}

func (s *server) handleAdminContactMessages(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	messages, err := s.store.ListContactMessages(r.Context(), query)
	if err != nil {
		s.log.Error("failed to load contact messages", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load contact messages")
		return
	}

	items := make([]map[string]any, 0, len(messages))
	for _, m := range messages {
		items = append(items, map[string]any{
			"id":        m.ID,
			"name":      m.Name,
			"email":     m.Email,
			"company":   m.Company,
			"message":   m.Message,
			"createdAt": m.CreatedAt,
		})
	}

	respondSuccess(w, http.StatusOK, "", items)
}

func (s *server) handleAdminEstimates(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	estimates, err := s.store.ListEstimates(r.Context(), query)
	if err != nil {
		s.log.Error("failed to load estimates", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load estimates")
		return
	}

	items := make([]map[string]any, 0, len(estimates))
	for _, e := range estimates {
		items = append(items, map[string]any{
			"id":         e.ID,
			"reference":  e.Reference,
			"email":      e.Email,
			"totalPrice": e.TotalPrice,
			"breakdown":  e.Breakdown,
			"createdAt":  e.CreatedAt,
		})
	}

	respondSuccess(w, http.StatusOK, "", items)
}
