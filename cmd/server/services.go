package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boba-tech/site-api/internal/services"
)

func (s *server) handleServicesList(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, "", map[string]any{
		"services":   services.All(),
		"industries": services.Industries(),
	})
}

func (s *server) handleServiceDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if service, ok := services.BySlug(slug); ok {
		respondSuccess(w, http.StatusOK, "", service)
		return
	}
	if industry, ok := services.IndustryBySlug(slug); ok {
		respondSuccess(w, http.StatusOK, "", industry)
		return
	}

	respondError(w, http.StatusNotFound, "Service not found")
}
