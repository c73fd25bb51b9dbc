package main

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestEstimateSubmitComputesTotalServerSide(t *testing.T) {
	srv, _ := newTestServer(t)

	// Client-supplied totals are ignored; 850 * 0.85 = 722.5 rounds
	// up to 723 on the server.
	body := `{
		"email": "client@example.com",
		"totalPrice": 1,
		"selections": {"0": ["landing"], "1": ["auth"], "4": ["flexible"]}
	}`
	rr, resp := doJSON(t, srv.routes(), http.MethodPost, "/api/pricing-estimate", body)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var data struct {
		ID         int64  `json:"id"`
		Reference  string `json:"reference"`
		TotalPrice int    `json:"totalPrice"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.TotalPrice != 723 {
		t.Fatalf("expected server-computed total 723, got %d", data.TotalPrice)
	}
	if data.ID <= 0 || data.Reference == "" {
		t.Fatalf("unexpected identifiers: %+v", data)
	}
}

func TestEstimateSubmitPersistsBreakdown(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"email": "client@example.com", "selections": {"0": ["landing"], "1": ["auth"]}}`
	_, resp := doJSON(t, srv.routes(), http.MethodPost, "/api/pricing-estimate", body)

	var data struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}

	estimate, err := srv.store.GetEstimateByReference(t.Context(), data.Reference)
	if err != nil {
		t.Fatalf("failed to load estimate: %v", err)
	}

	want := "Project Type:\n  - Landing Page\n\nCore Features:\n  - User Authentication"
	if estimate.Breakdown != want {
		t.Fatalf("breakdown = %q, want %q", estimate.Breakdown, want)
	}
	if estimate.TotalPrice != 850 {
		t.Fatalf("total = %d, want 850", estimate.TotalPrice)
	}
}

func TestEstimateSubmitToleratesStaleSelections(t *testing.T) {
	srv, _ := newTestServer(t)

	// Unknown option ids and step indices degrade to zero contribution.
	body := `{"email": "client@example.com", "selections": {"0": ["landing", "removed-option"], "99": ["auth"]}}`
	rr, resp := doJSON(t, srv.routes(), http.MethodPost, "/api/pricing-estimate", body)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	var data struct {
		TotalPrice int `json:"totalPrice"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.TotalPrice != 350 {
		t.Fatalf("expected 350, got %d", data.TotalPrice)
	}
}

func TestEstimateSubmitValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"invalid email", `{"email": "nope", "selections": {"0": ["landing"]}}`, "email"},
		{"missing selections", `{"email": "a@example.com"}`, "selections"},
		{"empty selections", `{"email": "a@example.com", "selections": {}}`, "selections"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr, resp := doJSON(t, srv.routes(), http.MethodPost, "/api/pricing-estimate", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if _, ok := fieldErrorFor(resp.Errors, tc.field); !ok {
				t.Fatalf("expected error for field %q, got %+v", tc.field, resp.Errors)
			}
		})
	}
}

func TestEstimateDetailNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/pricing-estimate/missing-ref", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if resp.Success {
		t.Fatal("expected failure response")
	}
}

func TestPricingCatalogEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rr, resp := doJSON(t, srv.routes(), http.MethodGet, "/api/pricing/catalog", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var catalog struct {
		Steps []struct {
			Title   string `json:"title"`
			Options []struct {
				ID        string `json:"id"`
				BasePrice int    `json:"basePrice"`
			} `json:"options"`
		} `json:"steps"`
		TimelineStepID int `json:"timelineStepId"`
	}
	if err := json.Unmarshal(resp.Data, &catalog); err != nil {
		t.Fatalf("failed to decode catalog: %v", err)
	}
	if len(catalog.Steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(catalog.Steps))
	}
	if catalog.TimelineStepID != 5 {
		t.Fatalf("expected timeline step id 5, got %d", catalog.TimelineStepID)
	}
	if catalog.Steps[0].Title != "Project Type" || catalog.Steps[0].Options[0].ID != "landing" {
		t.Fatalf("unexpected first step: %+v", catalog.Steps[0])
	}
}
