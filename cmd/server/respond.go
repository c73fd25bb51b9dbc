package main

import (
	"encoding/json"
	"net/http"
)

// fieldError is a validation failure tied to one request field.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type apiResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, apiResponse{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Message: message})
}

func respondValidationErrors(w http.ResponseWriter, errors []fieldError) {
	writeJSON(w, http.StatusBadRequest, apiResponse{
		Success: false,
		Message: "Invalid request data",
		Errors:  errors,
	})
}
