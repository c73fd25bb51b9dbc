package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/boba-tech/site-api/internal/notify"
)

const notifyTimeout = 15 * time.Second

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

func (req *contactRequest) validate() []fieldError {
	var errs []fieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, fieldError{Field: "name", Message: "Name is required"})
	} else if len(name) > 100 {
		errs = append(errs, fieldError{Field: "name", Message: "Name must be at most 100 characters"})
	}

	if !validEmail(req.Email) {
		errs = append(errs, fieldError{Field: "email", Message: "Invalid email address"})
	}

	if len(strings.TrimSpace(req.Company)) > 100 {
		errs = append(errs, fieldError{Field: "company", Message: "Company must be at most 100 characters"})
	}

	message := strings.TrimSpace(req.Message)
	if len(message) < 10 {
		errs = append(errs, fieldError{Field: "message", Message: "Message must be at least 10 characters"})
	} else if len(message) > 2000 {
		errs = append(errs, fieldError{Field: "message", Message: "Message must be at most 2000 characters"})
	}

	return errs
}

// validEmail checks address format only; deliverability is the mail
// provider's problem.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject "Name <a@b>" forms; the field must be a bare address.
	return addr.Address == email
}

func (s *server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	name := strings.TrimSpace(req.Name)
	company := strings.TrimSpace(req.Company)
	message := strings.TrimSpace(req.Message)

	id, err := s.store.InsertContactMessage(r.Context(), name, req.Email, company, message)
	if err != nil {
		s.log.Error("failed to save contact message", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to submit contact form. Please try again later.")
		return
	}

	s.log.Info("new contact form submission",
		zap.Int64("id", id),
		zap.String("name", name),
		zap.String("email", req.Email),
		zap.String("company", company),
	)

	// The message is already saved; a notification failure must not
	// fail the request. Detached context so a client disconnect does
	// not cancel delivery.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyContact(ctx, notify.ContactData{
		Name:      name,
		Email:     req.Email,
		Company:   company,
		Message:   message,
		CreatedAt: time.Now(),
	}); err != nil {
		s.log.Error("email notification failed", zap.Int64("id", id), zap.Error(err))
	}

	respondSuccess(w, http.StatusCreated, "Thank you for contacting us! We'll get back to you soon.", map[string]any{
		"id": id,
	})
}
