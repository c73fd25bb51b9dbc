package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/boba-tech/site-api/internal/reddit"
)

func (s *server) handleRedditPostDate(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		respondError(w, http.StatusBadRequest, "URL parameter is required")
		return
	}

	ref, err := reddit.ParsePostURL(url)
	if errors.Is(err, reddit.ErrInvalidURL) {
		respondError(w, http.StatusBadRequest, "Invalid Reddit URL format")
		return
	}

	timestamp, err := s.reddit.FetchPostTimestamp(r.Context(), ref)
	if err != nil {
		s.log.Warn("reddit post lookup failed", zap.String("url", url), zap.Error(err))
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := reddit.ValidateTimestamp(timestamp); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondSuccess(w, http.StatusOK, "", map[string]any{
		"timestamp": timestamp,
		"postId":    ref.PostID,
	})
}
