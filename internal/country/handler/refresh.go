package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"countryfx/internal/domain"

	"github.com/sirupsen/logrus"
)

type RefreshResponse struct {
	Processed       int       `json:"processed" example:"250"`
	LastRefreshedAt time.Time `json:"last_refreshed_at" example:"2025-01-02T15:04:05Z"`
}

// Refresh godoc
// @Summary Refresh country data
// @Description Fetch fresh country and exchange-rate snapshots, merge and persist them atomically
// @Tags Countries
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 409 {object} errorResponse "refresh already in progress"
// @Failure 503 {object} errorResponse "an external source is unavailable"
// @Failure 500 {object} errorResponse
// @Router /countries/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	res, err := h.refresher.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRefreshInProgress) {
			writeError(w, http.StatusConflict, domain.ErrRefreshInProgress.Error())
			return
		}
		var srcErr *domain.SourceUnavailableError
		if errors.As(err, &srcErr) {
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Refresh", "source": srcErr.Source}).Error("external source unavailable")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(errorResponse{
				Error:  "external data source is unavailable",
				Source: srcErr.Source,
			})
			return
		}
		msg := "refresh failed, nothing was changed"
		logrus.WithError(err).WithField("handler", "Refresh").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{
		Processed:       res.Processed,
		LastRefreshedAt: res.LastRefreshedAt,
	})
}
