package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type StatusResponse struct {
	TotalCountries  int64      `json:"total_countries" example:"250"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at" example:"2025-01-02T15:04:05Z"`
}

// Status godoc
// @Summary Service status
// @Description Report the number of stored countries and the last successful refresh time
// @Tags Status
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} errorResponse
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Status(r.Context())
	if err != nil {
		msg := "couldn't get status this time"
		logrus.WithError(err).WithField("handler", "Status").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		TotalCountries:  view.TotalCountries,
		LastRefreshedAt: view.LastRefreshedAt,
	})
}
