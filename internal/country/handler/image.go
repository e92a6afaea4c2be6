package handler

import (
	"net/http"
	"os"
)

// SummaryImage godoc
// @Summary Summary image
// @Description Serve the PNG summary generated after the last successful refresh
// @Tags Status
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} errorResponse "no summary generated yet"
// @Router /countries/image [get]
func (h *Handler) SummaryImage(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.summaryPath); err != nil {
		writeError(w, http.StatusNotFound, "summary image not generated yet")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, h.summaryPath)
}
