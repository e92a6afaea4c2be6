package handler

import (
	"errors"
	"net/http"
	"strings"

	"countryfx/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Delete godoc
// @Summary Delete a country
// @Description Delete one stored country record, matching the name case-insensitively
// @Tags Countries
// @Param name path string true "Country name"
// @Success 204 "deleted"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries/{name} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if err := h.validator.ValidateName(name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), name); err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, "country not found")
			return
		}
		msg := "couldn't delete country this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "name": name}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
