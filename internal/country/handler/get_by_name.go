package handler

import (
	"errors"
	"net/http"
	"strings"

	"countryfx/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// GetByName godoc
// @Summary Get a country by name
// @Description Look up one stored country record, matching the name case-insensitively
// @Tags Countries
// @Produce json
// @Param name path string true "Country name"
// @Success 200 {object} CountryResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries/{name} [get]
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if err := h.validator.ValidateName(name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, "country not found")
			return
		}
		msg := "couldn't get country this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByName", "name": name}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, toCountryResponse(*c))
}
