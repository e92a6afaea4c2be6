package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// List godoc
// @Summary List countries
// @Description List stored countries, optionally filtered by region or currency code, optionally sorted by estimated GDP descending
// @Tags Countries
// @Produce json
// @Param region query string false "Region filter (exact, case-insensitive)"
// @Param currency query string false "Currency code filter" example(NGN)
// @Param sort query string false "Sort order" Enums(gdp_desc)
// @Success 200 {array} CountryResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	region := strings.TrimSpace(q.Get("region"))
	currency := strings.TrimSpace(q.Get("currency"))
	sort := strings.TrimSpace(q.Get("sort"))

	filter, err := h.validator.ValidateListQuery(region, currency, sort)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	countries, err := h.service.List(r.Context(), filter)
	if err != nil {
		msg := "couldn't list countries this time"
		logrus.WithError(err).WithField("handler", "List").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		res = append(res, toCountryResponse(c))
	}
	writeJSON(w, http.StatusOK, res)
}
