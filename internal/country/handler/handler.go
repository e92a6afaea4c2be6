package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"countryfx/internal/country"
	"countryfx/internal/domain"
)

type CountryService interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error)
	GetByName(ctx context.Context, name string) (*domain.Country, error)
	Delete(ctx context.Context, name string) error
	Status(ctx context.Context) (country.StatusView, error)
}

type RefreshRunner interface {
	Refresh(ctx context.Context) (domain.RefreshResult, error)
}

type QueryValidator interface {
	ValidateName(name string) error
	ValidateListQuery(region, currency, sort string) (domain.ListFilter, error)
}

type Handler struct {
	validator   QueryValidator
	service     CountryService
	refresher   RefreshRunner
	summaryPath string
}

func NewCountryHandler(validator QueryValidator, service CountryService, refresher RefreshRunner, summaryPath string) *Handler {
	return &Handler{validator: validator, service: service, refresher: refresher, summaryPath: summaryPath}
}

// CountryResponse keeps nullable fields as JSON null: a null estimated_gdp
// (unknown) is not the same thing as 0 (country without a currency).
type CountryResponse struct {
	Name            string    `json:"name" example:"Nigeria"`
	Capital         string    `json:"capital,omitempty" example:"Abuja"`
	Region          string    `json:"region,omitempty" example:"Africa"`
	Population      int64     `json:"population" example:"200000000"`
	CurrencyCode    *string   `json:"currency_code" example:"NGN"`
	ExchangeRate    *float64  `json:"exchange_rate" example:"1600"`
	EstimatedGDP    *float64  `json:"estimated_gdp" example:"250000000000"`
	FlagURL         string    `json:"flag_url,omitempty" example:"https://flagcdn.com/ng.svg"`
	LastRefreshedAt time.Time `json:"last_refreshed_at" example:"2025-01-02T15:04:05Z"`
}

func toCountryResponse(c domain.Country) CountryResponse {
	return CountryResponse{
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		ExchangeRate:    c.ExchangeRate,
		EstimatedGDP:    c.EstimatedGDP,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt,
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Source string `json:"source,omitempty"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
