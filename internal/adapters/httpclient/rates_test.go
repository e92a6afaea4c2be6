package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"countryfx/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRatesClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result":"success","rates":{"NGN":1600.0,"EUR":0.92}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewRatesClient(srv.Client(), srv.URL)

	rates, err := c.FetchRates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 2)
	require.InDelta(t, 1600.0, rates["NGN"], 1e-9)
	require.InDelta(t, 0.92, rates["EUR"], 1e-9)
}

func TestRatesClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewRatesClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)

	var srcErr *domain.SourceUnavailableError
	require.True(t, errors.As(err, &srcErr))
	require.Equal(t, domain.SourceRates, srcErr.Source)
	require.Contains(t, err.Error(), "unexpected status 503")
}

func TestRatesClient_MissingRatesField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewRatesClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no 'rates' field")
}

func TestRatesClient_NullRatesField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result":"success","rates":null}`))
	}))
	t.Cleanup(srv.Close)

	c := NewRatesClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)

	var srcErr *domain.SourceUnavailableError
	require.True(t, errors.As(err, &srcErr))
	require.Equal(t, domain.SourceRates, srcErr.Source)
	require.Contains(t, err.Error(), "no 'rates' field")
}

func TestRatesClient_RatesFieldNotAMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"rates":[1600.0,0.92]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewRatesClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "'rates' field is not a mapping")
}

func TestRatesClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewRatesClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)

	var srcErr *domain.SourceUnavailableError
	require.True(t, errors.As(err, &srcErr))
	require.Equal(t, domain.SourceRates, srcErr.Source)
	require.Contains(t, err.Error(), "failed to decode response")
}
