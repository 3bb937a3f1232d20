package ratesapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL:        baseURL,
		Timeout:        5 * time.Second,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
	}, testLogger())
}

func TestFetchTable_Updated(t *testing.T) {
	var gotLicense, gotFingerprint string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLicense = r.Header.Get("X-RS-License")
		gotFingerprint = r.Header.Get("If-None-Match")
		assert.Equal(t, "/table/CA", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("CA,rate,data"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.FetchTable(context.Background(), "CA", "abc123", "my-license")

	require.NoError(t, err)
	assert.False(t, result.Unchanged)
	assert.Equal(t, "CA,rate,data", string(result.Body))
	assert.Equal(t, "my-license", gotLicense)
	assert.Equal(t, "abc123", gotFingerprint)
}

func TestFetchTable_EmptyFingerprintOmitsHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["If-None-Match"]
		assert.False(t, present)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchTable(context.Background(), "TX", "", "my-license")
	require.NoError(t, err)
}

func TestFetchTable_Unchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.FetchTable(context.Background(), "CA", "abc123", "my-license")

	require.NoError(t, err)
	assert.True(t, result.Unchanged)
	assert.Empty(t, result.Body)
}

func TestFetchTable_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.FetchTable(context.Background(), "CA", "", "revoked")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFetchTable_TransferErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchTable(context.Background(), "CA", "", "my-license")

	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, http.StatusBadGateway, transferErr.Status)
	assert.Equal(t, "CA", transferErr.RegionID)
}

func TestFetchTable_RetriesTransportErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Drop the first connection mid-response.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.FetchTable(context.Background(), "CA", "", "my-license")

	require.NoError(t, err)
	assert.Equal(t, "recovered", string(result.Body))
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchTable_TransferErrorAfterRetriesExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	client := newTestClient(srv.URL)
	_, err := client.FetchTable(context.Background(), "CA", "", "my-license")

	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}
