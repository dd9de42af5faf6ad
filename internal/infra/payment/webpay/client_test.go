package webpay

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebvsnk/Base-E-commerce/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *client {
	t.Helper()

	cfg := &config.Config{
		Webpay: &config.WebpayConfig{
			BaseURL:      baseURL,
			CommerceCode: "597055555532",
			APIKey:       "integration-api-key",
			ReturnURL:    "http://localhost:4000/api/webpay/commit",
		},
	}

	gateway, err := NewClient(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return gateway.(*client)
}

func TestClient_CreateTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, transactionsPath, r.URL.Path)
		assert.Equal(t, "597055555532", r.Header.Get("Tbk-Api-Key-Id"))
		assert.Equal(t, "integration-api-key", r.Header.Get("Tbk-Api-Key-Secret"))

		var req createRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "order-1234", req.BuyOrder)
		assert.Equal(t, 25990, req.Amount)
		assert.Equal(t, "http://localhost:4000/api/webpay/commit", req.ReturnURL)

		json.NewEncoder(w).Encode(createResponse{
			Token: "01ab23cd45ef",
			URL:   "https://webpay3gint.transbank.cl/webpayserver/initTransaction",
		})
	}))
	defer server.Close()

	webpayClient := newTestClient(t, server.URL)

	tx, err := webpayClient.CreateTransaction(context.Background(), "order-1234", "session-1", 25990)
	require.NoError(t, err)
	assert.Equal(t, "01ab23cd45ef", tx.Token)
	assert.Contains(t, tx.URL, "initTransaction")
}

func TestClient_CommitTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, transactionsPath+"/01ab23cd45ef", r.URL.Path)

		json.NewEncoder(w).Encode(commitResponse{
			Status:       "AUTHORIZED",
			ResponseCode: 0,
			BuyOrder:     "order-1234",
			Amount:       25990,
		})
	}))
	defer server.Close()

	webpayClient := newTestClient(t, server.URL)

	result, err := webpayClient.CommitTransaction(context.Background(), "01ab23cd45ef")
	require.NoError(t, err)
	assert.True(t, result.Authorized())
	assert.Equal(t, "order-1234", result.BuyOrder)
	assert.Equal(t, 25990, result.Amount)
}

func TestClient_CommitTransaction_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(commitResponse{
			Status:       "FAILED",
			ResponseCode: -1,
			BuyOrder:     "order-1234",
			Amount:       25990,
		})
	}))
	defer server.Close()

	webpayClient := newTestClient(t, server.URL)

	result, err := webpayClient.CommitTransaction(context.Background(), "01ab23cd45ef")
	require.NoError(t, err)
	assert.False(t, result.Authorized())
}

func TestClient_CreateTransaction_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_message":"Invalid value for parameter: amount"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	webpayClient := newTestClient(t, server.URL)

	_, err := webpayClient.CreateTransaction(context.Background(), "order-1234", "session-1", -1)
	assert.Error(t, err)
}

func TestNewClient_MissingConfig(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
