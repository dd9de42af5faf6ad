// Package webpay implements the Transbank Webpay Plus REST API client.
package webpay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
)

const (
	transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

	headerAPIKeyID     = "Tbk-Api-Key-Id"
	headerAPIKeySecret = "Tbk-Api-Key-Secret"

	defaultTimeout = 15 * time.Second
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	commerceCode string
	apiKey       string
	returnURL    string
	logger       *slog.Logger
}

// NewClient is the constructor for the Webpay Plus REST client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Webpay == nil || cfg.Webpay.BaseURL == "" {
		return nil, errors.New("webpay configuration must be provided")
	}

	return &client{
		httpClient:   &http.Client{Timeout: defaultTimeout},
		baseURL:      cfg.Webpay.BaseURL,
		commerceCode: cfg.Webpay.CommerceCode,
		apiKey:       cfg.Webpay.APIKey,
		returnURL:    cfg.Webpay.ReturnURL,
		logger:       logger,
	}, nil
}

type createRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int    `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type createResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type commitResponse struct {
	Status       string `json:"status"`
	ResponseCode int    `json:"response_code"`
	BuyOrder     string `json:"buy_order"`
	Amount       int    `json:"amount"`
}

// CreateTransaction registers the payment with Webpay and returns the token
// plus the payment form URL.
func (c *client) CreateTransaction(ctx context.Context, buyOrder, sessionID string, amount int) (*service.PaymentTransaction, error) {
	body := createRequest{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    amount,
		ReturnURL: c.returnURL,
	}

	var resp createResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+transactionsPath, body, &resp); err != nil {
		return nil, errors.Wrap(err, "webpay create transaction")
	}
	if resp.Token == "" || resp.URL == "" {
		return nil, errors.New("webpay create transaction: empty token or url in response")
	}

	c.logger.Info("webpay transaction created",
		slog.String("buyOrder", buyOrder),
		slog.Int("amount", amount))

	return &service.PaymentTransaction{Token: resp.Token, URL: resp.URL}, nil
}

// CommitTransaction confirms the transaction identified by token.
func (c *client) CommitTransaction(ctx context.Context, token string) (*service.PaymentResult, error) {
	var resp commitResponse
	if err := c.do(ctx, http.MethodPut, c.baseURL+transactionsPath+"/"+token, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "webpay commit transaction")
	}

	c.logger.Info("webpay transaction committed",
		slog.String("buyOrder", resp.BuyOrder),
		slog.String("status", resp.Status),
		slog.Int("responseCode", resp.ResponseCode))

	return &service.PaymentResult{
		Status:       resp.Status,
		ResponseCode: resp.ResponseCode,
		BuyOrder:     resp.BuyOrder,
		Amount:       resp.Amount,
	}, nil
}

func (c *client) do(ctx context.Context, method, url string, reqBody, respBody any) error {
	var payload io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKeyID, c.commerceCode)
	req.Header.Set(headerAPIKeySecret, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return errors.Wrap(err, "decode response body")
	}

	return nil
}
