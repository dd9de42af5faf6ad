package service

import "context"

// PaymentTransaction is the gateway's answer to a transaction create call.
type PaymentTransaction struct {
	Token string // Gateway token identifying the transaction.
	URL   string // Payment form URL the buyer is redirected to.
}

// PaymentResult is the gateway's answer to a commit call.
type PaymentResult struct {
	Status       string // e.g. "AUTHORIZED", "FAILED".
	ResponseCode int    // 0 means approved.
	BuyOrder     string
	Amount       int
}

// Authorized reports whether the payment was approved by the issuer.
func (r *PaymentResult) Authorized() bool {
	return r.Status == "AUTHORIZED" && r.ResponseCode == 0
}

// PaymentGateway abstracts the Webpay Plus card payment flow.
type PaymentGateway interface {
	// CreateTransaction registers a payment of amount for buyOrder and
	// returns the token plus the form URL to send the buyer to.
	CreateTransaction(ctx context.Context, buyOrder, sessionID string, amount int) (*PaymentTransaction, error)

	// CommitTransaction confirms a transaction after the buyer returns from
	// the payment form.
	CommitTransaction(ctx context.Context, token string) (*PaymentResult, error)
}
