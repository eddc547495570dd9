// Package paymentgateway simulates the external payment provider. A real
// deployment would swap this client for one that talks to the provider's
// API; the contract consumed by the payment use case stays the same.
package paymentgateway

import (
	"context"
	"time"
)

// Logger is the logging contract of the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Client simulates charging the operator. Each charge takes a fixed
// processing delay and then settles; once started it runs to completion,
// there is no cancellation.
type Client struct {
	processingDelay time.Duration
	log             Logger
}

func NewClient(processingDelay time.Duration, log Logger) *Client {
	return &Client{
		processingDelay: processingDelay,
		log:             log,
	}
}

// Charge processes a single payment attempt.
func (c *Client) Charge(_ context.Context, req *ChargeRequest) (*ChargeResult, error) {
	if req.AmountRON <= 0 {
		return nil, ErrInvalidAmount
	}

	c.log.Info("Charge: processing payment of %d RON for session=%s", req.AmountRON, req.SessionID)
	time.Sleep(c.processingDelay)

	if req.SimulateFailure {
		c.log.Warn("Charge: payment declined for session=%s", req.SessionID)
		return &ChargeResult{
			Success: false,
			Message: "payment was declined by the gateway",
		}, nil
	}

	c.log.Info("Charge: payment accepted for session=%s", req.SessionID)
	return &ChargeResult{
		Success: true,
		Message: "payment accepted",
	}, nil
}
