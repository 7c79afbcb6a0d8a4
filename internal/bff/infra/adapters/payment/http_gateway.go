package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
	"github.com/jcmexdev/payments-bff/internal/bff/core/ports"
	"github.com/jcmexdev/payments-bff/internal/pkg/interceptors"
)

var _ ports.PaymentGateway = (*HTTPGateway)(nil)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 1 << 20

type chargeRequest struct {
	CustomerID string `json:"customerId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

type chargeResponse struct {
	Status   string `json:"status"`
	ChargeID string `json:"chargeId"`
}

// HTTPGateway charges through POST {baseURL}/charges with a JSON body.
type HTTPGateway struct {
	client     *http.Client
	chargesURL string
}

// NewHTTPGateway validates baseURL and returns a gateway using client, or a
// client with a 10s timeout when client is nil.
func NewHTTPGateway(baseURL string, client *http.Client) (*HTTPGateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("payment: parse base url %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("payment: base url %q must be an absolute http(s) url", baseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPGateway{
		client:     client,
		chargesURL: strings.TrimRight(baseURL, "/") + "/charges",
	}, nil
}

func (g *HTTPGateway) Name() string { return "http" }

func (g *HTTPGateway) Charge(ctx context.Context, cmd entity.ChargeCommand) entity.ChargeOutcome {
	body, err := json.Marshal(chargeRequest{
		CustomerID: cmd.CustomerID,
		Amount:     cmd.Amount,
		Currency:   cmd.Currency,
	})
	if err != nil {
		return entity.Failure(entity.ErrorKindTransportFault, fmt.Sprintf("encode charge: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.chargesURL, bytes.NewReader(body))
	if err != nil {
		return entity.Failure(entity.ErrorKindTransportFault, fmt.Sprintf("build charge request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := interceptors.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return entity.Failure(entity.ErrorKindTransportFault, fmt.Sprintf("post charge: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused by the next attempt.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return entity.Failure(entity.ErrorKindUpstreamError, fmt.Sprintf("payment service returned HTTP %d", resp.StatusCode))
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return entity.Failure(entity.ErrorKindTransportFault, fmt.Sprintf("read charge response: %v", err))
	}

	var out chargeResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return entity.Failure(entity.ErrorKindTransportFault, fmt.Sprintf("decode charge response: %v", err))
	}
	if out.Status == "" {
		return entity.Failure(entity.ErrorKindTransportFault, "charge response has no status")
	}
	return entity.Success(out.Status)
}
