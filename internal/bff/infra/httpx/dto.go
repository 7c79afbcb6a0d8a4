package httpx

type CreatePaymentRequest struct {
	CustomerID string `json:"customerId"`
	ProductID  string `json:"productId"`
	Quantity   int64  `json:"quantity"`
	Currency   string `json:"currency"`
}

// PaymentResponse is the only body shape the BFF ever answers with.
type PaymentResponse struct {
	Status string `json:"status"`
}
