package entity

type PurchaseRequest struct {
	CustomerID string
	ProductID  string
	Quantity   int64
	Currency   string
}

// ChargeCommand is the transport-neutral charge sent upstream.
// Amount is expressed in the currency's minor unit.
type ChargeCommand struct {
	CustomerID string
	Amount     int64
	Currency   string
}

type PaymentResult struct {
	Status string `json:"status"`
}
