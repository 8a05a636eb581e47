package models

// ErrorResponse is the error body returned to HTTP clients. It never carries
// provider response bodies or internal error text.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ExchangeSummary reports recent exchanges and totals per outcome.
type ExchangeSummary struct {
	Recent []ExchangeRecord          `json:"recent"`
	Totals map[ExchangeOutcome]int64 `json:"totals"`
}
