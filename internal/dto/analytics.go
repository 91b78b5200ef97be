package dto

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type PaymentTotal struct {
	PaymentMethod string  `json:"payment_method"`
	Total         float64 `json:"total"`
}

// AnalyticsSummary partitions the same window total two ways: the sum of
// ByCategory totals and the sum of ByPayment totals both equal Total.
type AnalyticsSummary struct {
	Total      float64         `json:"total"`
	ByCategory []CategoryTotal `json:"by_category"`
	ByPayment  []PaymentTotal  `json:"by_payment"`
}
