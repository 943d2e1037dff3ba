package request

type NegotiateBillingRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
}

type ApproveBillingRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}
