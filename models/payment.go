package models

// PaymentIntentRequest is the body sent to the backend to obtain a
// payment handle for the wizard total.
type PaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

// PaymentIntentResponse carries the opaque handle the processor form
// is bound to.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// Payment outcome statuses as seen by the wizard.
const (
	PaymentSucceeded  = "succeeded"
	PaymentProcessing = "processing"
)

// PaymentResult is the processor's answer to a confirm attempt.
type PaymentResult struct {
	IntentID string `json:"intentId"`
	Status   string `json:"status"`
}
