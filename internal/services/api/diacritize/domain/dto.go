// Package domain holds DTOs for diacritize http and service contracts
package domain

// NominalConfidence is reported with every successful reply
// no scoring is done; the value is a fixed nominal figure
const NominalConfidence = 0.9

// DiacritizeInput is the request body
// Text is a pointer so an empty string stays distinguishable from a missing key
type DiacritizeInput struct {
	Text *string `json:"text" validate:"required" example:"مرحبا كيف حالك"`
}

// Result is what the service produces for one call
type Result struct {
	Text       string
	Confidence float64
}

// Reply is the success body; failures use the shared flat failure body
type Reply struct {
	Success    bool    `json:"success"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Service    string  `json:"service"`
}

// NewReply builds the success body for res
func NewReply(res Result, service string) Reply {
	return Reply{
		Success:    true,
		Text:       res.Text,
		Confidence: res.Confidence,
		Service:    service,
	}
}
