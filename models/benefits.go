package models

// BenefitEntry is one government scheme a user may be eligible for. Amount is
// a display string because many schemes publish ranges or interest rates
// rather than a single figure.
type BenefitEntry struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	EligibilityReason string `json:"eligibility_reason"`
	Link              string `json:"link"`
	Amount            string `json:"amount"`
	Category          string `json:"category"`
	EstimatedTime     string `json:"estimatedTime"`
}
