package models

// TaxRecommendation is a single tax-saving suggestion. Recommendations are
// produced fresh on every request and never persisted.
type TaxRecommendation struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	PotentialSaving float64 `json:"potential_saving"`
	Priority        string  `json:"priority"`
	Category        string  `json:"category"`
	Action          string  `json:"action"`
	Risk            string  `json:"risk"`
	Returns         string  `json:"returns"`
	LockIn          string  `json:"lock_in"`
}

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// TaxSummary aggregates a recommendation list.
type TaxSummary struct {
	TotalPotentialSavings float64 `json:"total_potential_savings"`
	OptimizationScore     int     `json:"optimization_score"`
	CurrentTaxSaved       float64 `json:"current_tax_saved"`
}

// TaxPlan is the full structured tax advice payload.
type TaxPlan struct {
	Recommendations []TaxRecommendation `json:"recommendations"`
	Summary         TaxSummary          `json:"summary"`
}

// TaxOption describes one instrument in the static deduction-section grid.
type TaxOption struct {
	Name            string  `json:"name"`
	Limit           float64 `json:"limit"`
	Invested        float64 `json:"invested"`
	Returns         string  `json:"returns"`
	Risk            string  `json:"risk"`
	LockIn          string  `json:"lockIn"`
	PotentialSaving float64 `json:"potential_saving"`
}

// TaxOptions groups instruments by deduction section (80C, 80D, 80CCD).
type TaxOptions map[string][]TaxOption
