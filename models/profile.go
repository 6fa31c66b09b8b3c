package models

import (
	"fmt"
	"time"
)

// Profile is the per-user financial snapshot every recommendation is derived
// from. A row always exists for an authenticated user; it is created lazily
// with zero defaults on first access.
type Profile struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Income     float64 `json:"income"`
	Age        int     `json:"age"`
	Dependents int     `json:"dependents"`

	MonthlySavings   float64 `json:"monthly_savings"`
	TotalSavings     float64 `json:"total_savings"`
	InvestmentAmount float64 `json:"investment_amount"`
	SavingsGoal      float64 `json:"savings_goal"`

	Investments     string `json:"investments"`
	InvestmentTypes string `json:"investment_types"`

	EmergencyFund     float64 `json:"emergency_fund"`
	RetirementSavings float64 `json:"retirement_savings"`
	TaxDeductions     float64 `json:"tax_deductions"`

	Occupation    string `json:"occupation"`
	City          string `json:"city"`
	State         string `json:"state"`
	MaritalStatus string `json:"marital_status"`
	Education     string `json:"education"`
	BusinessType  string `json:"business_type"`
	PropertyOwned bool   `json:"property_owned"`
	VehicleOwned  bool   `json:"vehicle_owned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsComplete reports whether the profile carries enough data for the full
// tax-recommendation computation.
func (p *Profile) IsComplete() bool {
	return p.Income > 0 && p.Age > 0 && p.Name != "" && p.Email != ""
}

// ApplyUpdate copies allow-listed fields from a partial update payload onto
// the profile. Unknown keys are ignored; a known key with an incompatible
// value is a validation error.
func (p *Profile) ApplyUpdate(fields map[string]interface{}) error {
	for key, value := range fields {
		var err error
		switch key {
		case "name":
			err = setString(&p.Name, key, value)
		case "email":
			err = setString(&p.Email, key, value)
		case "phone":
			err = setString(&p.Phone, key, value)
		case "income":
			err = setFloat(&p.Income, key, value)
		case "age":
			err = setInt(&p.Age, key, value)
		case "dependents":
			err = setInt(&p.Dependents, key, value)
		case "monthly_savings":
			err = setFloat(&p.MonthlySavings, key, value)
		case "total_savings":
			err = setFloat(&p.TotalSavings, key, value)
		case "investment_amount":
			err = setFloat(&p.InvestmentAmount, key, value)
		case "savings_goal":
			err = setFloat(&p.SavingsGoal, key, value)
		case "investments":
			err = setString(&p.Investments, key, value)
		case "investment_types":
			err = setString(&p.InvestmentTypes, key, value)
		case "emergency_fund":
			err = setFloat(&p.EmergencyFund, key, value)
		case "retirement_savings":
			err = setFloat(&p.RetirementSavings, key, value)
		case "tax_deductions":
			err = setFloat(&p.TaxDeductions, key, value)
		case "occupation":
			err = setString(&p.Occupation, key, value)
		case "city":
			err = setString(&p.City, key, value)
		case "state":
			err = setString(&p.State, key, value)
		case "marital_status":
			err = setString(&p.MaritalStatus, key, value)
		case "education":
			err = setString(&p.Education, key, value)
		case "business_type":
			err = setString(&p.BusinessType, key, value)
		case "property_owned":
			err = setBool(&p.PropertyOwned, key, value)
		case "vehicle_owned":
			err = setBool(&p.VehicleOwned, key, value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, key string, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %s must be a string", key)
	}
	*dst = s
	return nil
}

func setFloat(dst *float64, key string, value interface{}) error {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return fmt.Errorf("field %s must not be negative", key)
		}
		*dst = v
	case int:
		if v < 0 {
			return fmt.Errorf("field %s must not be negative", key)
		}
		*dst = float64(v)
	default:
		return fmt.Errorf("field %s must be a number", key)
	}
	return nil
}

func setInt(dst *int, key string, value interface{}) error {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return fmt.Errorf("field %s must not be negative", key)
		}
		*dst = int(v)
	case int:
		if v < 0 {
			return fmt.Errorf("field %s must not be negative", key)
		}
		*dst = v
	default:
		return fmt.Errorf("field %s must be a number", key)
	}
	return nil
}

func setBool(dst *bool, key string, value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("field %s must be a boolean", key)
	}
	*dst = b
	return nil
}

// DashboardSummary is the denormalized per-user dashboard row. The
// recommendations column caches the comma-joined tax tips from the last
// dashboard load.
type DashboardSummary struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"user_id"`
	TotalSavings       float64   `json:"total_savings"`
	MonthlySavings     float64   `json:"monthly_savings"`
	SavingsGoal        float64   `json:"savings_goal"`
	ProgressPercentage float64   `json:"progress_percentage"`
	Recommendations    string    `json:"recommendations"`
	CreatedAt          time.Time `json:"created_at"`
}
