package db

import (
	"database/sql"
	"fmt"

	"github.com/sahiti3636/finwise-ai/models"
)

const profileColumns = `
	id, user_id, name, email, phone,
	income, age, dependents,
	monthly_savings, total_savings, investment_amount, savings_goal,
	investments, investment_types,
	emergency_fund, retirement_savings, tax_deductions,
	occupation, city, state, marital_status, education, business_type,
	property_owned, vehicle_owned,
	created_at, updated_at
`

func scanProfile(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email, &p.Phone,
		&p.Income, &p.Age, &p.Dependents,
		&p.MonthlySavings, &p.TotalSavings, &p.InvestmentAmount, &p.SavingsGoal,
		&p.Investments, &p.InvestmentTypes,
		&p.EmergencyFund, &p.RetirementSavings, &p.TaxDeductions,
		&p.Occupation, &p.City, &p.State, &p.MaritalStatus, &p.Education, &p.BusinessType,
		&p.PropertyOwned, &p.VehicleOwned,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetOrCreateProfile returns the user's profile, creating a zero-valued row on
// first access.
func GetOrCreateProfile(userID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	p, err := scanProfile(DB.QueryRow(query, userID))
	if err == nil {
		return p, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("error fetching profile for user %s: %v", userID, err)
	}

	insert := `
		INSERT INTO profiles (user_id)
		VALUES ($1)
		RETURNING ` + profileColumns
	p, err = scanProfile(DB.QueryRow(insert, userID))
	if err != nil {
		return nil, fmt.Errorf("error creating profile for user %s: %v", userID, err)
	}
	return p, nil
}

// UpdateProfile persists every mutable profile field.
func UpdateProfile(p *models.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, email = $2, phone = $3,
			income = $4, age = $5, dependents = $6,
			monthly_savings = $7, total_savings = $8, investment_amount = $9, savings_goal = $10,
			investments = $11, investment_types = $12,
			emergency_fund = $13, retirement_savings = $14, tax_deductions = $15,
			occupation = $16, city = $17, state = $18, marital_status = $19,
			education = $20, business_type = $21,
			property_owned = $22, vehicle_owned = $23,
			updated_at = NOW()
		WHERE user_id = $24
	`
	_, err := DB.Exec(query,
		p.Name, p.Email, p.Phone,
		p.Income, p.Age, p.Dependents,
		p.MonthlySavings, p.TotalSavings, p.InvestmentAmount, p.SavingsGoal,
		p.Investments, p.InvestmentTypes,
		p.EmergencyFund, p.RetirementSavings, p.TaxDeductions,
		p.Occupation, p.City, p.State, p.MaritalStatus, p.Education, p.BusinessType,
		p.PropertyOwned, p.VehicleOwned,
		p.UserID)
	if err != nil {
		return fmt.Errorf("error updating profile for user %s: %v", p.UserID, err)
	}
	return nil
}

// GetOrCreateDashboardSummary returns the user's dashboard row, creating a
// zero-valued one on first access.
func GetOrCreateDashboardSummary(userID string) (*models.DashboardSummary, error) {
	query := `
		SELECT id, user_id, total_savings, monthly_savings, savings_goal,
			progress_percentage, recommendations, created_at
		FROM dashboard_summaries
		WHERE user_id = $1
	`
	s := &models.DashboardSummary{}
	err := DB.QueryRow(query, userID).Scan(
		&s.ID, &s.UserID, &s.TotalSavings, &s.MonthlySavings, &s.SavingsGoal,
		&s.ProgressPercentage, &s.Recommendations, &s.CreatedAt)
	if err == nil {
		return s, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("error fetching dashboard summary for user %s: %v", userID, err)
	}

	insert := `
		INSERT INTO dashboard_summaries (user_id)
		VALUES ($1)
		RETURNING id, user_id, total_savings, monthly_savings, savings_goal,
			progress_percentage, recommendations, created_at
	`
	err = DB.QueryRow(insert, userID).Scan(
		&s.ID, &s.UserID, &s.TotalSavings, &s.MonthlySavings, &s.SavingsGoal,
		&s.ProgressPercentage, &s.Recommendations, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating dashboard summary for user %s: %v", userID, err)
	}
	return s, nil
}

// UpdateDashboardSummary refreshes the denormalized dashboard row.
func UpdateDashboardSummary(s *models.DashboardSummary) error {
	query := `
		UPDATE dashboard_summaries
		SET total_savings = $1, monthly_savings = $2, savings_goal = $3,
			progress_percentage = $4, recommendations = $5
		WHERE user_id = $6
	`
	_, err := DB.Exec(query,
		s.TotalSavings, s.MonthlySavings, s.SavingsGoal,
		s.ProgressPercentage, s.Recommendations, s.UserID)
	if err != nil {
		return fmt.Errorf("error updating dashboard summary for user %s: %v", s.UserID, err)
	}
	return nil
}
