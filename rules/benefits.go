package rules

import "github.com/sahiti3636/finwise-ai/models"

// schemes is the static lookup of government schemes the eligibility rules
// can reference. Entries carry display data only; no external lookup.
var schemes = map[string]models.BenefitEntry{
	"PM-KISAN": {
		Name:              "PM-KISAN",
		Description:       "₹6,000/year income support for eligible farmers.",
		EligibilityReason: "Income below ₹12 lakh.",
		Link:              "https://pmkisan.gov.in",
		Amount:            "₹6,000/year",
		Category:          "Agriculture",
		EstimatedTime:     "15-30 days",
	},
	"Ayushman Bharat": {
		Name:              "Ayushman Bharat",
		Description:       "₹5 lakh health insurance for low-income families.",
		EligibilityReason: "Income below ₹5 lakh.",
		Link:              "https://pmjay.gov.in",
		Amount:            "₹5 lakh/year",
		Category:          "Health",
		EstimatedTime:     "Instant",
	},
	"Senior Citizen Savings Scheme (SCSS)": {
		Name:              "Senior Citizen Savings Scheme (SCSS)",
		Description:       "High interest savings for seniors with 8.2% interest rate.",
		EligibilityReason: "Age 60 or above.",
		Link:              "https://www.nsiindia.gov.in",
		Amount:            "8.2% interest",
		Category:          "Savings",
		EstimatedTime:     "7-15 days",
	},
	"Atal Pension Yojana (APY)": {
		Name:              "Atal Pension Yojana (APY)",
		Description:       "Guaranteed pension scheme for unorganized sector workers.",
		EligibilityReason: "Age between 18-40 years.",
		Link:              "https://npscra.nsdl.co.in",
		Amount:            "₹1,000-5,000/month",
		Category:          "Pension",
		EstimatedTime:     "15-30 days",
	},
	"Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)": {
		Name:              "Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)",
		Description:       "₹2 lakh life insurance for ₹330/year.",
		EligibilityReason: "Available to all savings account holders age 18-50.",
		Link:              "https://www.jansuraksha.gov.in",
		Amount:            "₹2 lakh coverage",
		Category:          "Insurance",
		EstimatedTime:     "Instant",
	},
	"Pradhan Mantri Suraksha Bima Yojana (PMSBY)": {
		Name:              "Pradhan Mantri Suraksha Bima Yojana (PMSBY)",
		Description:       "Accidental death and disability insurance for ₹12/year.",
		EligibilityReason: "Available to all savings account holders age 18-70.",
		Link:              "https://www.jansuraksha.gov.in",
		Amount:            "₹2 lakh coverage",
		Category:          "Insurance",
		EstimatedTime:     "Instant",
	},
	"Public Provident Fund (PPF)": {
		Name:              "Public Provident Fund (PPF)",
		Description:       "Long-term savings with tax benefits under 80C.",
		EligibilityReason: "Available to all Indian residents.",
		Link:              "https://www.nsiindia.gov.in",
		Amount:            "7.1% interest",
		Category:          "Savings",
		EstimatedTime:     "7-15 days",
	},
	"Sukanya Samriddhi Yojana": {
		Name:              "Sukanya Samriddhi Yojana",
		Description:       "Small savings scheme for girl child with attractive interest rates.",
		EligibilityReason: "Available for girl child below 10 years.",
		Link:              "https://www.nsiindia.gov.in",
		Amount:            "8.2% interest",
		Category:          "Savings",
		EstimatedTime:     "7-15 days",
	},
	"Pradhan Mantri Mudra Yojana": {
		Name:              "Pradhan Mantri Mudra Yojana",
		Description:       "Collateral-free loans for micro enterprises.",
		EligibilityReason: "For non-corporate, non-farm enterprises.",
		Link:              "https://mudra.org.in",
		Amount:            "Up to ₹10 lakh",
		Category:          "Business",
		EstimatedTime:     "30-45 days",
	},
	"Pradhan Mantri Awas Yojana (PMAY)": {
		Name:              "Pradhan Mantri Awas Yojana (PMAY)",
		Description:       "Housing assistance for economically weaker sections.",
		EligibilityReason: "EWS/LIG families without pucca house.",
		Link:              "https://pmaymis.gov.in",
		Amount:            "Up to ₹2.67 lakh",
		Category:          "Housing",
		EstimatedTime:     "60-90 days",
	},
}

// benefitRule names a scheme and the guard that makes it eligible. Rules run
// in declaration order: income, age, universal, investment, family, business,
// housing. The list is neither deduplicated nor ranked.
type benefitRule struct {
	scheme   string
	eligible func(*models.Profile) bool
}

var benefitRules = []benefitRule{
	{"PM-KISAN", func(p *models.Profile) bool { return p.Income < 1200000 }},
	{"Ayushman Bharat", func(p *models.Profile) bool { return p.Income < 500000 }},
	{"Senior Citizen Savings Scheme (SCSS)", func(p *models.Profile) bool { return p.Age >= 60 }},
	{"Atal Pension Yojana (APY)", func(p *models.Profile) bool { return p.Age >= 18 && p.Age <= 40 }},
	{"Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)", func(p *models.Profile) bool { return true }},
	{"Pradhan Mantri Suraksha Bima Yojana (PMSBY)", func(p *models.Profile) bool { return true }},
	{"Public Provident Fund (PPF)", func(p *models.Profile) bool { return p.InvestmentAmount < 150000 }},
	{"Sukanya Samriddhi Yojana", func(p *models.Profile) bool { return p.Dependents > 0 }},
	{"Pradhan Mantri Mudra Yojana", func(p *models.Profile) bool { return p.Income < 800000 }},
	{"Pradhan Mantri Awas Yojana (PMAY)", func(p *models.Profile) bool { return p.Income < 600000 }},
}

// EligibleBenefits returns the scheme entries whose guards hold, in fixed
// rule order.
func EligibleBenefits(p *models.Profile) []models.BenefitEntry {
	benefits := []models.BenefitEntry{}
	for _, rule := range benefitRules {
		if rule.eligible(p) {
			benefits = append(benefits, schemes[rule.scheme])
		}
	}
	return benefits
}
