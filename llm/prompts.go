package llm

import (
	"fmt"

	"github.com/sahiti3636/finwise-ai/models"
)

func chatPrompt(message string, p *models.Profile) string {
	return fmt.Sprintf(`You are an expert financial advisor with 20+ years of experience. You provide clear, actionable financial advice.

User Profile:
- Income: %s per year
- Age: %d years old
- Investment Amount: %s
- Dependents: %d
- Occupation: %s
- Location: %s

User Question: %s

Provide helpful, specific financial advice that:
1. Addresses their specific question
2. Considers their financial profile
3. Gives actionable advice
4. Is easy to understand
5. Includes relevant examples or numbers when appropriate

Keep your response concise but comprehensive (2-4 sentences). Focus on Indian financial context and products.`,
		models.FormatINR(p.Income), p.Age, models.FormatINR(p.InvestmentAmount),
		p.Dependents, p.Occupation, p.City, message)
}

func taxPrompt(p *models.Profile) string {
	return fmt.Sprintf(`As a tax expert specializing in Indian tax laws, provide specific tax savings recommendations for:

Profile:
- Income: %s per year
- Age: %d years old
- Dependents: %d
- Current Investments: %s
- Occupation: %s
- Marital Status: %s

Provide 3-5 specific tax-saving strategies with:
1. Strategy name and category (e.g., Section 80C, 80D, etc.)
2. How much they can save in rupees
3. Implementation steps
4. Priority level (High/Medium/Low)

Focus on Indian tax laws and products like:
- ELSS mutual funds
- PPF (Public Provident Fund)
- NPS (National Pension System)
- Health insurance premiums
- Home loan interest
- Education loan interest

Format as structured recommendations with estimated savings amounts in Indian Rupees.`,
		models.FormatINR(p.Income), p.Age, p.Dependents,
		models.FormatINR(p.InvestmentAmount), p.Occupation, p.MaritalStatus)
}

func benefitsPrompt(p *models.Profile) string {
	return fmt.Sprintf(`As a government benefits expert specializing in Indian government schemes, recommend available programs for:

Profile:
- Income: %s per year
- Age: %d years old
- Occupation: %s
- Location: %s, %s
- Dependents: %d
- Education: %s

Provide 3-5 specific Indian government benefits with:
1. Program name and category
2. Eligibility criteria
3. Estimated benefit amount in rupees
4. Application process
5. Timeline for approval

Focus on Indian government schemes like:
- PM-KISAN
- Ayushman Bharat
- PMAY (Pradhan Mantri Awas Yojana)
- Mudra Loan
- PMJJBY (Pradhan Mantri Jeevan Jyoti Bima Yojana)
- PMSBY (Pradhan Mantri Suraksha Bima Yojana)
- Atal Pension Yojana
- Sukanya Samriddhi Yojana

Recommend programs they likely qualify for based on their profile.`,
		models.FormatINR(p.Income), p.Age, p.Occupation, p.City, p.State,
		p.Dependents, p.Education)
}
