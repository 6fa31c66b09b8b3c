package advisor

import (
	"fmt"
	"strings"

	"github.com/sahiti3636/finwise-ai/llm"
	"github.com/sahiti3636/finwise-ai/models"
)

const fallbackConfidence = 0.7

// fallbackChat builds a deterministic canned reply keyed on the message's
// topic, interpolating profile fields. Topics are checked in fixed order;
// anything unmatched gets the generic reply.
func fallbackChat(message string, p *models.Profile) *models.ChatReply {
	lower := strings.ToLower(message)
	income := models.FormatINR(p.Income)

	var response string
	switch {
	case strings.Contains(lower, "investment"):
		response = fmt.Sprintf("Based on your %s income and age %d, I recommend a diversified portfolio: 70%% stocks (index funds like NIFTY 50), 20%% bonds (government securities), and 10%% cash. With %d dependents, also consider a Sukanya Samriddhi Yojana for girls or PPF for general savings. Aim to invest 15-20%% of your income monthly, prioritizing your EPF up to the match, then maxing out an NPS or mutual funds.",
			income, p.Age, p.Dependents)
	case strings.Contains(lower, "saving") || strings.Contains(lower, "budget"):
		response = fmt.Sprintf("With your %s income, follow the 50/30/20 rule: 50%% for needs, 30%% for wants, 20%% for savings. Build an emergency fund of 3-6 months of expenses first. Then focus on retirement savings. Consider automating transfers to make saving easier and more consistent.",
			income)
	case strings.Contains(lower, "tax"):
		response = fmt.Sprintf("For tax optimization with your %s income, maximize your EPF contributions (₹1.5 lakh limit), use ELSS mutual funds for 80C benefits, and consider NPS for additional deductions. With %d dependents, you may qualify for child tax benefits. These strategies could save you %s annually in taxes.",
			income, p.Dependents, models.FormatINR(p.Income/12*0.1))
	case strings.Contains(lower, "debt") || strings.Contains(lower, "loan"):
		response = fmt.Sprintf("With your %s income, prioritize high-interest debt first (credit cards typically 15-25%% APR). Consider the debt avalanche method: pay minimums on all debts, then put extra money toward the highest interest rate debt. Once high-interest debt is cleared, focus on building savings and investments.",
			income)
	case strings.Contains(lower, "retirement"):
		response = fmt.Sprintf("At age %d, you should aim to save 15-20%% of your %s income for retirement. Start with your EPF up to the employer match, then max out an NPS (₹2 lakh limit). Consider a PPF for tax-free withdrawals in retirement. With %d dependents, also plan for college costs with a Sukanya Samriddhi Yojana.",
			p.Age, income, p.Dependents)
	default:
		response = fmt.Sprintf("I understand you're asking about '%s'. Based on your profile (%s income, age %d, %d dependents), I can provide personalized financial advice. For more specific guidance, please ask about investments, savings, taxes, debt, or retirement planning.",
			message, income, p.Age, p.Dependents)
	}

	return &models.ChatReply{
		Response:    response,
		Suggestions: llm.Suggestions(message),
		Confidence:  fallbackConfidence,
	}
}
