package llm

import "strings"

// suggestionSet pairs trigger keywords with a fixed follow-up list. Sets are
// checked in order; the first match wins.
type suggestionSet struct {
	keywords    []string
	suggestions []string
}

var suggestionSets = []suggestionSet{
	{
		keywords: []string{"investment"},
		suggestions: []string{
			"What's the best investment strategy for my age?",
			"How much should I invest monthly?",
			"What are the risks of this investment?",
			"Show me low-risk investment options",
		},
	},
	{
		keywords: []string{"saving", "budget"},
		suggestions: []string{
			"How much should I save each month?",
			"What's the best way to budget my income?",
			"How do I build an emergency fund?",
			"What are good savings goals?",
		},
	},
	{
		keywords: []string{"tax"},
		suggestions: []string{
			"What tax deductions can I claim?",
			"How can I reduce my tax bill?",
			"What are the best tax-saving investments?",
			"When should I file my taxes?",
		},
	},
	{
		keywords: []string{"debt", "loan"},
		suggestions: []string{
			"How do I pay off debt faster?",
			"What's the best debt payoff strategy?",
			"Should I consolidate my loans?",
			"How much debt is too much?",
		},
	},
	{
		keywords: []string{"retirement"},
		suggestions: []string{
			"How much should I save for retirement?",
			"What's the best retirement account?",
			"When should I start retirement planning?",
			"How do I calculate retirement needs?",
		},
	},
}

var defaultSuggestions = []string{
	"Tell me more about this",
	"How can I implement this?",
	"What are the risks?",
	"Show me alternatives",
}

// Suggestions selects follow-up prompts by keyword match on the user's
// message.
func Suggestions(message string) []string {
	lower := strings.ToLower(message)
	for _, set := range suggestionSets {
		for _, keyword := range set.keywords {
			if strings.Contains(lower, keyword) {
				return set.suggestions
			}
		}
	}
	return defaultSuggestions
}
