package llm

import "testing"

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantFirst string
	}{
		{"investment keyword", "Tell me about investment options", "What's the best investment strategy for my age?"},
		{"saving keyword", "How do I start saving?", "How much should I save each month?"},
		{"budget keyword", "Help me budget better", "How much should I save each month?"},
		{"tax keyword", "Reduce my TAX bill", "What tax deductions can I claim?"},
		{"debt keyword", "I have debt problems", "How do I pay off debt faster?"},
		{"loan keyword", "Should I take a loan?", "How do I pay off debt faster?"},
		{"retirement keyword", "Planning for retirement", "How much should I save for retirement?"},
		{"no keyword", "What's the weather?", "Tell me more about this"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggestions(tt.message)
			if len(got) != 4 {
				t.Fatalf("expected 4 suggestions, got %d", len(got))
			}
			if got[0] != tt.wantFirst {
				t.Errorf("Suggestions(%q)[0] = %q, want %q", tt.message, got[0], tt.wantFirst)
			}
		})
	}
}

func TestSuggestionsInvestmentBeatsSaving(t *testing.T) {
	// "investment" is checked before "saving" when both appear.
	got := Suggestions("investment vs saving")
	if got[0] != "What's the best investment strategy for my age?" {
		t.Errorf("expected investment set to win, got %q", got[0])
	}
}
