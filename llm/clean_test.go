package llm

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input gets apology",
			in:   "",
			want: "I'm sorry, I couldn't generate a response at this time. Please try again.",
		},
		{
			name: "trims surrounding whitespace",
			in:   "  Keep saving.  ",
			want: "Keep saving.",
		},
		{
			name: "collapses double newlines",
			in:   "First point.\n\nSecond point.",
			want: "First point.\nSecond point.",
		},
		{
			name: "drops trailing incomplete sentence",
			in:   "Hello world. This is unfinished",
			want: "Hello world.",
		},
		{
			name: "keeps text ending in question mark",
			in:   "Have you considered PPF?",
			want: "Have you considered PPF?",
		},
		{
			name: "keeps text ending in exclamation",
			in:   "Great progress!",
			want: "Great progress!",
		},
		{
			name: "single fragment without period survives",
			in:   "just a fragment",
			want: "just a fragment",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
