package db

import (
	"strings"
	"testing"
)

func TestCandidateBooksQueryUnionsGenresAndLevels(t *testing.T) {
	// A book qualifies by matching either set; narrowing to the intersection
	// can empty the pool for users whose preferred genres carry no books at
	// their level.
	if !strings.Contains(candidateBooksQuery, "genre = ANY($1) OR investment_level = ANY($2)") {
		t.Errorf("candidate pool must match genre or level, got query:\n%s", candidateBooksQuery)
	}
}

func TestCandidateBooksQueryExcludesCompleted(t *testing.T) {
	if !strings.Contains(candidateBooksQuery, "status = 'completed'") {
		t.Errorf("candidate pool must exclude completed books, got query:\n%s", candidateBooksQuery)
	}
}
