// Package books implements the content-based book recommendation scoring and
// the catalog seed/cover plumbing around it.
package books

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahiti3636/finwise-ai/models"
)

const (
	candidateCap = 20
	resultCap    = 10
)

// Score blends rating, genre preference, financial relevance and popularity
// into a single recommendation score.
func Score(book *models.Book, p *models.Profile, prefs *models.ReadingPreference) float64 {
	score := book.Rating * 0.3
	if containsString(prefs.PreferredGenres, book.Genre) {
		score += 0.4
	}
	score += FinancialRelevance(book, p) * 0.3
	score += book.PopularityScore * 0.1
	return score
}

// FinancialRelevance sums independent bonuses tying the book to the user's
// financial situation: income tier vs genre, investment amount vs level, age
// vs genre.
func FinancialRelevance(book *models.Book, p *models.Profile) float64 {
	relevance := 0.0

	if (p.Income > 1000000 && book.Genre == "Business & Management") ||
		(p.Income < 500000 && book.Genre == "Self-Help / Personal Growth") {
		relevance += 0.5
	}

	if (p.InvestmentAmount > 500000 && book.InvestmentLevel == models.LevelAdvanced) ||
		(p.InvestmentAmount < 100000 && book.InvestmentLevel == models.LevelBeginner) {
		relevance += 0.3
	}

	if (p.Age < 30 && book.Genre == "Self-Help / Personal Growth") ||
		(p.Age > 50 && book.Genre == "Investment") {
		relevance += 0.2
	}

	return relevance
}

// Reason renders the human-readable justification. Matching clauses are
// joined in fixed order; a book matching nothing gets the generic reason.
func Reason(book *models.Book, p *models.Profile, prefs *models.ReadingPreference) string {
	reasons := []string{}

	if containsString(prefs.PreferredGenres, book.Genre) {
		reasons = append(reasons, fmt.Sprintf("Matches your preferred genre: %s", book.Genre))
	}

	if p.Income > 1000000 && book.Genre == "Business & Management" {
		reasons = append(reasons, "Perfect for high-income professionals")
	} else if p.Income < 500000 && book.Genre == "Self-Help / Personal Growth" {
		reasons = append(reasons, "Great for building financial foundation")
	}

	if book.Rating >= 4.0 {
		reasons = append(reasons, "Highly rated by readers")
	}

	if book.InvestmentLevel == models.LevelBeginner && p.InvestmentAmount < 100000 {
		reasons = append(reasons, "Perfect for beginners")
	} else if book.InvestmentLevel == models.LevelAdvanced && p.InvestmentAmount > 500000 {
		reasons = append(reasons, "Advanced strategies for experienced investors")
	}

	if len(reasons) == 0 {
		return "Recommended based on your profile"
	}
	return strings.Join(reasons, " • ")
}

// FinancialGenres derives the genres worth recommending from the financial
// profile. Order is not significant; callers treat the result as a set.
func FinancialGenres(p *models.Profile) []string {
	genres := []string{}

	switch {
	case p.Income > 1000000:
		genres = append(genres, "Business & Management", "Investment")
	case p.Income > 500000:
		genres = append(genres, "Business & Management", "Self-Help / Personal Growth")
	default:
		genres = append(genres, "Self-Help / Personal Growth", "Psychology")
	}

	if p.Age < 30 {
		genres = append(genres, "Self-Help / Personal Growth")
	} else if p.Age > 50 {
		genres = append(genres, "Investment", "Psychology")
	}

	if p.InvestmentAmount > 100000 {
		genres = append(genres, "Investment")
	}

	return dedupe(genres)
}

// RecommendationGenres unions the user's preferred genres with the
// profile-derived ones, preferred first, deduplicated.
func RecommendationGenres(p *models.Profile, prefs *models.ReadingPreference) []string {
	genres := append([]string{}, prefs.PreferredGenres...)
	genres = append(genres, FinancialGenres(p)...)
	return dedupe(genres)
}

// InvestmentLevels maps invested amount to the book levels appropriate for
// the user.
func InvestmentLevels(p *models.Profile) []string {
	switch {
	case p.InvestmentAmount > 500000:
		return []string{models.LevelAdvanced, models.LevelIntermediate}
	case p.InvestmentAmount > 100000:
		return []string{models.LevelIntermediate, models.LevelBeginner}
	default:
		return []string{models.LevelBeginner}
	}
}

// Rank scores a candidate set and returns the top recommendations. The
// candidate set is capped before scoring; ties keep candidate order.
func Rank(candidates []models.Book, p *models.Profile, prefs *models.ReadingPreference) []models.ScoredBook {
	if len(candidates) > candidateCap {
		candidates = candidates[:candidateCap]
	}

	scored := make([]models.ScoredBook, 0, len(candidates))
	for _, book := range candidates {
		scored = append(scored, models.ScoredBook{
			Book:   book,
			Score:  Score(&book, p, prefs),
			Reason: Reason(&book, p, prefs),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > resultCap {
		scored = scored[:resultCap]
	}
	return scored
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := []string{}
	for _, item := range list {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
