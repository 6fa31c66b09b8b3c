package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/sahiti3636/finwise-ai/models"
)

const historyColumns = `
	h.id, h.user_id, h.book_id, h.status, h.user_rating, h.user_review,
	h.pages_read, h.completion_percentage, h.time_spent_reading,
	h.last_read_date, h.interaction_score, h.created_at, h.updated_at
`

func collectHistory(rows *sql.Rows) ([]models.ReadingHistory, error) {
	defer rows.Close()
	entries := []models.ReadingHistory{}
	for rows.Next() {
		h := models.ReadingHistory{Book: &models.Book{}}
		var review sql.NullString
		var topics []byte
		b := h.Book
		err := rows.Scan(
			&h.ID, &h.UserID, &h.BookID, &h.Status, &h.UserRating, &review,
			&h.PagesRead, &h.CompletionPercentage, &h.TimeSpentReading,
			&h.LastReadDate, &h.InteractionScore, &h.CreatedAt, &h.UpdatedAt,
			&b.ID, &b.Title, &b.Author, &b.Genre, &b.SubGenre, &b.Description, &b.Rating,
			&b.Price, &b.Pages, &b.PublicationYear, &b.ISBN, &b.CoverImageURL, &b.AmazonURL,
			&b.InvestmentLevel, &topics, &b.DifficultyLevel,
			&b.PopularityScore, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning reading history: %v", err)
		}
		h.UserReview = review.String
		if len(topics) > 0 {
			if err := json.Unmarshal(topics, &b.FinancialTopics); err != nil {
				return nil, fmt.Errorf("error decoding financial topics for book %d: %v", b.ID, err)
			}
		}
		entries = append(entries, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reading history: %v", err)
	}
	return entries, nil
}

const historyJoinQuery = `
	SELECT ` + historyColumns + `, ` + joinedBookColumns + `
	FROM reading_history h
	JOIN books b ON b.id = h.book_id
	WHERE h.user_id = $1
	ORDER BY h.updated_at DESC
`

const joinedBookColumns = `
	b.id, b.title, b.author, b.genre, b.sub_genre, b.description, b.rating,
	b.price, b.pages, b.publication_year, b.isbn, b.cover_image_url, b.amazon_url,
	b.investment_level, b.financial_topics, b.difficulty_level,
	b.popularity_score, b.created_at, b.updated_at
`

// ListReadingHistory returns all of a user's reading history, most recently
// updated first, with the book joined in.
func ListReadingHistory(userID string) ([]models.ReadingHistory, error) {
	rows, err := DB.Query(historyJoinQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing reading history for user %s: %v", userID, err)
	}
	return collectHistory(rows)
}

// RecentReadingHistory returns the user's most recently updated entries.
func RecentReadingHistory(userID string, limit int) ([]models.ReadingHistory, error) {
	rows, err := DB.Query(historyJoinQuery+" LIMIT $2", userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent reading history for user %s: %v", userID, err)
	}
	return collectHistory(rows)
}

// GetReadingHistory returns the user's entry for one book, or ErrNotFound.
func GetReadingHistory(userID string, bookID int64) (*models.ReadingHistory, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM reading_history h
		WHERE h.user_id = $1 AND h.book_id = $2
	`
	h := &models.ReadingHistory{}
	var review sql.NullString
	err := DB.QueryRow(query, userID, bookID).Scan(
		&h.ID, &h.UserID, &h.BookID, &h.Status, &h.UserRating, &review,
		&h.PagesRead, &h.CompletionPercentage, &h.TimeSpentReading,
		&h.LastReadDate, &h.InteractionScore, &h.CreatedAt, &h.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching reading history for user %s book %d: %v", userID, bookID, err)
	}
	h.UserReview = review.String
	return h, nil
}

// UpsertReadingHistory creates or updates the single (user, book) entry.
func UpsertReadingHistory(h *models.ReadingHistory) error {
	query := `
		INSERT INTO reading_history (
			user_id, book_id, status, user_rating, user_review,
			pages_read, completion_percentage, time_spent_reading,
			last_read_date, interaction_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, book_id) DO UPDATE SET
			status = EXCLUDED.status,
			user_rating = EXCLUDED.user_rating,
			user_review = EXCLUDED.user_review,
			pages_read = EXCLUDED.pages_read,
			completion_percentage = EXCLUDED.completion_percentage,
			time_spent_reading = EXCLUDED.time_spent_reading,
			last_read_date = EXCLUDED.last_read_date,
			interaction_score = EXCLUDED.interaction_score,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := DB.QueryRow(query,
		h.UserID, h.BookID, h.Status, h.UserRating, h.UserReview,
		h.PagesRead, h.CompletionPercentage, h.TimeSpentReading,
		h.LastReadDate, h.InteractionScore).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error saving reading history for user %s book %d: %v", h.UserID, h.BookID, err)
	}
	return nil
}

// ReadingStatsForUser aggregates the user's history into dashboard counters.
func ReadingStatsForUser(userID string) (*models.ReadingStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'currently_reading'),
			COUNT(*) FILTER (WHERE status = 'want_to_read'),
			COALESCE(AVG(user_rating) FILTER (WHERE user_rating IS NOT NULL), 0)
		FROM reading_history
		WHERE user_id = $1
	`
	stats := &models.ReadingStats{}
	err := DB.QueryRow(query, userID).Scan(
		&stats.TotalBooks, &stats.CompletedBooks, &stats.CurrentlyReading,
		&stats.WantToRead, &stats.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("error computing reading stats for user %s: %v", userID, err)
	}
	if stats.TotalBooks > 0 {
		stats.CompletionRate = float64(stats.CompletedBooks) / float64(stats.TotalBooks) * 100
	}
	return stats, nil
}

// GetOrCreateReadingPreference returns the user's library preferences,
// creating a default row on first access.
func GetOrCreateReadingPreference(userID string) (*models.ReadingPreference, error) {
	query := `
		SELECT id, user_id, preferred_genres, preferred_authors, preferred_topics,
			preferred_difficulty, preferred_investment_level,
			books_per_month, reading_goal, created_at, updated_at
		FROM reading_preferences
		WHERE user_id = $1
	`
	pref := &models.ReadingPreference{}
	scan := func(row *sql.Row) error {
		return row.Scan(
			&pref.ID, &pref.UserID,
			pq.Array(&pref.PreferredGenres), pq.Array(&pref.PreferredAuthors), pq.Array(&pref.PreferredTopics),
			&pref.PreferredDifficulty, &pref.PreferredInvestmentLevel,
			&pref.BooksPerMonth, &pref.ReadingGoal, &pref.CreatedAt, &pref.UpdatedAt)
	}
	err := scan(DB.QueryRow(query, userID))
	if err == nil {
		return pref, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("error fetching reading preferences for user %s: %v", userID, err)
	}

	insert := `
		INSERT INTO reading_preferences (user_id)
		VALUES ($1)
		RETURNING id, user_id, preferred_genres, preferred_authors, preferred_topics,
			preferred_difficulty, preferred_investment_level,
			books_per_month, reading_goal, created_at, updated_at
	`
	if err := scan(DB.QueryRow(insert, userID)); err != nil {
		return nil, fmt.Errorf("error creating reading preferences for user %s: %v", userID, err)
	}
	return pref, nil
}

// UpdateReadingPreference persists the user's library preferences.
func UpdateReadingPreference(pref *models.ReadingPreference) error {
	query := `
		UPDATE reading_preferences
		SET preferred_genres = $1, preferred_authors = $2, preferred_topics = $3,
			preferred_difficulty = $4, preferred_investment_level = $5,
			books_per_month = $6, reading_goal = $7, updated_at = NOW()
		WHERE user_id = $8
	`
	_, err := DB.Exec(query,
		pq.Array(pref.PreferredGenres), pq.Array(pref.PreferredAuthors), pq.Array(pref.PreferredTopics),
		pref.PreferredDifficulty, pref.PreferredInvestmentLevel,
		pref.BooksPerMonth, pref.ReadingGoal, pref.UserID)
	if err != nil {
		return fmt.Errorf("error updating reading preferences for user %s: %v", pref.UserID, err)
	}
	return nil
}
