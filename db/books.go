package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/sahiti3636/finwise-ai/models"
)

const bookColumns = `
	id, title, author, genre, sub_genre, description, rating,
	price, pages, publication_year, isbn, cover_image_url, amazon_url,
	investment_level, financial_topics, difficulty_level,
	popularity_score, created_at, updated_at
`

type bookScanner interface {
	Scan(dest ...interface{}) error
}

func scanBook(row bookScanner) (*models.Book, error) {
	b := &models.Book{}
	var topics []byte
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.SubGenre, &b.Description, &b.Rating,
		&b.Price, &b.Pages, &b.PublicationYear, &b.ISBN, &b.CoverImageURL, &b.AmazonURL,
		&b.InvestmentLevel, &topics, &b.DifficultyLevel,
		&b.PopularityScore, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(topics) > 0 {
		if err := json.Unmarshal(topics, &b.FinancialTopics); err != nil {
			return nil, fmt.Errorf("error decoding financial topics for book %d: %v", b.ID, err)
		}
	}
	return b, nil
}

func collectBooks(rows *sql.Rows) ([]models.Book, error) {
	defer rows.Close()
	books := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning book: %v", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %v", err)
	}
	return books, nil
}

// BookFilter narrows the catalog listing. Zero-valued fields are ignored.
type BookFilter struct {
	Search          string
	Genre           string
	Difficulty      string
	InvestmentLevel string
}

// ListBooks returns catalog books matching the filter, best rated first.
func ListBooks(filter BookFilter) ([]models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books`
	conditions := []string{}
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}
	if filter.Genre != "" {
		args = append(args, filter.Genre)
		conditions = append(conditions, fmt.Sprintf("genre = $%d", len(args)))
	}
	if filter.Difficulty != "" {
		args = append(args, filter.Difficulty)
		conditions = append(conditions, fmt.Sprintf("difficulty_level = $%d", len(args)))
	}
	if filter.InvestmentLevel != "" {
		args = append(args, filter.InvestmentLevel)
		conditions = append(conditions, fmt.Sprintf("investment_level = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rating DESC, popularity_score DESC"

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %v", err)
	}
	return collectBooks(rows)
}

// BookFilters returns the distinct filter values present in the catalog.
func BookFilters() (genres, difficulties, investmentLevels []string, err error) {
	distinct := func(column string) ([]string, error) {
		query := fmt.Sprintf("SELECT DISTINCT %s FROM books WHERE %s <> '' ORDER BY %s", column, column, column)
		rows, err := DB.Query(query)
		if err != nil {
			return nil, fmt.Errorf("error listing distinct %s: %v", column, err)
		}
		defer rows.Close()
		values := []string{}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return nil, fmt.Errorf("error scanning %s: %v", column, err)
			}
			values = append(values, v)
		}
		return values, rows.Err()
	}

	if genres, err = distinct("genre"); err != nil {
		return nil, nil, nil, err
	}
	if difficulties, err = distinct("difficulty_level"); err != nil {
		return nil, nil, nil, err
	}
	if investmentLevels, err = distinct("investment_level"); err != nil {
		return nil, nil, nil, err
	}
	return genres, difficulties, investmentLevels, nil
}

// GetBook fetches one catalog book by id.
func GetBook(bookID int64) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(DB.QueryRow(query, bookID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching book %d: %v", bookID, err)
	}
	return b, nil
}

// SimilarBooks returns other books sharing the given book's genre.
func SimilarBooks(book *models.Book, limit int) ([]models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE genre = $1 AND id <> $2
		ORDER BY rating DESC, popularity_score DESC
		LIMIT $3
	`
	rows, err := DB.Query(query, book.Genre, book.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("error fetching similar books for %d: %v", book.ID, err)
	}
	return collectBooks(rows)
}

// candidateBooksQuery selects the recommendation pool: a book qualifies by
// matching either the genre set or the level set, as long as the user has
// not already completed it.
const candidateBooksQuery = `
	SELECT ` + bookColumns + `
	FROM books
	WHERE (genre = ANY($1) OR investment_level = ANY($2))
	  AND id NOT IN (
		SELECT book_id FROM reading_history
		WHERE user_id = $3 AND status = 'completed'
	  )
	ORDER BY rating DESC, popularity_score DESC
	LIMIT $4
`

// CandidateBooks returns the recommendation candidate pool: books in the given
// genres or levels the user has not already completed, best rated first,
// capped at limit.
func CandidateBooks(genres, levels []string, excludeUserID string, limit int) ([]models.Book, error) {
	rows, err := DB.Query(candidateBooksQuery, pq.Array(genres), pq.Array(levels), excludeUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("error fetching candidate books for user %s: %v", excludeUserID, err)
	}
	return collectBooks(rows)
}

// UpsertBook inserts a catalog book unless one with the same title and author
// already exists. It reports whether a row was created.
func UpsertBook(b *models.Book) (bool, error) {
	topics, err := json.Marshal(b.FinancialTopics)
	if err != nil {
		return false, fmt.Errorf("error encoding financial topics for %q: %v", b.Title, err)
	}
	query := `
		INSERT INTO books (
			title, author, genre, sub_genre, description, rating,
			price, pages, publication_year, isbn, cover_image_url, amazon_url,
			investment_level, financial_topics, difficulty_level, popularity_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (title, author) DO NOTHING
		RETURNING id
	`
	err = DB.QueryRow(query,
		b.Title, b.Author, b.Genre, b.SubGenre, b.Description, b.Rating,
		b.Price, b.Pages, b.PublicationYear, b.ISBN, b.CoverImageURL, b.AmazonURL,
		b.InvestmentLevel, topics, b.DifficultyLevel, b.PopularityScore).Scan(&b.ID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error inserting book %q: %v", b.Title, err)
	}
	return true, nil
}
