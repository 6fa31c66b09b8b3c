package models

import "time"

// Book is a catalog record in the wisdom library. Records are created by the
// one-time seed routine and immutable afterwards except for rating and
// popularity edits.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           string  `json:"genre"`
	SubGenre        string  `json:"sub_genre"`
	Description     string  `json:"description"`
	Rating          float64 `json:"rating"`
	Price           float64 `json:"price"`
	Pages           int     `json:"pages"`
	PublicationYear int     `json:"publication_year"`
	ISBN            string  `json:"isbn"`
	CoverImageURL   string  `json:"cover_image_url"`
	AmazonURL       string  `json:"amazon_url"`

	InvestmentLevel string   `json:"investment_level"`
	FinancialTopics []string `json:"financial_topics"`
	DifficultyLevel string   `json:"difficulty_level"`

	// Placeholder for a future similarity model; never populated.
	EmbeddingVector string  `json:"-"`
	PopularityScore float64 `json:"popularity_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Investment levels and difficulty levels share the same scale.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// ScoredBook is an ephemeral ranked recommendation; never persisted.
type ScoredBook struct {
	Book   Book    `json:"book"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// ReadingPreference holds a user's library preferences. Genre/author/topic
// lists are sets; order is irrelevant.
type ReadingPreference struct {
	ID               int64    `json:"id"`
	UserID           string   `json:"user_id"`
	PreferredGenres  []string `json:"preferred_genres"`
	PreferredAuthors []string `json:"preferred_authors"`
	PreferredTopics  []string `json:"preferred_topics"`

	PreferredDifficulty      string `json:"preferred_difficulty"`
	PreferredInvestmentLevel string `json:"preferred_investment_level"`

	BooksPerMonth int `json:"books_per_month"`
	ReadingGoal   int `json:"reading_goal"`

	// Placeholder for a future preference embedding; never populated.
	UserEmbedding string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reading statuses.
const (
	StatusWantToRead       = "want_to_read"
	StatusCurrentlyReading = "currently_reading"
	StatusCompleted        = "completed"
	StatusAbandoned        = "abandoned"
)

// ReadingHistory tracks one user's interaction with one book. At most one row
// exists per (user, book) pair; it is created on first interaction and
// updated in place afterwards.
type ReadingHistory struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`
	BookID int64  `json:"book_id"`

	Status               string   `json:"status"`
	UserRating           *float64 `json:"user_rating"`
	UserReview           string   `json:"user_review"`
	PagesRead            int      `json:"pages_read"`
	CompletionPercentage float64  `json:"completion_percentage"`

	TimeSpentReading int        `json:"time_spent_reading"`
	LastReadDate     *time.Time `json:"last_read_date"`
	InteractionScore float64    `json:"interaction_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Book *Book `json:"book,omitempty"`
}

// ReadingStats summarizes a user's reading history.
type ReadingStats struct {
	TotalBooks       int     `json:"total_books"`
	CompletedBooks   int     `json:"completed_books"`
	CurrentlyReading int     `json:"currently_reading"`
	WantToRead       int     `json:"want_to_read"`
	AverageRating    float64 `json:"average_rating"`
	CompletionRate   float64 `json:"completion_rate"`
}
