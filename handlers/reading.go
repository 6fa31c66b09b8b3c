package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/models"
)

type ReadingUpdateRequest struct {
	BookID               int64    `json:"book_id" binding:"required"`
	Status               string   `json:"status" binding:"required"`
	UserRating           *float64 `json:"user_rating"`
	UserReview           string   `json:"user_review"`
	PagesRead            int      `json:"pages_read"`
	CompletionPercentage float64  `json:"completion_percentage"`
	TimeSpentReading     int      `json:"time_spent_reading"`
}

var validStatuses = map[string]bool{
	models.StatusWantToRead:       true,
	models.StatusCurrentlyReading: true,
	models.StatusCompleted:        true,
	models.StatusAbandoned:        true,
}

func HandleGetReadingHistory(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := db.ListReadingHistory(claims.Subject)
	if err != nil {
		logger.Get().Error("error listing reading history", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history, "count": len(history)})
}

// HandleUpdateReadingHistory creates or updates the caller's entry for one
// book. A completed status forces completion to 100%.
func HandleUpdateReadingHistory(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req ReadingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reading status"})
		return
	}
	if req.UserRating != nil && (*req.UserRating < 0 || *req.UserRating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 5"})
		return
	}

	if _, err := db.GetBook(req.BookID); err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	} else if err != nil {
		logger.Get().Error("error fetching book", zap.Int64("book_id", req.BookID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Status == models.StatusCompleted {
		req.CompletionPercentage = 100
	}

	now := time.Now()
	entry := &models.ReadingHistory{
		UserID:               claims.Subject,
		BookID:               req.BookID,
		Status:               req.Status,
		UserRating:           req.UserRating,
		UserReview:           req.UserReview,
		PagesRead:            req.PagesRead,
		CompletionPercentage: req.CompletionPercentage,
		TimeSpentReading:     req.TimeSpentReading,
		LastReadDate:         &now,
		InteractionScore:     interactionScore(&req),
	}

	if err := db.UpsertReadingHistory(entry); err != nil {
		logger.Get().Error("error saving reading history",
			zap.String("user_id", claims.Subject),
			zap.Int64("book_id", req.BookID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// interactionScore weighs how engaged the user is with a book, used as a
// ranking signal for future recommendations.
func interactionScore(req *ReadingUpdateRequest) float64 {
	score := req.CompletionPercentage / 100
	if req.UserRating != nil {
		score += *req.UserRating / 5
	}
	if req.UserReview != "" {
		score += 0.5
	}
	return score
}

func HandleGetReadingPreferences(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	prefs, err := db.GetOrCreateReadingPreference(claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching reading preferences", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

type ReadingPreferencesRequest struct {
	PreferredGenres          []string `json:"preferred_genres"`
	PreferredAuthors         []string `json:"preferred_authors"`
	PreferredTopics          []string `json:"preferred_topics"`
	PreferredDifficulty      string   `json:"preferred_difficulty"`
	PreferredInvestmentLevel string   `json:"preferred_investment_level"`
	BooksPerMonth            int      `json:"books_per_month"`
	ReadingGoal              int      `json:"reading_goal"`
}

func HandleUpdateReadingPreferences(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req ReadingPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := db.GetOrCreateReadingPreference(claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching reading preferences", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prefs.PreferredGenres = req.PreferredGenres
	prefs.PreferredAuthors = req.PreferredAuthors
	prefs.PreferredTopics = req.PreferredTopics
	prefs.PreferredDifficulty = req.PreferredDifficulty
	prefs.PreferredInvestmentLevel = req.PreferredInvestmentLevel
	prefs.BooksPerMonth = req.BooksPerMonth
	prefs.ReadingGoal = req.ReadingGoal

	if err := db.UpdateReadingPreference(prefs); err != nil {
		logger.Get().Error("error updating reading preferences", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
