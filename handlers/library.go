package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/books"
	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
)

// HandleGetWisdomLibrary assembles the personalized library view: ranked
// recommendations from the candidate pool, reading stats and the most
// recently touched books.
func HandleGetWisdomLibrary(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := db.GetOrCreateProfile(claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching profile", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prefs, err := db.GetOrCreateReadingPreference(claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching reading preferences", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	genres := books.RecommendationGenres(profile, prefs)
	levels := books.InvestmentLevels(profile)

	candidates, err := db.CandidateBooks(genres, levels, claims.Subject, 20)
	if err != nil {
		logger.Get().Error("error fetching candidate books", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recommendations := books.Rank(candidates, profile, prefs)

	stats, err := db.ReadingStatsForUser(claims.Subject)
	if err != nil {
		logger.Get().Error("error computing reading stats", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recent, err := db.RecentReadingHistory(claims.Subject, 5)
	if err != nil {
		logger.Get().Error("error fetching recent reading history", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recommendations,
		"reading_stats":   stats,
		"recent_books":    recent,
		"preferences":     prefs,
	})
}
