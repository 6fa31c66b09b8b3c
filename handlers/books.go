package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
)

// HandleListBooks returns the catalog, optionally narrowed by search text,
// genre, difficulty or investment level query parameters.
func HandleListBooks(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	filter := db.BookFilter{
		Search:          c.Query("search"),
		Genre:           c.Query("genre"),
		Difficulty:      c.Query("difficulty"),
		InvestmentLevel: c.Query("investment_level"),
	}

	booksList, err := db.ListBooks(filter)
	if err != nil {
		logger.Get().Error("error listing books", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": booksList, "count": len(booksList)})
}

// HandleGetBookFilters returns the distinct filter values in the catalog.
func HandleGetBookFilters(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	genres, difficulties, investmentLevels, err := db.BookFilters()
	if err != nil {
		logger.Get().Error("error listing book filters", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"genres":            genres,
		"difficulty_levels": difficulties,
		"investment_levels": investmentLevels,
	})
}

// HandleGetBook returns one book with the caller's reading history entry and
// a short list of same-genre books.
func HandleGetBook(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book id"})
		return
	}

	book, err := db.GetBook(bookID)
	if err == db.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	if err != nil {
		logger.Get().Error("error fetching book", zap.Int64("book_id", bookID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	similar, err := db.SimilarBooks(book, 5)
	if err != nil {
		logger.Get().Error("error fetching similar books", zap.Int64("book_id", bookID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"book": book, "similar_books": similar}

	history, err := db.GetReadingHistory(claims.Subject, bookID)
	if err == nil {
		response["user_history"] = history
	} else if err != db.ErrNotFound {
		logger.Get().Error("error fetching reading history", zap.Int64("book_id", bookID), zap.Error(err))
	}

	c.JSON(http.StatusOK, response)
}
