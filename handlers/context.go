package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahiti3636/finwise-ai/advisor"
	"github.com/sahiti3636/finwise-ai/models"
)

// Advisor is the generation backend shared by all handlers, set from main.
var Advisor *advisor.Advisor

// currentUser pulls the verified JWT claims set by the auth middleware. On
// failure it writes the 401 itself and returns false.
func currentUser(c *gin.Context) (*models.AuthClaims, bool) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	claims, ok := user.(*models.AuthClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user claims"})
		return nil, false
	}

	return claims, true
}
