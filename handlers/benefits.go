package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
)

// HandleGetBenefits returns the government schemes the user appears eligible
// for, generated when possible and rule-derived otherwise.
func HandleGetBenefits(c *gin.Context) {
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

	benefits := Advisor.Benefits(c.Request.Context(), profile)

	c.JSON(http.StatusOK, gin.H{
		"benefits": benefits,
		"profile_data": gin.H{
			"income":     profile.Income,
			"age":        profile.Age,
			"dependents": profile.Dependents,
			"occupation": profile.Occupation,
		},
	})
}
