package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/rules"
)

// HandleGetTaxSavings returns the personalized tax plan. Advice comes from the
// generation backend when it is healthy and from the rule engine otherwise;
// the savings-options grid is always deterministic.
func HandleGetTaxSavings(c *gin.Context) {
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

	plan := Advisor.TaxAdvice(c.Request.Context(), profile)

	c.JSON(http.StatusOK, gin.H{
		"recommendations": plan.Recommendations,
		"summary":         plan.Summary,
		"tax_options":     rules.TaxOptions(profile),
		"profile_data": gin.H{
			"income":            profile.Income,
			"age":               profile.Age,
			"occupation":        profile.Occupation,
			"investment_amount": profile.InvestmentAmount,
			"profile_complete":  profile.IsComplete(),
		},
	})
}
