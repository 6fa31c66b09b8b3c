package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/rules"
)

// HandleGetDashboard assembles the dashboard view: savings progress, the
// current tax tips and the financial health score. The denormalized summary
// row is refreshed on every load.
func HandleGetDashboard(c *gin.Context) {
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

	progress := rules.Progress(profile)
	tips := rules.TaxTips(profile)

	summary, err := db.GetOrCreateDashboardSummary(claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching dashboard summary", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary.TotalSavings = progress.TotalSavings
	summary.MonthlySavings = progress.MonthlySavings
	summary.SavingsGoal = progress.SavingsGoal
	summary.ProgressPercentage = progress.ProgressPercentage
	summary.Recommendations = strings.Join(tips, ", ")
	if err := db.UpdateDashboardSummary(summary); err != nil {
		logger.Get().Error("error updating dashboard summary", zap.String("user_id", claims.Subject), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":          summary,
		"recommendations":  tips,
		"health_score":     rules.HealthScore(profile),
		"profile_complete": profile.IsComplete(),
	})
}
