package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
)

func HandleGetProfile(c *gin.Context) {
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

	c.JSON(http.StatusOK, profile)
}

func HandleUpdateProfile(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := db.GetOrCreateProfile(claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching profile", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := profile.ApplyUpdate(fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.UpdateProfile(profile); err != nil {
		logger.Get().Error("error updating profile", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
