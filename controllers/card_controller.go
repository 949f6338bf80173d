package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCards deals the card-flip hand for a date (today by default): one verse
// per card type, or a user-facing error when the pool is incomplete.
func GetCards(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else {
		var err error
		date, err = services.NormalizeDate(date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
	}

	cards, err := services.DrawCards(date)
	if err != nil {
		if errors.Is(err, services.ErrIncompleteCardPool) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Today's verses are not ready yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

type UploadArtworkInput struct {
	CardType string `json:"card_type"`
	Side     string `json:"side"`  // "front" | "back"
	Image    string `json:"image"` // base64 data URL
}

func UploadCardArtwork(c *gin.Context) {
	var input UploadArtworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCardType(input.CardType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown card type"})
		return
	}
	if input.Side != "front" && input.Side != "back" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Side must be front or back"})
		return
	}
	if input.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image data"})
		return
	}

	url, err := utils.UploadCardImage(input.Image, input.CardType, input.Side)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	artwork, err := services.UpsertCardArtwork(input.CardType, input.Side, url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "artwork": artwork})
}
