package controllers

import (
	"log"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SheetEntryInput struct {
	Name        string `json:"name"`
	PhoneSuffix string `json:"phone_suffix"`
	Lead        string `json:"lead"`
	Type        string `json:"type"`
	Team        string `json:"team"`
	Region      string `json:"region"`
	Location    string `json:"location"`
	Date        string `json:"date"`
}

// AppendSheetRow logs one participant to the shared spreadsheet. The append
// is idempotent per name|phone key and independent of the activity update
// that preceded it; a failure here is never retried.
func AppendSheetRow(c *gin.Context) {
	var input SheetEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name == "" || input.PhoneSuffix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone suffix are required"})
		return
	}

	logger := services.NewSheetLogger(utils.NewSheetClient())
	status, err := logger.Append(services.SheetEntry{
		Name:        input.Name,
		PhoneSuffix: input.PhoneSuffix,
		Lead:        input.Lead,
		Type:        input.Type,
		Team:        input.Team,
		Region:      input.Region,
		Location:    input.Location,
		Date:        input.Date,
	})
	if err != nil {
		log.Printf("Spreadsheet append failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write to spreadsheet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": status})
}
