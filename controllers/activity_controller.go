package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateActivityInput struct {
	Location   string `json:"location"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Tool       string `json:"tool"`
	Region     string `json:"region"`
	Date       string `json:"date"`
	Host       string `json:"host"`
	HostNumber string `json:"hostNumber"`
}

func CreateActivity(c *gin.Context) {
	var input CreateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Location == "" || input.StartTime == "" || input.EndTime == "" || input.Region == "" || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if !models.ValidRegion(input.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown region"})
		return
	}

	startTime, err := services.NormalizeClock(input.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	endTime, err := services.NormalizeClock(input.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	date, err := services.NormalizeDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	activity, err := services.CreateActivity(services.CreateActivityInput{
		Region:     input.Region,
		Date:       date,
		Location:   input.Location,
		StartTime:  startTime,
		EndTime:    endTime,
		Tool:       input.Tool,
		Host:       input.Host,
		HostNumber: input.HostNumber,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "activity": activity})
}

func ListActivities(c *gin.Context) {
	activities, err := services.ListActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func GetActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activity id is required"})
		return
	}

	activity, err := services.GetActivity(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

type UpdateActivityInput struct {
	Result           *[]models.Participant `json:"result"`
	Feedback         *models.Feedback      `json:"feedback"`
	ParticipantCount *int                  `json:"participant_count"`
	StartTime        string                `json:"start_time"`
	EndTime          string                `json:"end_time"`
	Host             string                `json:"host"`
	HostNumber       string                `json:"host_number"`
	HostUnspecified  bool                  `json:"isHostUnspecified"`
}

func UpdateActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activity id is required"})
		return
	}

	var input UpdateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// result, feedback and participant_count must all be present, even if empty.
	if input.Result == nil || input.Feedback == nil || input.ParticipantCount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if *input.ParticipantCount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participant_count must not be negative"})
		return
	}

	for _, participant := range *input.Result {
		if participant.Type != "" && !models.ValidOutcomeType(participant.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown outcome type %q", participant.Type)})
			return
		}
		if participant.Team != "" && !models.ValidTeam(participant.Team) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown team %q", participant.Team)})
			return
		}
	}

	var startTime, endTime string
	var err error
	if input.StartTime != "" {
		startTime, err = services.NormalizeClock(input.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
	}
	if input.EndTime != "" {
		endTime, err = services.NormalizeClock(input.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
	}

	activity, err := services.UpdateActivity(id, services.UpdateActivityInput{
		Result:           *input.Result,
		Feedback:         *input.Feedback,
		ParticipantCount: *input.ParticipantCount,
		StartTime:        startTime,
		EndTime:          endTime,
		Host:             input.Host,
		HostNumber:       input.HostNumber,
		HostUnspecified:  input.HostUnspecified,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

func DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activity id is required"})
		return
	}

	if err := services.DeleteActivity(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportActivities streams the full activity list as an xlsx workbook.
func ExportActivities(c *gin.Context) {
	f, err := services.ExportActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("activities-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
	}
}
