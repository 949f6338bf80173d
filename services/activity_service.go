package services

import (
	"encoding/json"
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Layouts accepted at the API boundary. Clients have historically sent both
// bare clock strings and full timestamps; everything is normalized to HH:MM.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var ErrBadTimeValue = errors.New("invalid date or time value")

// NormalizeClock converts any accepted time value to canonical HH:MM.
func NormalizeClock(value string) (string, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", ErrBadTimeValue
}

// NormalizeDate converts any accepted date value to canonical YYYY-MM-DD.
func NormalizeDate(value string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", ErrBadTimeValue
}

type CreateActivityInput struct {
	Region     string
	Date       string // already normalized
	Location   string
	StartTime  string // already normalized
	EndTime    string // already normalized
	Tool       string
	Host       string
	HostNumber string
}

func CreateActivity(input CreateActivityInput) (models.Activity, error) {
	host := input.Host
	if host == "" {
		host = models.UnspecifiedHost
	}

	var hostNumber *string
	if input.HostNumber != "" && host != models.UnspecifiedHost {
		hostNumber = &input.HostNumber
	}

	activity := models.Activity{
		Region:     input.Region,
		Date:       input.Date,
		Location:   input.Location,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Tool:       input.Tool,
		Host:       host,
		HostNumber: hostNumber,
		Result:     datatypes.JSON([]byte("[]")),
		Feedback:   datatypes.JSON([]byte("{}")),
	}

	if err := config.DB.Create(&activity).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func GetActivity(id string) (models.Activity, error) {
	var activity models.Activity
	err := config.DB.First(&activity, "id = ?", id).Error
	return activity, err
}

func ListActivities() ([]models.Activity, error) {
	activities := []models.Activity{}
	err := config.DB.Order("created_at asc").Find(&activities).Error
	return activities, err
}

type UpdateActivityInput struct {
	Result           []models.Participant
	Feedback         models.Feedback
	ParticipantCount int
	StartTime        string // normalized, empty when not provided
	EndTime          string
	Host             string
	HostNumber       string
	HostUnspecified  bool
}

func UpdateActivity(id string, input UpdateActivityInput) (models.Activity, error) {
	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return models.Activity{}, err
	}
	feedbackJSON, err := json.Marshal(input.Feedback)
	if err != nil {
		return models.Activity{}, err
	}

	updates := map[string]interface{}{
		"result":            datatypes.JSON(resultJSON),
		"feedback":          datatypes.JSON(feedbackJSON),
		"participant_count": input.ParticipantCount,
	}

	if input.StartTime != "" {
		updates["start_time"] = input.StartTime
	}
	if input.EndTime != "" {
		updates["end_time"] = input.EndTime
	}

	// The unspecified flag wins over whatever host values were submitted.
	if input.HostUnspecified {
		updates["host"] = models.UnspecifiedHost
		updates["hostnumber"] = nil
	} else {
		if input.Host != "" {
			updates["host"] = input.Host
		}
		if input.HostNumber != "" {
			updates["hostnumber"] = input.HostNumber
		}
	}

	tx := config.DB.Model(&models.Activity{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return models.Activity{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.Activity{}, gorm.ErrRecordNotFound
	}

	return GetActivity(id)
}

// DeleteActivity removes the record. Deleting an id that no longer exists is
// not an error.
func DeleteActivity(id string) error {
	return config.DB.Delete(&models.Activity{}, "id = ?", id).Error
}
