package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UnspecifiedHost is stored when no organizer has been decided for an activity.
const UnspecifiedHost = "unspecified"

// Regions an activity can be tagged with.
var Regions = []string{"central", "east", "west", "south", "north"}

// OutcomeTypes categorize a participant result entry.
var OutcomeTypes = []string{"gospel", "study", "revisit", "contact"}

// Teams a participant can be assigned to.
var Teams = []string{"john", "peter", "paul", "timothy"}

type Activity struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Region           string         `gorm:"not null;index" json:"region"`
	Date             string         `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	Location         string         `gorm:"not null" json:"location"`
	StartTime        string         `gorm:"type:varchar(5)" json:"start_time"` // HH:MM
	EndTime          string         `gorm:"type:varchar(5)" json:"end_time"`   // HH:MM
	Tool             string         `json:"tool"`
	Host             string         `json:"host"`
	HostNumber       *string        `gorm:"column:hostnumber" json:"hostnumber"`
	ParticipantCount int            `json:"participant_count"`
	Result           datatypes.JSON `gorm:"type:jsonb" json:"result"`
	Feedback         datatypes.JSON `gorm:"type:jsonb" json:"feedback"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Participant is one entry of an activity's result column.
type Participant struct {
	Name  string `json:"name"`
	Phone string `json:"phone"` // last 4 digits only
	Lead  string `json:"lead"`
	Type  string `json:"type"`
	Team  string `json:"team"`
}

type Feedback struct {
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	FuturePlans  string `json:"futurePlans"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func ValidRegion(region string) bool {
	return contains(Regions, region)
}

func ValidOutcomeType(t string) bool {
	return contains(OutcomeTypes, t)
}

func ValidTeam(team string) bool {
	return contains(Teams, team)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
