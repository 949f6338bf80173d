package models

import "time"

// Card types used by the card-flip feature.
const (
	CardTypeCourage    = "courage"
	CardTypeEvangelism = "evangelism"
	CardTypeHope       = "hope"
)

var CardTypes = []string{CardTypeCourage, CardTypeEvangelism, CardTypeHope}

// A verse from the searchable scripture corpus
type BibleVerse struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	BookName      string `gorm:"not null;index" json:"book_name"`
	ChapterNumber int    `gorm:"not null" json:"chapter_number"`
	VerseNumber   int    `gorm:"not null" json:"verse_number"`
	VerseText     string `gorm:"type:text;not null" json:"verse_text"`
}

func (BibleVerse) TableName() string { return "bible_verses" }

// A verse scheduled as "verse of the day" for one card type
type TodayBibleVerse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookName  string    `gorm:"not null" json:"book_name"`
	Chapter   int       `gorm:"not null" json:"chapter"`
	Verse     string    `gorm:"not null" json:"verse"` // single number or a range like "1-3"
	Text      string    `gorm:"type:text;not null" json:"text"`
	CardType  string    `gorm:"index" json:"card_type"`
	DateUsed  string    `gorm:"type:varchar(10);index" json:"date_used"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}

func (TodayBibleVerse) TableName() string { return "today_bible_verses" }

// Front/back card images per card type, uploaded by an admin
type CardArtwork struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CardType string `gorm:"uniqueIndex;not null" json:"card_type"`
	FrontURL string `json:"front_url"`
	BackURL  string `json:"back_url"`
}

func ValidCardType(t string) bool {
	return contains(CardTypes, t)
}
