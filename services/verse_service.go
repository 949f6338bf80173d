package services

import (
	"errors"
	"strings"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrDuplicateTodayVerse = errors.New("a verse for that card type and date already exists")

// SearchVerses runs a case-insensitive substring search over the scripture
// corpus. An empty query returns no results without touching the store.
func SearchVerses(query string) ([]models.BibleVerse, error) {
	if query == "" {
		return []models.BibleVerse{}, nil
	}

	verses := []models.BibleVerse{}
	err := config.DB.
		Where("LOWER(verse_text) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("book_name, chapter_number, verse_number").
		Limit(50).
		Find(&verses).Error
	return verses, err
}

// AddVerse inserts a verse into the searchable corpus.
func AddVerse(verse models.BibleVerse) (models.BibleVerse, error) {
	if err := config.DB.Create(&verse).Error; err != nil {
		return models.BibleVerse{}, err
	}
	return verse, nil
}

// AddTodayVerse schedules a verse for a card type on a date. Only one verse
// per (card_type, date_used) pair is allowed; the check is application-level.
func AddTodayVerse(verse models.TodayBibleVerse) (models.TodayBibleVerse, error) {
	var existing models.TodayBibleVerse
	err := config.DB.
		Where("card_type = ? AND date_used = ?", verse.CardType, verse.DateUsed).
		First(&existing).Error
	if err == nil {
		return models.TodayBibleVerse{}, ErrDuplicateTodayVerse
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.TodayBibleVerse{}, err
	}

	if err := config.DB.Create(&verse).Error; err != nil {
		return models.TodayBibleVerse{}, err
	}
	return verse, nil
}

func ListTodayVerses() ([]models.TodayBibleVerse, error) {
	verses := []models.TodayBibleVerse{}
	err := config.DB.Order("date_used desc").Find(&verses).Error
	return verses, err
}

func GetVerseByDate(date string) (models.TodayBibleVerse, error) {
	var verse models.TodayBibleVerse
	err := config.DB.Where("date_used = ?", date).First(&verse).Error
	return verse, err
}

func DeleteTodayVerse(id uint) error {
	return config.DB.Delete(&models.TodayBibleVerse{}, id).Error
}
