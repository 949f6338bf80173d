package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetVerses returns the scheduled "today verse" records. With a date query
// parameter it returns the single record for that date instead.
func GetVerses(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		verses, err := services.ListTodayVerses()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, verses)
		return
	}

	date, err := services.NormalizeDate(dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	verse, err := services.GetVerseByDate(date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No verse for that date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, verse)
}

func SearchVerses(c *gin.Context) {
	results, err := services.SearchVerses(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type AddVerseInput struct {
	BookName      string `json:"book_name"`
	ChapterNumber int    `json:"chapter_number"`
	VerseNumber   int    `json:"verse_number"`
	VerseText     string `json:"verse_text"`
}

// AddVerse adds a verse to the searchable corpus backing the search endpoint.
func AddVerse(c *gin.Context) {
	var input AddVerseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.BookName == "" || input.VerseText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	verse, err := services.AddVerse(models.BibleVerse{
		BookName:      input.BookName,
		ChapterNumber: input.ChapterNumber,
		VerseNumber:   input.VerseNumber,
		VerseText:     input.VerseText,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "verse": verse})
}

type AddTodayVerseInput struct {
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    string `json:"verse"`
	Text     string `json:"text"`
	CardType string `json:"card_type"`
	DateUsed string `json:"date_used"`
}

func AddTodayVerse(c *gin.Context) {
	var input AddTodayVerseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DateUsed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A date must be selected"})
		return
	}
	if input.BookName == "" || input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !models.ValidCardType(input.CardType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown card type"})
		return
	}

	date, err := services.NormalizeDate(input.DateUsed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	verse, err := services.AddTodayVerse(models.TodayBibleVerse{
		BookName: input.BookName,
		Chapter:  input.Chapter,
		Verse:    input.Verse,
		Text:     input.Text,
		CardType: input.CardType,
		DateUsed: date,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTodayVerse) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "verse": verse})
}

func DeleteTodayVerse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verse id"})
		return
	}

	if err := services.DeleteTodayVerse(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
