package services

import (
	"errors"
	"math/rand"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// ErrIncompleteCardPool means at least one card type has no verse scheduled
// for the requested date, so no hand can be dealt.
var ErrIncompleteCardPool = errors.New("not every card type has a verse for this date")

// Card is one face of the card-flip game: a drawn verse plus its artwork.
type Card struct {
	CardType string                 `json:"card_type"`
	Verse    models.TodayBibleVerse `json:"verse"`
	FrontURL string                 `json:"front_url,omitempty"`
	BackURL  string                 `json:"back_url,omitempty"`
}

// DrawCards picks one verse per card type uniformly at random from the pool
// scheduled for the date. Either every card type is covered or nothing is
// returned.
func DrawCards(date string) ([]Card, error) {
	cards := make([]Card, 0, len(models.CardTypes))

	for _, cardType := range models.CardTypes {
		pool := []models.TodayBibleVerse{}
		err := config.DB.
			Where("card_type = ? AND date_used = ?", cardType, date).
			Find(&pool).Error
		if err != nil {
			return nil, err
		}
		if len(pool) == 0 {
			return nil, ErrIncompleteCardPool
		}

		card := Card{
			CardType: cardType,
			Verse:    pool[rand.Intn(len(pool))],
		}

		var artwork models.CardArtwork
		err = config.DB.Where("card_type = ?", cardType).First(&artwork).Error
		if err == nil {
			card.FrontURL = artwork.FrontURL
			card.BackURL = artwork.BackURL
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// UpsertCardArtwork stores the uploaded image URL for one side of a card type.
func UpsertCardArtwork(cardType, side, url string) (models.CardArtwork, error) {
	artwork := models.CardArtwork{CardType: cardType}

	err := config.DB.
		Where("card_type = ?", cardType).
		FirstOrCreate(&artwork).Error
	if err != nil {
		return models.CardArtwork{}, err
	}

	if side == "front" {
		artwork.FrontURL = url
	} else {
		artwork.BackURL = url
	}

	if err := config.DB.Save(&artwork).Error; err != nil {
		return models.CardArtwork{}, err
	}
	return artwork, nil
}
