package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"backend/config"
	"backend/models"
	"backend/services"
	"backend/utils"
)

func seedTodayVerse(t *testing.T, cardType, date string) models.TodayBibleVerse {
	t.Helper()

	verse := models.TodayBibleVerse{
		BookName: "Joshua",
		Chapter:  1,
		Verse:    "9",
		Text:     "Be strong and courageous.",
		CardType: cardType,
		DateUsed: date,
	}
	if err := config.DB.Create(&verse).Error; err != nil {
		t.Fatalf("failed to seed verse: %v", err)
	}
	return verse
}

// adminHeaders registers an admin account and returns a bearer header for it.
func adminHeaders(t *testing.T) map[string]string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	email := "admin@example.com"
	if _, err := services.FindAdminByEmail(email); err != nil {
		if err := services.RegisterAdmin(email, "password123", "Test Admin"); err != nil {
			t.Fatalf("failed to register admin: %v", err)
		}
	}

	token, err := utils.GenerateJWT(email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestGetVerseByDate(t *testing.T) {
	router := setupRouter(t)

	seeded := seedTodayVerse(t, models.CardTypeCourage, "2025-04-05")

	rr := doJSON(t, router, http.MethodGet, "/api/verses?date=2025-04-05", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var verse models.TodayBibleVerse
	decodeBody(t, rr, &verse)
	if verse.ID != seeded.ID {
		t.Fatalf("expected verse %d got %d", seeded.ID, verse.ID)
	}
}

func TestGetVerseByDateNotFound(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/verses?date=2099-01-01", nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestListTodayVersesNewestDateFirst(t *testing.T) {
	router := setupRouter(t)

	seedTodayVerse(t, models.CardTypeCourage, "2025-04-04")
	seedTodayVerse(t, models.CardTypeCourage, "2025-04-06")
	seedTodayVerse(t, models.CardTypeCourage, "2025-04-05")

	rr := doJSON(t, router, http.MethodGet, "/api/verses", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var verses []models.TodayBibleVerse
	decodeBody(t, rr, &verses)

	if len(verses) != 3 {
		t.Fatalf("expected 3 verses got %d", len(verses))
	}
	for i := 1; i < len(verses); i++ {
		if verses[i-1].DateUsed < verses[i].DateUsed {
			t.Fatalf("expected date_used descending, got %q before %q",
				verses[i-1].DateUsed, verses[i].DateUsed)
		}
	}
}

func TestSearchVersesEmptyQuery(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/verses/search?q=", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var resp struct {
		Results []models.BibleVerse `json:"results"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.Results) != 0 {
		t.Fatalf("expected empty results got %d", len(resp.Results))
	}
}

func TestSearchVersesFindsCaseInsensitiveMatch(t *testing.T) {
	router := setupRouter(t)
	headers := adminHeaders(t)

	rr := doJSON(t, router, http.MethodPost, "/api/bible-verses", map[string]interface{}{
		"book_name":      "Joshua",
		"chapter_number": 1,
		"verse_number":   9,
		"verse_text":     "Be strong and Courageous.",
	}, headers)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodGet, "/api/verses/search?q=courageous", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Results []models.BibleVerse `json:"results"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result got %d", len(resp.Results))
	}
	if resp.Results[0].BookName != "Joshua" || resp.Results[0].VerseNumber != 9 {
		t.Fatalf("unexpected result %+v", resp.Results[0])
	}

	// a query matching nothing returns an empty set, not an error
	rr = doJSON(t, router, http.MethodGet, "/api/verses/search?q=leviathan", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &resp)
	if len(resp.Results) != 0 {
		t.Fatalf("expected no results got %d", len(resp.Results))
	}
}

func TestAddVerseRequiresAuth(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/bible-verses", map[string]interface{}{
		"book_name":      "Joshua",
		"chapter_number": 1,
		"verse_number":   9,
		"verse_text":     "Be strong and courageous.",
	}, nil)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestAddVerseRequiresText(t *testing.T) {
	router := setupRouter(t)
	headers := adminHeaders(t)

	rr := doJSON(t, router, http.MethodPost, "/api/bible-verses", map[string]interface{}{
		"book_name":      "Joshua",
		"chapter_number": 1,
		"verse_number":   9,
	}, headers)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAddTodayVerseRequiresAuth(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/verses", map[string]interface{}{
		"book_name": "Joshua",
		"chapter":   1,
		"verse":     "9",
		"text":      "Be strong and courageous.",
		"card_type": models.CardTypeCourage,
		"date_used": "2025-04-05",
	}, nil)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestAddTodayVerseRequiresDate(t *testing.T) {
	router := setupRouter(t)
	headers := adminHeaders(t)

	rr := doJSON(t, router, http.MethodPost, "/api/verses", map[string]interface{}{
		"book_name": "Joshua",
		"chapter":   1,
		"verse":     "9",
		"text":      "Be strong and courageous.",
		"card_type": models.CardTypeCourage,
	}, headers)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAddTodayVerseRejectsDuplicateCardTypeAndDate(t *testing.T) {
	router := setupRouter(t)
	headers := adminHeaders(t)

	body := map[string]interface{}{
		"book_name": "Joshua",
		"chapter":   1,
		"verse":     "9",
		"text":      "Be strong and courageous.",
		"card_type": models.CardTypeCourage,
		"date_used": "2025-04-05",
	}

	rr := doJSON(t, router, http.MethodPost, "/api/verses", body, headers)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodPost, "/api/verses", body, headers)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestDeleteTodayVerse(t *testing.T) {
	router := setupRouter(t)
	headers := adminHeaders(t)

	seeded := seedTodayVerse(t, models.CardTypeHope, "2025-04-05")

	rr := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/verses/%d", seeded.ID), nil, headers)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var count int64
	config.DB.Model(&models.TodayBibleVerse{}).Where("id = ?", seeded.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected verse to be deleted")
	}
}
