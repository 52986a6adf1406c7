package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/fallowfield/lendora/internal/models"
	"gorm.io/gorm"
)

func TestSaveProfileStoresComputedScores(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := submitProfile(t, app, cookie, "30", "120000", "employed")
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("save profile expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/credit-score" {
		t.Fatalf("expected redirect to /credit-score, got %q", location)
	}

	profile := loadLatestProfile(t, database, "alice")
	if profile.CreditScore < 700 || profile.CreditScore > 800 {
		t.Fatalf("expected high-earner credit score in [700, 800], got %d", profile.CreditScore)
	}
	if profile.CivilScore != 100 {
		t.Fatalf("expected civil score clamped to 100, got %d", profile.CivilScore)
	}

	page := getPage(t, app, "/credit-score", cookie)
	body := readBody(t, page)
	if page.StatusCode != http.StatusOK {
		t.Fatalf("credit score page expected 200, got %d", page.StatusCode)
	}
	if !strings.Contains(body, "Your Credit Score") {
		t.Fatal("expected score card on the credit score page")
	}
}

func TestSaveProfileRejectsInvalidAge(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := submitProfile(t, app, cookie, "17", "50000", "employed")
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect with flash, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no profile rows after invalid submit, got %d", count)
	}
}

func TestResubmittingProfileKeepsHistoryNewestWins(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	first := submitProfile(t, app, cookie, "30", "20000", "student")
	first.Body.Close()
	second := submitProfile(t, app, cookie, "31", "120000", "employed")
	second.Body.Close()

	var count int64
	if err := database.Model(&models.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected both profile rows to be kept, got %d", count)
	}

	latest := loadLatestProfile(t, database, "alice")
	if latest.Income != 120000 {
		t.Fatalf("expected the newest row to win, got income %.0f", latest.Income)
	}
}

func TestCivilScorePagePromptsWithoutProfile(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	page := getPage(t, app, "/civil-score", cookie)
	body := readBody(t, page)
	if page.StatusCode != http.StatusOK {
		t.Fatalf("civil score page expected 200, got %d", page.StatusCode)
	}
	if !strings.Contains(body, "No profile on record") {
		t.Fatal("expected the missing-profile prompt")
	}
}

func loadLatestProfile(t *testing.T, database *gorm.DB, username string) models.Profile {
	t.Helper()

	var user models.User
	if err := database.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", username, err)
	}

	var profile models.Profile
	if err := database.Where("user_id = ?", user.ID).Order("id DESC").First(&profile).Error; err != nil {
		t.Fatalf("load latest profile: %v", err)
	}
	return profile
}
