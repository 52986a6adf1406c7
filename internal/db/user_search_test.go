package db

import "testing"

func TestSearchByUsernameMatchesSubstring(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	seedTestUser(t, database, "alice")
	seedTestUser(t, database, "malice2")
	seedTestUser(t, database, "bob")

	matched, err := repo.SearchByUsername("alice")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
}

func TestSearchByUsernameTreatsWildcardsLiterally(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	seedTestUser(t, database, "percent")
	seedTestUser(t, database, "under_score")

	matched, err := repo.SearchByUsername("%")
	if err != nil {
		t.Fatalf("search percent: %v", err)
	}
	if len(matched) != 0 {
		t.Fatalf("expected no matches for literal %%, got %d", len(matched))
	}

	matched, err = repo.SearchByUsername("_score")
	if err != nil {
		t.Fatalf("search underscore: %v", err)
	}
	if len(matched) != 1 || matched[0].Username != "under_score" {
		t.Fatalf("expected only under_score to match, got %+v", matched)
	}
}

func TestSearchByUsernameRejectsInjectionAttempts(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewUserRepository(database)

	seedTestUser(t, database, "alice")

	matched, err := repo.SearchByUsername("' OR '1'='1")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matched) != 0 {
		t.Fatalf("expected injection-shaped needle to match nothing, got %d rows", len(matched))
	}
}
