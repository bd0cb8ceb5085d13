package memory

import (
	"testing"
	"time"
)

func TestSessionCreateGetRoundtrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	id := repo.Create("some grounding text", []string{"plan.md", "notes.txt"})
	if !IsValidID(id) {
		t.Fatalf("Create returned malformed id %q", id)
	}

	session, found := repo.Get(id)
	if !found {
		t.Fatal("session not found immediately after Create")
	}
	if session.Text != "some grounding text" {
		t.Errorf("Text = %q", session.Text)
	}
	if len(session.FileNames) != 2 || session.FileNames[0] != "plan.md" {
		t.Errorf("FileNames = %v", session.FileNames)
	}
	if session.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestSessionGetJunkIDs(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	for _, id := range []string{"", "short", "0123456789abcdef0123456789abcde_"} {
		if _, found := repo.Get(id); found {
			t.Errorf("Get(%q) reported found", id)
		}
		if repo.Has(id) {
			t.Errorf("Has(%q) reported true", id)
		}
	}
}

func TestSessionCreateDistinctIDs(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := repo.Create("text", nil)
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
}

func TestSessionTTLExpiry(t *testing.T) {
	repo := NewSessionRepository(50 * time.Millisecond)
	id := repo.Create("ephemeral", nil)

	if !repo.Has(id) {
		t.Fatal("session missing right after create")
	}
	time.Sleep(80 * time.Millisecond)
	if repo.Has(id) {
		t.Fatal("session survived past its TTL")
	}
}
