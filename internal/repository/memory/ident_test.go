package memory

import (
	"sync"
	"testing"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID()
	if len(id) != IDLength {
		t.Fatalf("id length = %d, want %d", len(id), IDLength)
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Fatalf("id %q contains non-hex character %q", id, c)
		}
	}
}

func TestNewIDUniqueConcurrent(t *testing.T) {
	const n = 1000
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- NewID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d unique ids, want %d", len(seen), n)
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid", "0123456789abcdef0123456789abcdef", true},
		{"empty", "", false},
		{"too short", "abc123", false},
		{"too long", "0123456789abcdef0123456789abcdef00", false},
		{"uppercase hex", "0123456789ABCDEF0123456789ABCDEF", false},
		{"non-hex", "0123456789abcdefg123456789abcdef", false},
		{"path traversal", "../../../../etc/passwd00000000ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.want {
				t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
