package exclusions

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEmpty(t *testing.T) {
	set := Parse("")
	if set.Len() != 0 {
		t.Errorf("Expected empty set, got %d entries", set.Len())
	}
}

func TestParseLiteralCommaSeparated(t *testing.T) {
	set := Parse("http://a.example/feed,http://b.example/feed")
	if set.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", set.Len())
	}
	if !set.Contains("http://a.example/feed") {
		t.Error("Expected set to contain first identifier")
	}
	if !set.Contains("http://b.example/feed") {
		t.Error("Expected set to contain second identifier")
	}
}

func TestParseLiteralMixedSeparators(t *testing.T) {
	set := Parse("feedA, feedB\nfeedC\tfeedD")
	want := []string{"feedA", "feedB", "feedC", "feedD"}
	if set.Len() != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), set.Len())
	}
	for _, id := range want {
		if !set.Contains(id) {
			t.Errorf("Expected set to contain %q", id)
		}
	}
}

func TestParseFileTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "excludes.txt")
	if err := os.WriteFile(path, []byte("feedX\nfeedY, feedZ\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set := Parse(path)
	if set.Len() != 3 {
		t.Fatalf("Expected 3 entries from file, got %d", set.Len())
	}
	// The path itself must not end up in the set.
	if set.Contains(path) {
		t.Error("File path should not be treated as an identifier")
	}
	if !set.Contains("feedY") {
		t.Error("Expected set to contain feedY from file")
	}
}

func TestParseUnreadablePathFallsBackToLiteral(t *testing.T) {
	set := Parse("/nonexistent/excludes.txt")
	if set.Len() != 1 || !set.Contains("/nonexistent/excludes.txt") {
		t.Error("Unreadable path should be parsed as a literal identifier")
	}
}

func TestContainsOnMissing(t *testing.T) {
	set := Parse("feedA")
	if set.Contains("feedB") {
		t.Error("Contains should return false for absent identifier")
	}
}
