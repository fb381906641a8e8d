package reconcile

import (
	"bytes"
	"testing"
)

func TestReportFormat(t *testing.T) {
	changes := &Changeset{
		ToRemove: map[string]string{
			"http://b.example/feed": "B Feed",
			"http://a.example/feed": "A Feed",
		},
		ToAdd: map[string]string{
			"http://c.example/feed": "C Feed",
		},
	}

	var buf bytes.Buffer
	if err := changes.Report(&buf); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	want := "Removed(2):\n" +
		"http://a.example/feed - A Feed\n" +
		"http://b.example/feed - B Feed\n" +
		"Added(1):\n" +
		"http://c.example/feed - C Feed\n"
	if buf.String() != want {
		t.Errorf("Report output mismatch.\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestReportEmptyChangeset(t *testing.T) {
	var buf bytes.Buffer
	if err := NewChangeset().Report(&buf); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	want := "Removed(0):\nAdded(0):\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"none", "old", "new", "all"} {
		mode, err := ParseMode(valid)
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", valid, err)
		}
		if string(mode) != valid {
			t.Errorf("ParseMode(%q) = %q", valid, mode)
		}
	}

	if _, err := ParseMode("everything"); err == nil {
		t.Error("ParseMode should reject invalid mode")
	}
}
