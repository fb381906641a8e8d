package reconcile

import (
	"fmt"
	"io"
	"sort"
)

// Changeset is the computed difference between the aggregator's labeled
// subscriptions and a source's current output. Both maps are keyed by
// feed identifier and carry display titles.
type Changeset struct {
	// ToRemove holds subscriptions present at the aggregator under the
	// target label but absent from the source.
	ToRemove map[string]string

	// ToAdd holds subscriptions present at the source but unknown to the
	// aggregator under the target label.
	ToAdd map[string]string
}

// NewChangeset returns an empty changeset.
func NewChangeset() *Changeset {
	return &Changeset{
		ToRemove: make(map[string]string),
		ToAdd:    make(map[string]string),
	}
}

// HasChanges reports whether either half of the changeset is non-empty.
func (c *Changeset) HasChanges() bool {
	return len(c.ToRemove) > 0 || len(c.ToAdd) > 0
}

// RemoveIDs returns the identifiers slated for removal, sorted.
func (c *Changeset) RemoveIDs() []string {
	return sortedKeys(c.ToRemove)
}

// AddIDs returns the identifiers slated for addition, sorted.
func (c *Changeset) AddIDs() []string {
	return sortedKeys(c.ToAdd)
}

// Report writes the human-readable changeset summary: each half headed
// by its count, followed by one "identifier - title" line per entry in
// identifier order.
func (c *Changeset) Report(w io.Writer) error {
	if err := reportSection(w, "Removed", c.ToRemove); err != nil {
		return err
	}
	return reportSection(w, "Added", c.ToAdd)
}

func reportSection(w io.Writer, heading string, entries map[string]string) error {
	if _, err := fmt.Fprintf(w, "%s(%d):\n", heading, len(entries)); err != nil {
		return err
	}
	for _, id := range sortedKeys(entries) {
		if _, err := fmt.Fprintf(w, "%s - %s\n", id, entries[id]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
