package reconcile

import "github.com/feedtools/subsync/pkg/errors"

// Mode selects which halves of a computed changeset are applied to the
// aggregator. The diff itself is always computed in full.
type Mode string

const (
	// ModeNone computes and reports the changeset without applying it.
	ModeNone Mode = "none"

	// ModeOld applies only removals of stale subscriptions.
	ModeOld Mode = "old"

	// ModeNew applies only additions of unseen subscriptions.
	ModeNew Mode = "new"

	// ModeAll applies both halves of the changeset.
	ModeAll Mode = "all"
)

// Modes returns all valid apply modes.
func Modes() []Mode {
	return []Mode{ModeNone, ModeOld, ModeNew, ModeAll}
}

// ParseMode validates a mode string from configuration or a flag.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNone, ModeOld, ModeNew, ModeAll:
		return m, nil
	default:
		return "", errors.NewConfigError("apply", s, "must be one of none, old, new, all")
	}
}

func (m Mode) removes() bool {
	return m == ModeOld || m == ModeAll
}

func (m Mode) adds() bool {
	return m == ModeNew || m == ModeAll
}
