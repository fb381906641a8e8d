// Package reconcile implements the reconciliation engine: it compares
// the aggregator's subscription set, restricted to a target label,
// against a subscription source's current output, computes the
// additions and removals needed to make them match, and optionally
// applies those changes through the aggregator's write API.
//
// Comparison is strictly by feed identifier. Exclusion always wins:
// an excluded identifier appears in neither half of the changeset no
// matter which side it came from. Per-item apply failures are logged
// and skipped so a single bad feed cannot abort the rest of the batch,
// and the returned changeset always reflects the computed diff, not
// the applied one.
package reconcile

import (
	"context"

	"github.com/feedtools/subsync/pkg/errors"
	"github.com/feedtools/subsync/pkg/exclusions"
	"github.com/feedtools/subsync/pkg/logging"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

// Client is the aggregator capability the engine drives. Add and
// Remove must tolerate being called once per identifier per run; the
// engine never issues two calls for the same identifier in one run.
type Client interface {
	// Subscriptions returns the aggregator's full current subscription
	// list, each entry carrying identifier, title and label.
	Subscriptions(ctx context.Context) ([]subscriptions.Subscription, error)

	// Add subscribes to a feed, assigning it the given title and
	// optional label.
	Add(ctx context.Context, feedURL, title, label string) error

	// Remove unsubscribes from a feed by identifier.
	Remove(ctx context.Context, id string) error
}

// Options configure one reconciliation run.
type Options struct {
	// Label scopes the aggregator side of the diff to one folder. When
	// empty, the aggregator-side comparison set is empty and everything
	// from the source counts as new. Subscriptions added by the engine
	// are assigned this label.
	Label string

	// Exclusions holds identifiers ignored on both sides of the diff.
	Exclusions exclusions.Set

	// Mode selects which halves of the changeset are applied.
	Mode Mode
}

// Engine reconciles a subscription source against an aggregator.
type Engine struct {
	client Client
}

// New creates an engine driving the given aggregator client.
func New(client Client) *Engine {
	return &Engine{client: client}
}

// Run performs one reconciliation: fetch the aggregator list, drain the
// remote sequence, compute the changeset, then apply it according to
// opts.Mode. The returned changeset is the computed diff regardless of
// mode, so dry runs and applied runs report identically.
func (e *Engine) Run(ctx context.Context, remote subscriptions.Seq, opts Options) (*Changeset, error) {
	existing, err := e.client.Subscriptions(ctx)
	if err != nil {
		return nil, err
	}

	changes, err := Diff(remote, existing, opts.Label, opts.Exclusions)
	if err != nil {
		return nil, err
	}

	e.apply(ctx, changes, opts)

	return changes, nil
}

// Diff computes the changeset between the aggregator's current
// subscriptions and the source's output. The source sequence is fully
// drained; a mid-stream error aborts the computation since a partial
// listing would misclassify everything not yet seen as stale.
func Diff(remote subscriptions.Seq, existing []subscriptions.Subscription, label string, excluded exclusions.Set) (*Changeset, error) {
	if excluded == nil {
		excluded = exclusions.Set{}
	}

	// The aggregator-side comparison set: identifier to title for every
	// subscription under the target label. No label means an empty set.
	old := make(map[string]string)
	if label != "" {
		for _, sub := range existing {
			if sub.Label == label {
				old[sub.ID] = sub.Title
			}
		}
	}

	// Drain the source. Matched identifiers drop out of old (already
	// subscribed, nothing to do) and are remembered so their duplicates
	// cannot reappear as additions. Duplicate identifiers among the
	// unmatched overwrite earlier titles.
	added := make(map[string]string)
	matched := make(map[string]struct{})
	for item, err := range remote {
		if err != nil {
			return nil, err
		}
		id := item.URL
		if _, ok := matched[id]; ok {
			continue
		}
		if _, ok := old[id]; ok {
			if excluded.Contains(id) {
				logging.Debug().Str("feed", id).Msg("excluded, kept in old list")
				continue
			}
			delete(old, id)
			matched[id] = struct{}{}
			continue
		}
		added[id] = item.Title
	}

	// Exclusion wins over staleness and over novelty: excluded
	// identifiers leave both halves of the changeset.
	for id := range old {
		if excluded.Contains(id) {
			logging.Debug().Str("feed", id).Msg("excluded, kept in old list")
			delete(old, id)
		}
	}
	for id := range added {
		if excluded.Contains(id) {
			logging.Debug().Str("feed", id).Msg("excluded from new list")
			delete(added, id)
		}
	}

	return &Changeset{ToRemove: old, ToAdd: added}, nil
}

// apply issues the add/remove calls selected by the mode. Failures are
// logged per item and the item is skipped; the changeset is never
// mutated to reflect apply outcomes.
func (e *Engine) apply(ctx context.Context, changes *Changeset, opts Options) {
	if opts.Mode.removes() {
		for _, id := range changes.RemoveIDs() {
			if err := e.client.Remove(ctx, id); err != nil {
				applyErr := errors.NewApplyError("remove", id, err)
				logging.Warn().Err(applyErr).Str("feed", id).Msg("remove failed, skipping item")
				continue
			}
			logging.Info().Str("feed", id).Msg("unsubscribed")
		}
	}

	if opts.Mode.adds() {
		for _, id := range changes.AddIDs() {
			title := changes.ToAdd[id]
			if err := e.client.Add(ctx, id, title, opts.Label); err != nil {
				applyErr := errors.NewApplyError("add", id, err)
				logging.Warn().Err(applyErr).Str("feed", id).Msg("add failed, skipping item")
				continue
			}
			logging.Info().Str("feed", id).Str("title", title).Msg("subscribed")
		}
	}
}
