package cmd

import (
	"github.com/spf13/cobra"

	"github.com/feedtools/subsync/internal/aggregator"
	"github.com/feedtools/subsync/pkg/exclusions"
	"github.com/feedtools/subsync/pkg/reconcile"
	"github.com/feedtools/subsync/pkg/sources"
)

type syncOptions struct {
	folder      string
	exclude     string
	includeSelf bool
	diff        bool
	apply       string
	output      string
}

// NewSyncCommand creates the sync command with app dependencies.
func NewSyncCommand(app AppContext) *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync <provider>",
		Short: "Reconcile aggregator subscriptions with a provider",
		Long: `Sync compares the feeds the user follows on a provider with the
aggregator's subscriptions under a folder and computes the additions
and removals needed to make them match.

By default nothing is applied; the computed changeset is printed. Use
--apply to push one or both halves of the changeset to the aggregator,
or --diff to force report-only regardless of --apply.`,
		Example: `  subsync sync youtube --folder YouTube --diff
  subsync sync soundcloud --folder Music --apply all
  subsync sync vimeo --folder Video --apply old --exclude skip.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.folder, "folder", "f", "", "aggregator folder holding this provider's subscriptions")
	cmd.Flags().StringVarP(&opts.exclude, "exclude", "e", "", "feed URLs to ignore, inline or a file path")
	cmd.Flags().BoolVar(&opts.includeSelf, "include-self", false, "include the user's own published feed")
	cmd.Flags().BoolVarP(&opts.diff, "diff", "d", false, "report the changeset without applying it")
	cmd.Flags().StringVarP(&opts.apply, "apply", "a", "none", "changes to apply: none, old (removals), new (additions), all")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}

func runSync(cmd *cobra.Command, app AppContext, provider string, opts *syncOptions) error {
	ctx := cmd.Context()

	mode := reconcile.ModeNone
	if !opts.diff {
		m, err := reconcile.ParseMode(opts.apply)
		if err != nil {
			return err
		}
		mode = m
	}

	src, err := loginSource(ctx, app, provider)
	if err != nil {
		return err
	}

	agg, err := aggregator.New(app.ServiceURL())
	if err != nil {
		return err
	}
	store, err := app.Credentials()
	if err != nil {
		return err
	}
	creds, err := store.Lookup(agg.Host())
	if err != nil {
		return err
	}
	if err := agg.Login(ctx, creds); err != nil {
		return err
	}

	var listOpts []sources.Option
	if opts.includeSelf {
		listOpts = append(listOpts, sources.WithSelf())
	}

	engine := reconcile.New(agg)
	changes, err := engine.Run(ctx, src.Subscriptions(ctx, listOpts...), reconcile.Options{
		Label:      opts.folder,
		Exclusions: exclusions.Parse(opts.exclude),
		Mode:       mode,
	})
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if err := changes.Report(w); err != nil {
		_ = closeOutput()
		return err
	}
	return closeOutput()
}
