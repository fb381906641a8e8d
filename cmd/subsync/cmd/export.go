package cmd

import (
	"github.com/spf13/cobra"

	"github.com/feedtools/subsync/pkg/exclusions"
	"github.com/feedtools/subsync/pkg/opml"
	"github.com/feedtools/subsync/pkg/sources"
	"github.com/feedtools/subsync/pkg/subscriptions"
)

type exportOptions struct {
	folder      string
	exclude     string
	includeSelf bool
	sortByURL   bool
	output      string
}

// NewExportCommand creates the export command with app dependencies.
func NewExportCommand(app AppContext) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <provider>",
		Short: "Export a provider's subscriptions as OPML",
		Long: `Export lists the feeds the user follows on a provider and renders
them as an OPML document. The aggregator is not contacted.`,
		Example: `  subsync export youtube --sort
  subsync export soundcloud --folder Music --include-self -o music.opml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.folder, "folder", "f", "", "wrap feeds in a named folder outline")
	cmd.Flags().StringVarP(&opts.exclude, "exclude", "e", "", "feed URLs to ignore, inline or a file path")
	cmd.Flags().BoolVar(&opts.includeSelf, "include-self", false, "include the user's own published feed")
	cmd.Flags().BoolVarP(&opts.sortByURL, "sort", "s", false, "order feeds by feed URL")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the document to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, app AppContext, provider string, opts *exportOptions) error {
	ctx := cmd.Context()

	src, err := loginSource(ctx, app, provider)
	if err != nil {
		return err
	}

	var listOpts []sources.Option
	if opts.includeSelf {
		listOpts = append(listOpts, sources.WithSelf())
	}

	items, err := subscriptions.Collect(src.Subscriptions(ctx, listOpts...))
	if err != nil {
		return err
	}

	excluded := exclusions.Parse(opts.exclude)
	kept := items[:0:0]
	for _, item := range items {
		if excluded.Contains(item.URL) {
			continue
		}
		kept = append(kept, item)
	}

	doc := opml.Build(kept, opml.Options{
		Title:     "Subscriptions",
		Folder:    opts.folder,
		SortByURL: opts.sortByURL,
	})

	w, closeOutput, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if err := doc.Render(w); err != nil {
		_ = closeOutput()
		return err
	}
	return closeOutput()
}
