package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/feedtools/subsync/pkg/errors"
)

// openOutput returns the writer a command should render into: the file
// at path when one is given, the command's stdout otherwise. The
// returned close func is a no-op for stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.WrapIO("create", path, err)
	}
	return f, f.Close, nil
}
