package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Decode and build documents without measuring",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	return cmd
}

// runCheck builds every document under args and reports each failure to
// errOut. Unlike measure it keeps going after a bad document.
func (a *app) runCheck(out, errOut io.Writer, args []string, verbose bool) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectDocuments(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errNoDocuments
	}

	if verbose {
		fmt.Fprintf(out, "Checking %d document(s)\n", len(files))
	}

	var errorCount int
	for _, path := range files {
		if verbose {
			fmt.Fprintf(out, "Checking %s\n", path)
		}
		t, err := buildFile(path)
		if err != nil {
			fmt.Fprintf(errOut, "%v\n", err)
			errorCount++
			continue
		}
		if verbose {
			fmt.Fprintf(out, "  %d node(s)\n", len(t.Order))
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d document(s) had errors", errorCount)
	}

	if verbose {
		fmt.Fprintf(out, "All %d document(s) passed checks\n", len(files))
	}
	return nil
}
