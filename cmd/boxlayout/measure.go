package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-boxlayout/internal/tree"
)

// errNoDocuments is returned when the paths name no layout documents.
var errNoDocuments = errors.New("no layout documents found")

func newMeasureCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "measure [path...]",
		Short: "Measure documents and print their geometry",
		Long: `Measure decodes each YAML or JSON layout document, runs a layout pass over
it and prints every node's frame. Directories contribute the documents they
contain; a path ending in /... is searched recursively. Documents that
declare no viewport, locale or direction take them from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMeasure(cmd.Context(), cmd.OutOrStdout(), args, tree.Format(format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(tree.FormatTable), "output format: table or json")
	return cmd
}

// runMeasure measures every document under args, at most
// layout.concurrency at a time, and writes the reports in argument order.
func (a *app) runMeasure(ctx context.Context, w io.Writer, args []string, format tree.Format) error {
	if format != tree.FormatTable && format != tree.FormatJSON {
		return fmt.Errorf("%w: %q", tree.ErrUnknownFormat, format)
	}
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

	env, err := a.environment()
	if err != nil {
		return err
	}

	reports := make([]tree.Report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Layout.Concurrency)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := measureFile(path, env)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return tree.Encode(w, reports, format)
}

// measureFile decodes, builds and measures the document at path.
func measureFile(path string, env tree.MeasureOptions) (tree.Report, error) {
	t, err := buildFile(path)
	if err != nil {
		return tree.Report{}, err
	}

	env.Logger = env.Logger.With(zap.String("document", path))
	viewport, pending := tree.Measure(t, env)
	env.Logger.Debug("measured",
		zap.Int("nodes", len(t.Order)),
		zap.Int("pending", pending))
	return tree.NewReport(path, viewport, pending, t.Root), nil
}

// buildFile decodes the document at path and builds its tree. Image paths
// resolve against the document's directory.
func buildFile(path string) (*tree.Tree, error) {
	doc, err := tree.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	t, err := tree.Build(doc, tree.BuildOptions{BaseDir: filepath.Dir(path)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
