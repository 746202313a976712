package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout/internal/tree"
)

// errNoHit is returned when no visible node covers the point.
var errNoHit = errors.New("no node at point")

func newHitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hit <document> <x> <y>",
		Short: "Print the node under a point of a measured document",
		Long: `Hit measures one document and prints the path of node ids, from the root
down, to the deepest visible node whose frame contains the point. The point is
in the root's coordinates.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			return a.runHit(cmd.OutOrStdout(), args[0], x, y)
		},
	}
}

func (a *app) runHit(w io.Writer, path string, x, y float64) error {
	env, err := a.environment()
	if err != nil {
		return err
	}
	t, err := buildFile(path)
	if err != nil {
		return err
	}
	tree.Measure(t, env)

	hit := t.Root.HitTest(x, y)
	if hit == nil {
		return fmt.Errorf("%w (%v, %v)", errNoHit, x, y)
	}
	env.Logger.Debug("hit",
		zap.String("document", path),
		zap.String("node", hit.ID()),
		zap.Stringer("frame", hit.AbsoluteRect()))

	var ids []string
	for n := hit; n != nil; n = n.Parent() {
		ids = append(ids, n.ID())
	}
	slices.Reverse(ids)
	fmt.Fprintln(w, strings.Join(ids, " > "))
	return nil
}
