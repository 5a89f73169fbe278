package main

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-tablelayout/internal/document"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve layout documents and print cell placements",
		Long: `Solve every layout document and print one line per cell:

  id x y width height

Documents are solved concurrently; output keeps the argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().Bool("strict", false, "exit non-zero when a layout overflows its target")
	cmd.Flags().Int("workers", 0, "documents solved concurrently (default 4)")
	cmd.Flags().StringP("format", "f", "", "output format: text or json (default text)")
	return cmd
}

// solvedFile is one document's solution as printed in JSON output.
type solvedFile struct {
	Path       string               `json:"path"`
	Width      float32              `json:"width"`
	Height     float32              `json:"height"`
	Placements []document.Placement `json:"placements"`
	Overflow   *overflow            `json:"overflow,omitempty"`
}

type overflow struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func (a *app) runSolve(ctx context.Context, out io.Writer, paths []string) error {
	solutions, err := a.solveAll(ctx, paths)
	if err != nil {
		return err
	}

	var problems error
	for i, sol := range solutions {
		if err := sol.Result.Err(); err != nil {
			a.log.Warn("layout overflows its target",
				zap.String("path", paths[i]),
				zap.Float32("overflow_width", sol.Result.Overflow.Width),
				zap.Float32("overflow_height", sol.Result.Overflow.Height))
			if a.cfg.Solve.Strict {
				problems = multierr.Append(problems, fmt.Errorf("%s: %w", paths[i], err))
			}
		}
	}

	switch a.cfg.Output.Format {
	case "json":
		err = writeJSON(out, paths, solutions)
	default:
		err = writeText(out, paths, solutions)
	}
	return multierr.Combine(err, problems)
}

// solveAll loads and solves paths on at most cfg.Solve.Workers goroutines.
// Results are returned in the order of paths.
func (a *app) solveAll(ctx context.Context, paths []string) ([]document.Solution, error) {
	solutions := make([]document.Solution, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Solve.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sol, err := a.solveFile(path)
			if err != nil {
				return err
			}
			solutions[i] = sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return solutions, nil
}

func (a *app) solveFile(path string) (document.Solution, error) {
	doc, err := document.Load(path)
	if err != nil {
		return document.Solution{}, err
	}
	sol, err := document.Solve(doc, a.cfg.Solve.Width, a.cfg.Solve.Height)
	if err != nil {
		return document.Solution{}, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("solved document",
		zap.String("path", path),
		zap.Int("rows", sol.Result.Rows),
		zap.Int("cols", sol.Result.Columns),
		zap.Int("placed", sol.Result.Placed))
	return sol, nil
}

func writeText(out io.Writer, paths []string, solutions []document.Solution) error {
	for i, sol := range solutions {
		if len(paths) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(out, "# %s\n", paths[i]); err != nil {
				return err
			}
		}
		for _, p := range sol.Placements {
			if _, err := fmt.Fprintf(out, "%s %g %g %g %g\n", p.ID, p.X, p.Y, p.Width, p.Height); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(out io.Writer, paths []string, solutions []document.Solution) error {
	files := make([]solvedFile, len(solutions))
	for i, sol := range solutions {
		f := solvedFile{
			Path:       paths[i],
			Width:      sol.Width,
			Height:     sol.Height,
			Placements: sol.Placements,
		}
		if f.Placements == nil {
			f.Placements = []document.Placement{}
		}
		if sol.Result.OverConstrained() {
			f.Overflow = &overflow{Width: sol.Result.Overflow.Width, Height: sol.Result.Overflow.Height}
		}
		files[i] = f
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(files)
}
