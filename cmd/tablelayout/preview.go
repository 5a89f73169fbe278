package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-tablelayout/internal/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	var cols, rows int
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Draw a solved layout as boxes in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPreview(cmd.OutOrStdout(), args[0], cols, rows)
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().IntVar(&cols, "cols", 0, "canvas columns (default terminal width)")
	cmd.Flags().IntVar(&rows, "rows", 0, "canvas rows (default terminal height)")
	cmd.Flags().String("border", "", "border style: single, double, rounded, thick, ascii or none")
	return cmd
}

func (a *app) runPreview(out io.Writer, path string, cols, rows int) error {
	border, err := preview.ParseBorderStyle(a.cfg.Preview.Border)
	if err != nil {
		return err
	}
	sol, err := a.solveFile(path)
	if err != nil {
		return err
	}

	if cols <= 0 || rows <= 0 {
		termCols, termRows := terminalSize(out)
		if cols <= 0 {
			cols = termCols
		}
		if rows <= 0 {
			// Leave a line for the prompt.
			rows = max(termRows-1, 1)
		}
	}
	a.log.Debug("drawing preview", zap.Int("cols", cols), zap.Int("rows", rows))

	canvas := preview.Text(sol, cols, rows, border)
	_, err = fmt.Fprintln(out, canvas.StringTrimmed())
	return err
}

// terminalSize queries out when it is a terminal, falling back to the
// default size otherwise.
func terminalSize(out io.Writer) (cols, rows int) {
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		cols, rows, _ = preview.TerminalSize(f.Fd())
		return cols, rows
	}
	return preview.DefaultCols, preview.DefaultRows
}

func newRenderCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a solved layout to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(args[0], output)
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write (default FILE with a .png extension)")
	cmd.Flags().Int("scale", 0, "pixels per layout unit (default 1)")
	return cmd
}

func (a *app) runRender(path, output string) error {
	sol, err := a.solveFile(path)
	if err != nil {
		return err
	}
	if output == "" {
		output = path[:len(path)-len(filepath.Ext(path))] + ".png"
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := preview.WritePNG(f, sol, a.cfg.Preview.Scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	a.log.Info("wrote preview image", zap.String("path", output), zap.Int("scale", a.cfg.Preview.Scale))
	return nil
}
