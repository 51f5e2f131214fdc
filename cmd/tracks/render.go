package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-tracks/internal/render"
	"github.com/grindlemire/go-tracks/internal/scenario"
)

// Pixel size of one terminal cell in the preview font.
const (
	cellWidth  = 7
	cellHeight = 13
)

// terminal is the file whose size --fit-terminal reads.
var terminal = os.Stdout

func newRenderCmd(a *app) *cobra.Command {
	var (
		outDir string
		only   string
		fit    bool
	)

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Draw each scenario's final layout to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := loadScenarios(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if only != "" {
				scenarios = filterScenarios(scenarios, only)
				if len(scenarios) == 0 {
					return fmt.Errorf("no scenario named %q", only)
				}
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			outcomes, err := scenario.RunAll(cmd.Context(), scenarios, a.log, a.cfg.Run.Workers)
			if err != nil {
				return err
			}

			opts := render.Options{
				Width:      a.cfg.Render.Width,
				Height:     a.cfg.Render.Height,
				CellLabels: a.cfg.Render.CellLabels,
				ItemWidth:  a.cfg.Render.ItemWidth,
				ItemHeight: a.cfg.Render.ItemHeight,
			}
			if fit {
				cols, rows, ok := terminalSize(terminal)
				if !ok {
					return fmt.Errorf("--fit-terminal: %s is not a terminal", terminal.Name())
				}
				opts.Width, opts.Height = cols*cellWidth, rows*cellHeight
			}

			var g errgroup.Group
			if a.cfg.Run.Workers > 0 {
				g.SetLimit(a.cfg.Run.Workers)
			}
			for _, out := range outcomes {
				path := filepath.Join(outDir, fileName(out.Name)+".png")
				g.Go(func() error {
					r := render.NewRenderer(opts)
					items := r.Render(out.Layout())
					if err := r.SavePNG(path); err != nil {
						return err
					}
					a.log.Info("rendered", zap.String("scenario", out.Name), zap.String("path", path), zap.Int("items", len(items)))
					fmt.Fprintln(cmd.OutOrStdout(), path)
					return nil
				})
			}
			return g.Wait()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&outDir, "out", "o", ".", "directory the PNG files are written to")
	flags.StringVar(&only, "scenario", "", "render only the scenario with this name")
	flags.BoolVar(&fit, "fit-terminal", false, "size the image to the current terminal")
	flags.Int("width", 0, "image width in pixels")
	flags.Int("height", 0, "image height in pixels")
	flags.Bool("labels", true, "print item ids and cells")
	_ = a.v.BindPFlag("render.width", flags.Lookup("width"))
	_ = a.v.BindPFlag("render.height", flags.Lookup("height"))
	_ = a.v.BindPFlag("render.cell_labels", flags.Lookup("labels"))
	return cmd
}

func filterScenarios(all []scenario.Scenario, name string) []scenario.Scenario {
	var out []scenario.Scenario
	for _, sc := range all {
		if sc.Name == name {
			out = append(out, sc)
		}
	}
	return out
}

// fileName keeps a scenario name usable as a file name.
func fileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}
