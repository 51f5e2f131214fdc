package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-tracks/internal/scenario"
)

var codec = json.ConfigCompatibleWithStandardLibrary

func newResolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [file...]",
		Short: "Replay scenarios and print their outcomes as JSON",
		Long: `Replay every scenario in the given YAML files (or stdin when no file or "-"
is given) and print one JSON array with the resolved tracks and placements.
Output is indented when --pretty is set or stdout is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := loadScenarios(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			outcomes, err := scenario.RunAll(cmd.Context(), scenarios, a.log, a.cfg.Run.Workers)
			if err != nil {
				return err
			}
			a.log.Info("resolved scenarios", zap.Int("count", len(outcomes)))
			w := cmd.OutOrStdout()
			pretty := a.cfg.Output.Pretty
			if f, ok := w.(*os.File); ok && isTerminal(f) {
				pretty = true
			}
			return writeJSON(w, outcomes, pretty)
		},
	}

	flags := cmd.Flags()
	flags.Bool("pretty", false, "indent the JSON output")
	flags.Int("workers", 0, "scenarios replayed concurrently, 0 for no limit (defaults to run.workers)")
	_ = a.v.BindPFlag("output.pretty", flags.Lookup("pretty"))
	_ = a.v.BindPFlag("run.workers", flags.Lookup("workers"))
	return cmd
}

// loadScenarios reads every file in paths in order. No paths, or "-",
// reads stdin.
func loadScenarios(stdin io.Reader, paths []string) ([]scenario.Scenario, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var all []scenario.Scenario
	for _, path := range paths {
		var (
			got []scenario.Scenario
			err error
		)
		if path == "-" {
			got, err = scenario.Load(stdin)
		} else {
			got, err = scenario.LoadFile(path)
		}
		if err != nil {
			return nil, err
		}
		all = append(all, got...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no scenarios in %v", paths)
	}
	return all, nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = codec.MarshalIndent(v, "", "  ")
	} else {
		data, err = codec.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode outcomes: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
