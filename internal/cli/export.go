package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/pothole-dashboard/internal/observability"
	"github.com/couchcryptid/pothole-dashboard/internal/pipeline"
	"github.com/couchcryptid/pothole-dashboard/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	Output string
	Seed   bool
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the detection list as the JSON the API serves",
		Long: `Write every displayable record as an indented JSON array, newest first.
With --seed the example dataset is exported from an in-memory store and
no configuration is read. Useful for fixtures and mock data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.Seed, "seed", false, "export the built-in example dataset")

	return cmd
}

func runExport(rootOpts *RootOptions, opts *ExportOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)
	ctx := cmd.Context()

	var (
		s   *store.Store
		err error
	)
	if opts.Seed {
		s, err = store.Open(ctx, store.Options{Driver: store.DriverSQLite, Path: ":memory:"})
		if err != nil {
			return WrapExitError(ExitFailure, "open in-memory store", err)
		}
		if _, err := s.SeedIfEmpty(ctx); err != nil {
			s.Close()
			return WrapExitError(ExitFailure, "seed in-memory store", err)
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if s, err = openStore(ctx, cfg); err != nil {
			return err
		}
	}
	defer s.Close()

	p := pipeline.New(s, nil, f.Logger(), observability.NewMetricsWithRegistry(prometheus.NewRegistry()))
	records, err := p.Detections(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "list detections", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return WrapExitError(ExitFailure, "encode detections", err)
	}
	data = append(data, '\n')

	if opts.Output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.Output, data, 0o600); err != nil {
		return WrapExitError(ExitFailure, "write output", err)
	}
	return f.Success(map[string]any{"path": opts.Output, "records": len(records)}, func(w io.Writer) {
		fmt.Fprintf(w, "Wrote %d records to %s\n", len(records), opts.Output)
	})
}
