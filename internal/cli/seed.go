package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// SeedResult reports what the seed command did.
type SeedResult struct {
	Inserted int `json:"inserted"`
	Total    int `json:"total"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the store with the example dataset if it is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(rootOpts, cmd)
		},
	}
}

func runSeed(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	inserted, err := s.SeedIfEmpty(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "seed store", err)
	}
	total, err := s.Count(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "count records", err)
	}

	res := SeedResult{Inserted: inserted, Total: total}
	return f.Success(res, func(w io.Writer) {
		if inserted == 0 {
			fmt.Fprintf(w, "Store already populated (%d records)\n", total)
			return
		}
		fmt.Fprintf(w, "Seeded %d records\n", inserted)
	})
}
