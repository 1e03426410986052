package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/couchcryptid/pothole-dashboard/internal/analytics"
	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/couchcryptid/pothole-dashboard/internal/observability"
	"github.com/couchcryptid/pothole-dashboard/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	Type   string
	Status string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List detections, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "only show one category (A|B|C)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "only show hazard or clear records")

	return cmd
}

func runList(rootOpts *RootOptions, opts *ListOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)
	ctx := cmd.Context()

	filter, err := analytics.ParseFilter(opts.Type, opts.Status)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid filter", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	p := pipeline.New(s, nil, f.Logger(), observability.NewMetricsWithRegistry(prometheus.NewRegistry()))
	records, err := p.Detections(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "list detections", err)
	}
	records = analytics.Apply(records, filter)

	return f.Success(records, func(w io.Writer) {
		writeRecordTable(w, records)
	})
}

func writeRecordTable(w io.Writer, records []domain.DisplayRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No detections.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCAPTURED\tTYPE\tSTATUS\tCONFIDENCE\tCOORDINATES")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f%%\t%s\n",
			r.ID, r.CapturedAt, r.Category.LongLabel(), domain.Status(r.HazardDetected),
			domain.MaxConfidence(r)*100, r.Coordinates)
	}
	tw.Flush()
}
