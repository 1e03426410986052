package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/analytics"
	"github.com/couchcryptid/pothole-dashboard/internal/dashboard"
	"github.com/spf13/cobra"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	URL     string
	Type    string
	Status  string
	Timeout time.Duration
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch detections from a running API and print the analytics summary",
		Long: `Fetch the record list once from a running API (DASHBOARD_URL or --url)
and print the derived analytics. An unreachable API produces an empty report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.URL, "url", "", "API base URL (defaults to DASHBOARD_URL)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "only include one category (A|B|C)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "only include hazard or clear records")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "request timeout")

	return cmd
}

func runReport(rootOpts *RootOptions, opts *ReportOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)

	filter, err := analytics.ParseFilter(opts.Type, opts.Status)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid filter", err)
	}

	url := opts.URL
	if url == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		url = cfg.DashboardURL
	}

	view := dashboard.NewView(f.Logger())
	// A failed fetch leaves the view empty; the report still renders.
	_ = view.Load(cmd.Context(), dashboard.NewClient(url, opts.Timeout))
	view.SetFilter(filter)

	summary := view.Summary()
	return f.Success(summary, func(w io.Writer) {
		writeSummary(w, summary)
	})
}

func writeSummary(w io.Writer, s analytics.Summary) {
	fmt.Fprintf(w, "Total detections:   %d\n", s.TotalDetections)
	fmt.Fprintf(w, "Large hazards:      %d\n", s.LargeHazards)
	fmt.Fprintf(w, "Average confidence: %.1f%%\n", s.AverageConfidence)
	fmt.Fprintf(w, "Hazard / clear:     %d / %d\n", s.Status.Hazard, s.Status.Clear)

	if s.TotalDetections == 0 {
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCOUNT\tSHARE")
	for _, d := range s.Distribution {
		fmt.Fprintf(tw, "%s\t%d\t%d%%\n", d.Name, d.Count, d.Share)
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCONFIDENCE")
	for _, r := range s.Rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.ID, r.Label)
	}
	tw.Flush()
}
