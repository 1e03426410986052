package cli

import (
	"fmt"
	"io"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

// RowIssue describes one stored row that cannot be displayed.
type RowIssue struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// ValidateResult summarizes an audit of the store.
type ValidateResult struct {
	Checked   int        `json:"checked"`
	Malformed []RowIssue `json:"malformed"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Audit every stored row",
		Long: `Check every stored row the way the API does before serving it, and
that each category code maps to a label and back. Exits 1 when any row
is malformed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(rootOpts, cmd)
		},
	}
}

func runValidate(rootOpts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(rootOpts, cmd)
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

	rows, err := s.ListAll(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "read detections", err)
	}

	res := ValidateResult{Checked: len(rows), Malformed: []RowIssue{}}
	for _, d := range rows {
		if err := auditRow(d); err != nil {
			res.Malformed = append(res.Malformed, RowIssue{ID: d.ID, Reason: err.Error()})
		}
	}

	if len(res.Malformed) > 0 {
		if err := f.Error(fmt.Sprintf("%d of %d rows malformed", len(res.Malformed), res.Checked), res.Malformed); err != nil {
			return err
		}
		if f.Format == "text" {
			for _, issue := range res.Malformed {
				fmt.Fprintf(f.Writer, "  %s: %s\n", issue.ID, issue.Reason)
			}
		}
		return NewExitError(ExitFailure, "validation failed")
	}

	return f.Success(res, func(w io.Writer) {
		fmt.Fprintf(w, "All %d rows valid\n", res.Checked)
	})
}

func auditRow(d domain.Detection) error {
	if err := d.Validate(); err != nil {
		return err
	}
	back, err := domain.CategoryFromLabel(d.Category.Label())
	if err != nil {
		return err
	}
	if back != d.Category {
		return fmt.Errorf("category %q round-trips to %q", d.Category, back)
	}
	return nil
}
