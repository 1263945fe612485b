package cli

import (
	"github.com/spf13/cobra"

	"github.com/okarpenko/pitstop/internal/domain"
	"github.com/okarpenko/pitstop/internal/schedule"
)

// filterFlags are the list/export filter options shared by both commands.
type filterFlags struct {
	from  string
	to    string
	types []string
	query string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Earliest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Latest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&f.types, "type", nil, "Issue type to match (repeatable)")
	cmd.Flags().StringVar(&f.query, "search", "", "Case-insensitive search over name, contact and notes")
}

func (f *filterFlags) toFilter() (schedule.Filter, error) {
	var out schedule.Filter

	if f.from != "" {
		d, err := domain.ParseDate(f.from)
		if err != nil {
			return out, err
		}
		out.From = &d
	}
	if f.to != "" {
		d, err := domain.ParseDate(f.to)
		if err != nil {
			return out, err
		}
		out.To = &d
	}
	out.IssueTypes = f.types
	out.Query = f.query

	return out, nil
}
