package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/menuscrape"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Ledger == nil {
		return fmt.Errorf("history requires the run ledger; remove --no-ledger")
	}

	filter := menuscrape.ResultFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	results, err := deps.Ledger.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", menuscrape.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'menuscrape run' to fetch menus.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range results {
		detail := r.Path
		if r.Status != menuscrape.StatusOK {
			detail = r.Code + ": " + r.Message
		} else if r.Changed {
			detail += " (changed)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.FinishedAt.Local().Format(time.DateTime), r.Source, r.Status, detail)
	}
	return w.Flush()
}
