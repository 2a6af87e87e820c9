package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for _, s := range deps.Catalog.Sources() {
		location := s.URL
		if s.URLTemplate != "" {
			ids := make([]string, len(s.PageIDs))
			for i, id := range s.PageIDs {
				ids[i] = fmt.Sprint(id)
			}
			location = s.URLTemplate + " [" + strings.Join(ids, ",") + "]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Strategy, s.FileName(), location)
	}
	return w.Flush()
}
