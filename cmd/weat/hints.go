package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Run executes the hints command.
func (c *HintsCmd) Run(deps *Dependencies) error {
	res := deps.Resolution

	if c.JSON {
		out := struct {
			Hints       any `json:"hints"`
			Sources     any `json:"sources"`
			Diagnostics any `json:"diagnostics,omitempty"`
		}{
			Hints:       res.Hints,
			Sources:     res.Sources,
			Diagnostics: res.Diagnostics,
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "    ")
		return enc.Encode(out)
	}

	fmt.Fprintln(deps.Stdout, "Sources:")
	for _, src := range res.Sources {
		fmt.Fprintf(deps.Stdout, "  %s\n", src)
	}

	fmt.Fprintln(deps.Stdout, "\nRemove:")
	fmt.Fprintf(deps.Stdout, "  tags:    %s\n", strings.Join(res.Hints.Remove.Tags, ", "))
	fmt.Fprintf(deps.Stdout, "  classes: %s\n", strings.Join(res.Hints.Remove.Classes, ", "))
	fmt.Fprintf(deps.Stdout, "  ids:     %s\n", strings.Join(res.Hints.Remove.IDs, ", "))

	fmt.Fprintln(deps.Stdout, "\nMain content selectors:")
	for _, sel := range res.Hints.Main.Selectors {
		fmt.Fprintf(deps.Stdout, "  %s\n", sel)
	}

	if len(res.Diagnostics) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSkipped sources:")
		for _, d := range res.Diagnostics {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", d.Source, d.Message)
		}
	}

	return nil
}
