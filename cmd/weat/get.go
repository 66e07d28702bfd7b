package main

import (
	"encoding/json"
	"fmt"

	"github.com/tiagrib/webeater"
	"github.com/tiagrib/webeater/eater"
)

// pageOutput is the JSON shape emitted for each extracted page.
type pageOutput struct {
	URL         string                `json:"url"`
	Title       string                `json:"title"`
	Content     string                `json:"content"`
	Selector    string                `json:"selector,omitempty"`
	Removed     int                   `json:"removed,omitempty"`
	Images      []webeater.Image      `json:"images,omitempty"`
	Links       []webeater.Link       `json:"links,omitempty"`
	Diagnostics []webeater.Diagnostic `json:"diagnostics,omitempty"`
	Cached      bool                  `json:"cached,omitempty"`
}

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	for _, d := range deps.Resolution.Diagnostics {
		deps.Logger.Warn("hint source skipped", "source", d.Source, "reason", d.Message)
	}

	if len(c.URLs) == 1 {
		result, err := deps.Eater.Get(deps.Ctx, c.URLs[0])
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webeater.ErrorMessage(err))
			return err
		}
		return c.write(deps, result)
	}

	progress := func(event eater.ProgressEvent) {
		switch event.Type {
		case eater.ProgressCompleted:
			deps.Logger.Info("page extracted", "url", event.URL, "completed", event.Completed, "total", event.Total)
		case eater.ProgressFailed:
			deps.Logger.Warn("page failed", "url", event.URL, "error", event.Error)
		}
	}

	batch, err := deps.Eater.GetAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	if c.JSON {
		outputs := make([]pageOutput, 0, len(batch.Results))
		for _, result := range batch.Results {
			if result == nil {
				continue
			}
			outputs = append(outputs, toOutput(result))
		}
		if err := writeJSON(deps, outputs); err != nil {
			return err
		}
		if batch.Failed > 0 {
			return fmt.Errorf("%d of %d pages failed", batch.Failed, len(c.URLs))
		}
		return nil
	}

	first := true
	for _, result := range batch.Results {
		if result == nil {
			continue
		}
		if !first {
			fmt.Fprintln(deps.Stdout, "\n---")
		}
		first = false
		if err := c.write(deps, result); err != nil {
			return err
		}
	}

	if batch.Failed > 0 {
		return fmt.Errorf("%d of %d pages failed", batch.Failed, len(c.URLs))
	}
	return nil
}

// write emits a single result as markdown or JSON.
func (c *GetCmd) write(deps *Dependencies, result *eater.Result) error {
	for _, d := range result.Diagnostics {
		deps.Logger.Warn("selector skipped", "source", d.Source, "reason", d.Message)
	}

	if c.JSON {
		return writeJSON(deps, toOutput(result))
	}

	if result.Title != "" && !c.ContentOnly {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintln(deps.Stdout, result.Markdown)
	return nil
}

func toOutput(result *eater.Result) pageOutput {
	return pageOutput{
		URL:         result.URL,
		Title:       result.Title,
		Content:     result.Markdown,
		Selector:    result.Selector,
		Removed:     result.Removed,
		Images:      result.Images,
		Links:       result.Links,
		Diagnostics: result.Diagnostics,
		Cached:      result.Cached,
	}
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
