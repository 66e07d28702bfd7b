package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/tiagrib/webeater"
	"github.com/tiagrib/webeater/eater"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config     webeater.Config
	Resolution *webeater.Resolution
	Eater      *eater.Eater
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"C" help:"Path to configuration file" default:"weat.json"`
	Debug  bool   `help:"Enable debug logging"`
	Silent bool   `help:"Suppress progress and diagnostic output"`

	Get   GetCmd   `cmd:"" help:"Extract readable content from web pages"`
	Hints HintsCmd `cmd:"" help:"Show the combined extraction hints"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URLs        []string `arg:"" help:"Page URLs to extract"`
	Hints       []string `short:"H" help:"Named hint files to apply (repeatable)"`
	Engine      string   `default:"hints" enum:"hints,trafilatura,readability" help:"Extraction engine"`
	Fetcher     string   `default:"browser" enum:"browser,http" help:"Page fetcher"`
	JSON        bool     `help:"Emit JSON instead of markdown"`
	ContentOnly bool     `help:"Omit the title heading from markdown output"`
	Cache       bool     `help:"Cache extracted pages in the local database"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// HintsCmd is the "hints" subcommand.
type HintsCmd struct {
	Hints []string `short:"H" help:"Named hint files to apply (repeatable)"`
	JSON  bool     `help:"Emit the combined hints as JSON"`
}
