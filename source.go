package webeater

import "strings"

// Origin identifies where a hint source came from. Sources are resolved in
// the order the constants are listed: the default hints always load first,
// followed by files named in the main configuration, the configuration's
// inline hints section, names passed on the command line, and finally names
// supplied programmatically by an embedding caller.
type Origin string

// Origin constants, in resolution order.
const (
	OriginDefault      Origin = "default"
	OriginConfigFile   Origin = "config-file-named"
	OriginConfigInline Origin = "config-file-inline"
	OriginCLI          Origin = "cli-named"
	OriginLibrary      Origin = "library-named"
)

// Source identifies one origin contributing hints.
type Source struct {
	Origin Origin `json:"origin"`
	Name   string `json:"name,omitempty"`
}

// String returns the source identifier used in diagnostics and cache keys.
func (s Source) String() string {
	if s.Name == "" {
		return string(s.Origin)
	}
	return string(s.Origin) + ":" + s.Name
}

// Signature returns a deterministic key for an ordered source list. Two
// resolutions over the same source list produce the same signature, which
// makes it suitable as a HintCache key.
func Signature(sources []Source) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = s.String()
	}
	return strings.Join(parts, "|")
}

// Diagnostic reports a recoverable problem encountered while resolving hint
// sources or evaluating selectors. Diagnostics are returned alongside
// best-effort results rather than aborting them.
type Diagnostic struct {
	// Source identifies what failed: a hint source (e.g. "cli-named:news")
	// or a selector (e.g. "selector:div[").
	Source string `json:"source"`

	// Code is the application error code describing the failure.
	Code string `json:"code"`

	// Message is the human-readable reason.
	Message string `json:"message"`
}
