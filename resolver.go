package webeater

import "log/slog"

// HintLoader loads named hint records from storage.
type HintLoader interface {
	// Load returns the hint with the given name.
	// Returns ENOTFOUND if no hint by that name exists and EINVALID if the
	// hint exists but cannot be parsed.
	Load(name string) (Hint, error)
}

// Resolution holds the outcome of resolving hint sources: the merged hint
// actually applied to documents, the sources that were considered in
// precedence order, and diagnostics for any source that could not
// contribute. A Resolution is immutable after construction and safe to
// share across concurrent extraction sessions.
type Resolution struct {
	Hints       Hint
	Sources     []Source
	Diagnostics []Diagnostic
}

// Signature returns the cache key for the source list this resolution
// covers.
func (r *Resolution) Signature() string {
	return Signature(r.Sources)
}

// Resolver combines hints from all configured sources into a single record.
// Resolution is deterministic: identical inputs always yield an identical
// merged hint and diagnostics.
type Resolver struct {
	Loader HintLoader
	Logger *slog.Logger
}

// Resolve loads and merges hints in fixed precedence order: the mandatory
// default hints, files named in the configuration, the configuration's
// inline hints, CLI-named files, and library-supplied names.
//
// A missing named file is a non-fatal omission reported as an ENOTFOUND
// diagnostic; a malformed file is reported as an EINVALID diagnostic and
// only that source's contribution is dropped. Only a missing or malformed
// default source is fatal (ECONFIG). Each name is loaded once: repeats in
// later sources are skipped.
func (r *Resolver) Resolve(cfg *Config, cliNames, libraryNames []string) (*Resolution, error) {
	res := &Resolution{}

	defaultHint, err := r.Loader.Load(DefaultHintName)
	if err != nil {
		return nil, Errorf(ECONFIG, "default hints unavailable: %s", ErrorMessage(err))
	}
	res.Sources = append(res.Sources, Source{Origin: OriginDefault, Name: DefaultHintName})
	records := []Hint{defaultHint}

	loaded := map[string]struct{}{DefaultHintName: {}}
	loadNamed := func(origin Origin, names []string) {
		for _, name := range names {
			if _, ok := loaded[name]; ok {
				continue
			}
			loaded[name] = struct{}{}

			src := Source{Origin: origin, Name: name}
			hint, err := r.Loader.Load(name)
			if err != nil {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Source:  src.String(),
					Code:    ErrorCode(err),
					Message: ErrorMessage(err),
				})
				if r.Logger != nil {
					r.Logger.Warn("hint source skipped", "source", src.String(), "reason", ErrorMessage(err))
				}
				continue
			}
			res.Sources = append(res.Sources, src)
			records = append(records, hint)
		}
	}

	loadNamed(OriginConfigFile, cfg.HintFiles)

	if cfg.Hints != nil {
		res.Sources = append(res.Sources, Source{Origin: OriginConfigInline})
		records = append(records, *cfg.Hints)
	}

	loadNamed(OriginCLI, cliNames)
	loadNamed(OriginLibrary, libraryNames)

	res.Hints = MergeHints(records...)
	if r.Logger != nil {
		r.Logger.Debug("hints resolved",
			"sources", len(res.Sources),
			"skipped", len(res.Diagnostics),
			"hints", res.Hints.String(),
		)
	}
	return res, nil
}
