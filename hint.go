package webeater

import (
	"encoding/json"
	"fmt"
)

// RemovalRule lists the noise elements deleted from a document before
// content selection. Members are matched exactly: an element is removed when
// its tag name is in Tags, any of its class tokens is in Classes, or its id
// attribute is in IDs. Each list is deduplicated, first occurrence first.
type RemovalRule struct {
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Classes []string `json:"classes,omitempty" yaml:"classes,omitempty"`
	IDs     []string `json:"ids,omitempty" yaml:"ids,omitempty"`
}

// Empty reports whether the rule has no members.
func (r RemovalRule) Empty() bool {
	return len(r.Tags) == 0 && len(r.Classes) == 0 && len(r.IDs) == 0
}

// MainContentRule is an ordered CSS selector fallback chain for locating the
// primary readable region. Order is significant: the first selector that
// matches a node with non-trivial content wins.
type MainContentRule struct {
	Selectors []string `json:"selectors,omitempty" yaml:"selectors,omitempty"`
}

// UnmarshalJSON accepts both the object form {"selectors": [...]} and the
// legacy bare-array form [...] used by older hint files.
func (m *MainContentRule) UnmarshalJSON(data []byte) error {
	// objectForm drops the custom unmarshaler to avoid recursion.
	type objectForm MainContentRule
	var obj objectForm
	if err := json.Unmarshal(data, &obj); err == nil {
		*m = MainContentRule(obj)
		return nil
	}

	var selectors []string
	if err := json.Unmarshal(data, &selectors); err != nil {
		return fmt.Errorf("main must be an object with selectors or a list of selectors: %w", err)
	}
	m.Selectors = selectors
	return nil
}

// Hint is a named bundle of removal and main-content rules contributed by
// one source. Either half may be empty. Hints are value types: merging never
// mutates its inputs, and a resolved Hint is safe to share across
// concurrent extractions.
type Hint struct {
	Remove RemovalRule     `json:"remove,omitempty" yaml:"remove,omitempty"`
	Main   MainContentRule `json:"main,omitempty" yaml:"main,omitempty"`
}

// Empty reports whether the hint contributes nothing.
func (h Hint) Empty() bool {
	return h.Remove.Empty() && len(h.Main.Selectors) == 0
}

// String returns a compact summary for logging.
func (h Hint) String() string {
	return fmt.Sprintf("hint(%d tags, %d classes, %d ids, %d selectors)",
		len(h.Remove.Tags), len(h.Remove.Classes), len(h.Remove.IDs), len(h.Main.Selectors))
}

// ParseHint decodes one hint source's JSON data. Missing remove or main
// sections yield empty sub-rules. Malformed data returns an EINVALID error
// naming the offending source.
func ParseHint(data []byte, source string) (Hint, error) {
	var h Hint
	if err := json.Unmarshal(data, &h); err != nil {
		return Hint{}, Errorf(EINVALID, "hint source %q: %v", source, err)
	}
	return h, nil
}

// DefaultHint returns the built-in removal rules and selector chain used to
// seed the mandatory default hint source on first run.
func DefaultHint() Hint {
	return Hint{
		Remove: RemovalRule{
			Tags:    []string{"script", "style", "noscript", "nav", "header", "footer", "iframe", "form", "button"},
			Classes: []string{"ad", "ads", "advertisement", "sidebar", "popup", "cookie-banner", "menu", "navigation"},
			IDs:     []string{"header", "footer", "sidebar", "comments"},
		},
		Main: MainContentRule{
			Selectors: []string{"main", "article", "[role=main]", "#main-content", ".main-content", "#content", ".content"},
		},
	}
}

// MergeHints combines an ordered sequence of hints into one. Tag, class, and
// id lists are unioned; selector sequences are concatenated in input order.
// All four lists keep the first occurrence of each member and drop later
// duplicates, so a selector contributed by an earlier source keeps its
// earlier rank. Merging nothing yields an empty hint.
func MergeHints(records ...Hint) Hint {
	var merged Hint
	for _, r := range records {
		merged.Remove.Tags = mergeUnique(merged.Remove.Tags, r.Remove.Tags)
		merged.Remove.Classes = mergeUnique(merged.Remove.Classes, r.Remove.Classes)
		merged.Remove.IDs = mergeUnique(merged.Remove.IDs, r.Remove.IDs)
		merged.Main.Selectors = mergeUnique(merged.Main.Selectors, r.Main.Selectors)
	}
	return merged
}

// mergeUnique appends members of src not already present in dst.
// Matching is case-sensitive and exact.
func mergeUnique(dst, src []string) []string {
	if len(src) == 0 {
		return dst
	}
	seen := make(map[string]struct{}, len(dst)+len(src))
	for _, v := range dst {
		seen[v] = struct{}{}
	}
	for _, v := range src {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}
