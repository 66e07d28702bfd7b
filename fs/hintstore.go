// Package fs provides filesystem-backed hint and configuration storage.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tiagrib/webeater"
)

// Ensure HintStore implements webeater.HintLoader at compile time.
var _ webeater.HintLoader = (*HintStore)(nil)

// HintStore loads named hint files from a directory. A hint named "news" is
// read from <dir>/news.json.
type HintStore struct {
	dir string
}

// NewHintStore creates a HintStore rooted at dir.
// An empty dir falls back to webeater.DefaultHintsDir.
func NewHintStore(dir string) *HintStore {
	if dir == "" {
		dir = webeater.DefaultHintsDir
	}
	return &HintStore{dir: dir}
}

// Load reads and parses the named hint file.
// Returns ENOTFOUND when the file does not exist and EINVALID when it does
// not parse.
func (s *HintStore) Load(name string) (webeater.Hint, error) {
	path := filepath.Join(s.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return webeater.Hint{}, webeater.Errorf(webeater.ENOTFOUND, "hint file %q not found", path)
		}
		return webeater.Hint{}, webeater.Errorf(webeater.EINTERNAL, "reading hint file %q: %v", path, err)
	}
	return webeater.ParseHint(data, name)
}

// EnsureDefault writes the built-in default hints to <dir>/default.json if
// no default hint file exists yet, creating the directory as needed. It
// never overwrites an existing file.
func (s *HintStore) EnsureDefault() error {
	path := filepath.Join(s.dir, webeater.DefaultHintName+".json")
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(webeater.DefaultHint(), "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
