package mock

import "github.com/tiagrib/webeater"

var _ webeater.HintLoader = (*HintLoader)(nil)

// HintLoader is a mock implementation of webeater.HintLoader.
type HintLoader struct {
	LoadFn func(name string) (webeater.Hint, error)
}

func (l *HintLoader) Load(name string) (webeater.Hint, error) {
	return l.LoadFn(name)
}
