package mock

import "github.com/fwojciec/optdoc"

var _ optdoc.OptionLoader = (*OptionLoader)(nil)

// OptionLoader is a mock implementation of optdoc.OptionLoader.
type OptionLoader struct {
	LoadOptionsFn func(path string) (map[string]optdoc.OptionDocumentation, error)
}

func (l *OptionLoader) LoadOptions(path string) (map[string]optdoc.OptionDocumentation, error) {
	return l.LoadOptionsFn(path)
}
