// Package initializer provides a reference module whose exports share a
// static initializer that runs once, on first access to any export.
package initializer

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// InitialCount is the value the initializer adds to the count.
const InitialCount = 10

// Module is a lazily initialized module. The zero value is ready to use and
// logs nothing.
type Module struct {
	logger *zap.Logger

	once         sync.Once
	initialized  atomic.Bool
	count        int
	anotherCount int // number of initializer executions
}

func New(logger *zap.Logger) *Module {
	return &Module{logger: logger}
}

func (m *Module) initialize() {
	m.once.Do(func() {
		m.count += InitialCount
		m.anotherCount++
		m.initialized.Store(true)
		if m.logger != nil {
			m.logger.Debug("module initialized",
				zap.Int("count", m.count),
				zap.Int("anotherCount", m.anotherCount))
		}
	})
}

func (m *Module) Foo() string {
	m.initialize()
	return "foo"
}

func (m *Module) Bar() string {
	m.initialize()
	return "bar"
}

func (m *Module) GetCount() int {
	m.initialize()
	return m.count
}

func (m *Module) GetAnotherCount() int {
	m.initialize()
	return m.anotherCount
}

// Initialized reports whether the initializer has run. It does not trigger it.
func (m *Module) Initialized() bool {
	return m.initialized.Load()
}
