package initializer

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFirstAccessInitializes(t *testing.T) {
	for _, first := range []string{"foo", "bar", "getCount", "getAnotherCount"} {
		t.Run(first, func(t *testing.T) {
			m := New(nil)
			if m.Initialized() {
				t.Fatal("initialized before any export was called")
			}
			switch first {
			case "foo":
				m.Foo()
			case "bar":
				m.Bar()
			case "getCount":
				m.GetCount()
			case "getAnotherCount":
				m.GetAnotherCount()
			}
			if !m.Initialized() {
				t.Fatalf("%s() did not run the initializer", first)
			}
			if got := m.GetCount(); got != InitialCount {
				t.Errorf("GetCount() = %d, want %d", got, InitialCount)
			}
			if got := m.GetAnotherCount(); got != 1 {
				t.Errorf("GetAnotherCount() = %d, want 1", got)
			}
		})
	}
}

func TestConcurrentFirstAccess(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := New(zap.New(core))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := m.GetAnotherCount(); got != 1 {
				t.Errorf("GetAnotherCount() = %d, want 1", got)
			}
			if got := m.GetCount(); got != InitialCount {
				t.Errorf("GetCount() = %d, want %d", got, InitialCount)
			}
		}()
	}
	wg.Wait()

	if n := logs.FilterMessage("module initialized").Len(); n != 1 {
		t.Errorf("initializer logged %d times, want 1", n)
	}
}

func TestZeroValue(t *testing.T) {
	var m Module
	if m.Foo() != "foo" || m.Bar() != "bar" {
		t.Fatal("unexpected constant exports")
	}
	if m.GetCount() != InitialCount || m.GetAnotherCount() != 1 {
		t.Fatalf("counts = %d, %d", m.GetCount(), m.GetAnotherCount())
	}
}
