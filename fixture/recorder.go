package fixture

import "sync"

// Recorder wraps an Exports and counts calls per export name.
type Recorder struct {
	Exports

	mu    sync.Mutex
	calls map[string]int
}

func NewRecorder(e Exports) *Recorder {
	return &Recorder{Exports: e, calls: make(map[string]int)}
}

func (r *Recorder) record(name string) {
	r.mu.Lock()
	r.calls[name]++
	r.mu.Unlock()
}

func (r *Recorder) Foo() string {
	r.record("foo")
	return r.Exports.Foo()
}

func (r *Recorder) Bar() string {
	r.record("bar")
	return r.Exports.Bar()
}

func (r *Recorder) GetCount() int {
	r.record("getCount")
	return r.Exports.GetCount()
}

func (r *Recorder) GetAnotherCount() int {
	r.record("getAnotherCount")
	return r.Exports.GetAnotherCount()
}

// Calls returns a copy of the call counts.
func (r *Recorder) Calls() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.calls))
	for k, v := range r.calls {
		out[k] = v
	}
	return out
}
