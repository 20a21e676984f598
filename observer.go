package formflat

// Stage names a step of the [ToFormData] pipeline.
type Stage string

const (
	StagePassThrough Stage = "pass_through"
	StageFlatten     Stage = "flatten"
	StageClean       Stage = "clean"
	StageAppend      Stage = "append"
)

// Event describes one completed pipeline step.
//
// Count is the number of entries produced by the step. Removed is the number
// of entries dropped by the clean step. Key is the bracket key of an appended
// field.
type Event struct {
	Stage   Stage
	Key     string
	Count   int
	Removed int
}

// Observer receives pipeline events. Implementations are called
// synchronously from the encoding goroutine and must not retain the event
// beyond the call.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts an ordinary function to the [Observer] interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
