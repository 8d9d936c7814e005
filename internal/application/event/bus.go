package event

// Type identifies a presentation event
type Type int

const (
	RunStarted Type = iota
	Collected
	HazardHit
	GoalReached
)

// String returns the string representation of the event type
func (t Type) String() string {
	switch t {
	case RunStarted:
		return "RunStarted"
	case Collected:
		return "Collected"
	case HazardHit:
		return "HazardHit"
	case GoalReached:
		return "GoalReached"
	default:
		return "Unknown"
	}
}

// Event is a fire-and-forget notification. Value carries the score gain
// for Collected, Seed the layout seed for RunStarted, X/Y the world
// position of the source where one exists.
type Event struct {
	Type  Type
	Value int
	Seed  int64
	X, Y  float64
}

// Handler consumes events. Handlers must not feed back into game state.
type Handler func(Event)

// Bus fans events out synchronously, in subscription order
type Bus struct {
	handlers map[Type][]Handler
	all      []Handler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for one event type
func (b *Bus) Subscribe(t Type, h Handler) {
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers a handler for every event type
func (b *Bus) SubscribeAll(h Handler) {
	b.all = append(b.all, h)
}

// Emit delivers an event to its type handlers, then to catch-all handlers
func (b *Bus) Emit(e Event) {
	for _, h := range b.handlers[e.Type] {
		h(e)
	}
	for _, h := range b.all {
		h(e)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (b *Bus) HandlerCount(t Type) int {
	return len(b.handlers[t]) + len(b.all)
}
