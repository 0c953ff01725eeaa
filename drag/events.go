package drag

import (
	"log"

	"cornersnap/snap"
)

// EventType defines the kind of event a session publishes.
type EventType int

const (
	// EventGesture carries every raw sample the session accepts.
	EventGesture EventType = iota
	EventDragStarted
	EventDragEnded
	EventDragCancelled
	EventDragFailed
	// EventSettled is published after a release decision, once the move
	// toward the chosen corner has been requested.
	EventSettled

	numEventTypes
)

var eventNames = [numEventTypes]string{
	EventGesture:       "gesture",
	EventDragStarted:   "drag-started",
	EventDragEnded:     "drag-ended",
	EventDragCancelled: "drag-cancelled",
	EventDragFailed:    "drag-failed",
	EventSettled:       "settled",
}

func (t EventType) String() string {
	if t < 0 || t >= numEventTypes {
		return "event(?)"
	}
	return eventNames[t]
}

// Event describes something that happened to a drag session.
type Event struct {
	Type   EventType
	Sample Sample
	// Decision and Target are only set on EventSettled.
	Decision snap.Decision
	Target   snap.Point
	// Host is set on EventDragCancelled when the session cancelled the drag
	// because the host moved the element or disabled dragging.
	Host bool
}

type subscription struct {
	id uint64
	fn func(Event)
}

// Notifier fans events out to registered handlers and, if Events is non-nil,
// to a channel. Every handler is optional.
type Notifier struct {
	Events chan Event

	nextID   uint64
	handlers [numEventTypes][]subscription
}

// NewNotifier returns a notifier with a buffered channel of the given size.
// A size of zero leaves Events nil.
func NewNotifier(buffer int) *Notifier {
	n := &Notifier{}
	if buffer > 0 {
		n.Events = make(chan Event, buffer)
	}
	return n
}

// On registers fn for events of type t. The returned function removes it.
func (n *Notifier) On(t EventType, fn func(Event)) (cancel func()) {
	if n == nil || fn == nil || t < 0 || t >= numEventTypes {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.handlers[t] = append(n.handlers[t], subscription{id: id, fn: fn})
	return func() { n.remove(t, id) }
}

func (n *Notifier) remove(t EventType, id uint64) {
	subs := n.handlers[t]
	for i, s := range subs {
		if s.id == id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscription{}
			n.handlers[t] = subs[:len(subs)-1]
			return
		}
	}
}

// Emit delivers the event through the channel and to the handlers. If the
// channel is full the event is dropped and logged rather than blocking.
func (n *Notifier) Emit(ev Event) {
	if n == nil {
		return
	}
	if n.Events != nil {
		select {
		case n.Events <- ev:
		default:
			log.Printf("event channel full, dropping event: %v", ev.Type)
		}
	}
	if ev.Type < 0 || ev.Type >= numEventTypes {
		return
	}
	// handlers may cancel themselves while we iterate
	subs := append([]subscription(nil), n.handlers[ev.Type]...)
	for _, s := range subs {
		s.fn(ev)
	}
}
