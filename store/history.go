package store

import (
	"fmt"
	"reflect"
)

// Event is a status change of an order.
type Event struct {
	Status OrderStatus
	Note   string
}

// History is the ordered list of events of an order. It implements
// node.Sequence.
type History struct {
	events []Event
}

func NewHistory(events ...Event) *History {
	return &History{events: events}
}

func (h *History) Len() int { return len(h.events) }

func (h *History) At(i int) any { return h.events[i] }

func (h *History) SetAt(i int, v any) error {
	e, ok := v.(Event)
	if !ok {
		return fmt.Errorf("history: %T is not an Event", v)
	}

	h.events[i] = e

	return nil
}

func (h *History) Append(v any) error {
	e, ok := v.(Event)
	if !ok {
		return fmt.Errorf("history: %T is not an Event", v)
	}

	h.events = append(h.events, e)

	return nil
}

func (h *History) ElemType() reflect.Type { return reflect.TypeFor[Event]() }

// Events returns a copy of the recorded events.
func (h *History) Events() []Event {
	return append([]Event(nil), h.events...)
}
