package validator

import "context"

// EventType names a validation lifecycle hook.
type EventType string

const (
	EventBeforeValidate EventType = "before_validate"
	EventAfterValidate  EventType = "after_validate"
	EventBeforeField    EventType = "before_field"
	EventAfterField     EventType = "after_field"
	EventFieldPassed    EventType = "field_passed"
	EventFieldFailed    EventType = "field_failed"
)

// Event is delivered to observers. Field and Value are set for field events,
// Verdict for after_field, field_passed and field_failed, Data for
// before_validate and Form for after_validate.
type Event struct {
	Type    EventType
	Field   string
	Value   any
	Verdict *Verdict
	Data    map[string]any
	Form    *FormVerdict
}

// Observer receives lifecycle events synchronously. A panicking observer is
// logged and ignored.
type Observer interface {
	OnEvent(ctx context.Context, e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, e Event)

func (f ObserverFunc) OnEvent(ctx context.Context, e Event) { f(ctx, e) }
