package validator

import (
	"context"
	"time"

	"github.com/dmitrymomot/formrules/pkg/async"
)

// debounceSlot collects the calls for one field inside a debounce window.
// Every caller waits on the same future, which settles with the verdict for
// the latest inputs.
type debounceSlot struct {
	timer  *time.Timer
	gen    uint64
	future *async.Future[Verdict]
	settle func(Verdict, error)

	ctx   context.Context
	value any
	data  map[string]any
}

// ValidateFieldDebounced waits Config.Debounce after the latest call for field,
// then validates once with the latest inputs. All calls in the window receive
// that verdict. The error is non-nil only when ctx ends first; the pending
// validation still runs for the other callers.
func (v *Validator) ValidateFieldDebounced(ctx context.Context, field string, value any, data map[string]any) (Verdict, error) {
	v.debounceMu.Lock()
	slot, ok := v.debounce[field]
	if !ok {
		fut, settle := async.NewFuture[Verdict]()
		slot = &debounceSlot{future: fut, settle: settle}
		v.debounce[field] = slot
	}
	slot.ctx = context.WithoutCancel(ctx)
	slot.value = value
	slot.data = data
	if slot.timer != nil {
		slot.timer.Stop()
	}
	slot.gen++
	gen := slot.gen
	slot.timer = time.AfterFunc(v.cfg.Debounce, func() { v.fire(field, slot, gen) })
	fut := slot.future
	v.debounceMu.Unlock()

	return fut.AwaitContext(ctx)
}

// fire runs only for the timer armed by the latest call. A superseded timer
// whose Stop came too late sees a newer gen and leaves the slot pending.
func (v *Validator) fire(field string, slot *debounceSlot, gen uint64) {
	v.debounceMu.Lock()
	if v.debounce[field] != slot || slot.gen != gen {
		v.debounceMu.Unlock()
		return
	}
	delete(v.debounce, field)
	ctx, value, data := slot.ctx, slot.value, slot.data
	v.debounceMu.Unlock()

	slot.settle(v.ValidateField(ctx, field, value, data), nil)
}

// PendingDebounce reports whether a debounced validation of field is waiting
// for its timer.
func (v *Validator) PendingDebounce(field string) bool {
	v.debounceMu.Lock()
	defer v.debounceMu.Unlock()
	_, ok := v.debounce[field]
	return ok
}
