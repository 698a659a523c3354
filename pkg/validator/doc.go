// Package validator evaluates form fields against Laravel-style rule
// declarations such as "required|email|max:255".
//
// Rules with a local evaluator in the rules registry run synchronously.
// Remote rules (unique, exists, password, current_password, anything
// registered with RegisterRemote, anything prefixed "ajax:" and any rule
// name the registry does not know) are answered by a remote.Delegate, which
// coalesces identical requests and caches verdicts.
//
// # Usage
//
//	v, err := validator.New(
//	    validator.WithField("email", "required|email|unique:users,email"),
//	    validator.WithField("password", "required|min:8|confirmed"),
//	    validator.WithMessages(map[string]string{"email.unique": "That email is taken."}),
//	    validator.WithRemoteURL("https://example.com/validate"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	form := v.ValidateAll(ctx, map[string]any{"email": "a@b.c", "password": "secret"})
//	if err := form.Err(); err != nil {
//	    for field, msgs := range form.Errors {
//	        // render msgs next to field
//	    }
//	}
//
// # Field state
//
// Each call marks the field touched and validating until it settles, and
// replaces the field's recorded errors. HasError, GetErrors, IsValid,
// IsTouched and IsValidating read that state; ClearErrors and Reset clear it.
//
// # Debouncing
//
// ValidateFieldDebounced delays validation until Config.Debounce has passed
// without another call for the same field. Every superseded caller receives
// the verdict computed for the last call's inputs.
//
// # Errors
//
// Validation never returns an error for a failed rule, a remote timeout or a
// broken endpoint; those settle into a failed Verdict with a message.
// FormVerdict.Err converts a failed form into ValidationErrors, which match
// ErrValidationFailed with errors.Is.
package validator
