package logger

import (
	"context"
	"log/slog"
)

type formKey struct{}

// WithForm tags ctx with the name of the form being validated. Loggers built
// by New add it to every record as "form".
func WithForm(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, formKey{}, name)
}

// FormFromContext returns the form name stored by WithForm.
func FormFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(formKey{}).(string)
	return name, ok && name != ""
}

// FormExtractor reads the form name set by WithForm.
func FormExtractor(ctx context.Context) (slog.Attr, bool) {
	if name, ok := FormFromContext(ctx); ok {
		return slog.String("form", name), true
	}
	return slog.Attr{}, false
}
