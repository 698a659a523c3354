// Package logger builds slog loggers and names the attributes shared by the
// rule parser, the remote delegate and the validator.
//
//	log := logger.New(logger.WithEnvironment("development", "signup"))
//	ctx = logger.WithForm(ctx, "signup")
//	log.WarnContext(ctx, "remote validation timed out",
//	    logger.Field("email"),
//	    logger.Rule("unique", "users", "email"),
//	)
//
// Records logged with a context tagged by WithForm carry a "form" attribute.
// More context values can be extracted with WithContextValue or
// WithContextExtractors. Components that receive no logger use NewNop.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("checked", logger.Error(err))
//
// needs no nil check.
package logger
