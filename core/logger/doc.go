// Package logger provides structured logging utilities built on Go's standard slog package.
//
// New builds a *slog.Logger from functional options. Environment presets set the
// format and level in one call:
//
//	log := logger.New(logger.WithDevelopment("sentiment"))  // text, debug
//	log := logger.New(logger.WithProduction("sentiment"))   // JSON, info
//
// Attribute helpers keep key names consistent across packages and return the
// empty slog.Attr for nil input, so they are safe to pass unconditionally:
//
//	log.WarnContext(ctx, "model reply did not match grammar",
//		logger.Component("interpreter"),
//		logger.Outcome("malformed_reply"),
//		logger.Reply(reply, 200),
//		logger.Error(err),
//	)
//
// Library packages in this module default to NewNop and accept a logger
// through their own With*Logger options.
package logger
