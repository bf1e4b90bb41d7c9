// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across the event
// packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("eventpipe"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Info("channel drained", logger.ChannelID(id), logger.Pending(0))
//
// Library packages that accept an optional logger fall back to NewNoop, which
// discards every record.
//
// Helper constructors Error and Errors return an empty slog.Attr for nil errors,
// so they can be passed unconditionally.
package logger
