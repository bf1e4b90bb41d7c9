package logger

import (
	"log/slog"
	"reflect"
	"strconv"
	"time"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// EventType records the event type under the key "event_type".
// A nil type is recorded as "<nil>".
func EventType(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.String("event_type", "<nil>")
	}
	return slog.String("event_type", t.String())
}

// Event records the event value under the key "event".
func Event(v any) slog.Attr {
	return slog.Any("event", v)
}

// ChannelID records the channel identifier under the key "channel_id".
func ChannelID(id any) slog.Attr {
	return slog.Any("channel_id", id)
}

// ConsumerID records the consumer loop identifier under the key "consumer_id".
func ConsumerID(id any) slog.Attr {
	return slog.Any("consumer_id", id)
}

// Pending records the number of buffered events under the key "pending".
func Pending(n int) slog.Attr {
	return slog.Int("pending", n)
}

// Hook records the shutdown hook name under the key "hook".
func Hook(name string) slog.Attr {
	return slog.String("hook", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
