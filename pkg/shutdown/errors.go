package shutdown

import "errors"

var (
	// ErrHookFailed wraps the error returned by a shutdown hook.
	ErrHookFailed = errors.New("shutdown: hook failed")

	// ErrTimeout indicates that hooks were still running when the deadline passed.
	ErrTimeout = errors.New("shutdown: hooks did not finish before deadline")
)
