// Package domainerr provides a small error model for domain failures that carry
// structured key/value details.
//
// A domain error is created with New or Wrap and enriched with With:
//
//	err := domainerr.New("order rejected").
//	    With("order_id", id).
//	    With("reason", "insufficient stock")
//
// Format renders such errors for diagnostics as "<message> [k1:v1,k2:v2]" and
// falls back to a caller supplied message for any other error. Details are
// rendered in the order they were added.
package domainerr
