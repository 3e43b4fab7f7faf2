package domain

import "fmt"

// SymbolNotFoundError means the ticker resolved to nothing upstream. The
// caller typed it; it can be corrected and retried.
type SymbolNotFoundError struct {
	Symbol string
}

func (e SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol %s not found", e.Symbol)
}

// UpstreamUnavailableError covers provider outages and rate limits. Transient;
// the request may succeed later.
type UpstreamUnavailableError struct {
	Err error
}

func (e UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("market data provider unavailable: %v", e.Err)
}

func (e UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// InsufficientDataError means the engine had zero usable metrics. Distinct
// from a fetch failure - the provider answered, but with nothing scoreable.
type InsufficientDataError struct {
	Symbol string
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("no usable fundamental metrics for %s", e.Symbol)
}

// RenderError wraps chart generation failures. Never fatal to an analysis;
// the textual scorecard still goes out.
type RenderError struct {
	Err error
}

func (e RenderError) Error() string {
	return fmt.Sprintf("failed to render chart: %v", e.Err)
}

func (e RenderError) Unwrap() error {
	return e.Err
}
