package fileconv

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a conversion failure for transport mapping.
type Kind int

const (
	// KindNone means the error is not a conversion failure (or is nil).
	KindNone Kind = iota
	// KindUnsupportedConversion: no strategy handles the extension pair.
	// User-correctable; maps to a 4xx.
	KindUnsupportedConversion
	// KindEnvironmentUnsupported: the pair is supported but the running
	// environment lacks a required optional provider.
	KindEnvironmentUnsupported
	// KindConversionFailed: a provider was invoked and returned an error.
	KindConversionFailed
	// KindTimeout: the request exceeded its processing budget.
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedConversion:
		return "unsupported_conversion"
	case KindEnvironmentUnsupported:
		return "environment_unsupported"
	case KindConversionFailed:
		return "conversion_failed"
	case KindTimeout:
		return "timeout"
	}
	return "none"
}

// UnsupportedConversionError is returned when the extension pair is not
// handled by any strategy.
type UnsupportedConversionError struct {
	Input  string
	Output string
}

func (e *UnsupportedConversionError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("cannot convert a file without an extension to %s", upper(e.Output))
	}
	return fmt.Sprintf("cannot convert %s to %s", upper(e.Input), upper(e.Output))
}

// EnvironmentUnsupportedError is returned when a supported pair needs an
// optional provider that is absent in the current runtime. It signals an
// infrastructure limitation, not a user mistake.
type EnvironmentUnsupportedError struct {
	Input    string
	Output   string
	Provider string
}

func (e *EnvironmentUnsupportedError) Error() string {
	return fmt.Sprintf("%s to %s conversion requires %s, which is not available in this environment",
		upper(e.Input), upper(e.Output), e.Provider)
}

// ConversionFailedError is returned when a provider was invoked and failed.
// The provider diagnostic is preserved verbatim for debuggability.
type ConversionFailedError struct {
	Input  string
	Output string
	Err    error
}

func (e *ConversionFailedError) Error() string {
	return fmt.Sprintf("%s to %s conversion failed: %v", upper(e.Input), upper(e.Output), e.Err)
}

func (e *ConversionFailedError) Unwrap() error { return e.Err }

// TimeoutError is returned when a request exceeds the engine deadline.
type TimeoutError struct {
	Input  string
	Output string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s to %s conversion exceeded the processing time budget", upper(e.Input), upper(e.Output))
}

// KindOf reports the failure kind of err, or KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		unsupported *UnsupportedConversionError
		environment *EnvironmentUnsupportedError
		failed      *ConversionFailedError
		timeout     *TimeoutError
	)
	switch {
	case errors.As(err, &unsupported):
		return KindUnsupportedConversion
	case errors.As(err, &environment):
		return KindEnvironmentUnsupported
	case errors.As(err, &timeout):
		return KindTimeout
	case errors.As(err, &failed):
		return KindConversionFailed
	}
	return KindNone
}

// IsUnsupportedConversion reports whether err is an UnsupportedConversionError.
func IsUnsupportedConversion(err error) bool {
	var target *UnsupportedConversionError
	return errors.As(err, &target)
}

func upper(ext string) string {
	return strings.ToUpper(ext)
}
