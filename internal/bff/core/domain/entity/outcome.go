package entity

import (
	"errors"
	"fmt"
)

// ErrUnknownProduct is returned by price resolvers when no price exists for a
// (product, currency) pair.
var ErrUnknownProduct = errors.New("unknown product")

// ErrAmountOutOfRange is returned when a purchase total does not fit the
// charge amount.
var ErrAmountOutOfRange = errors.New("amount out of range")

// ErrorKind classifies a failed charge. The zero value is reserved for success.
type ErrorKind int

const (
	ErrorKindUnknownProduct ErrorKind = iota + 1
	ErrorKindTransportFault
	ErrorKindUpstreamError
	ErrorKindCatalogueFault
	ErrorKindAmountOutOfRange
)

// ErrorKinds lists every defined kind.
var ErrorKinds = []ErrorKind{
	ErrorKindUnknownProduct,
	ErrorKindTransportFault,
	ErrorKindUpstreamError,
	ErrorKindCatalogueFault,
	ErrorKindAmountOutOfRange,
}

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnknownProduct:
		return "unknown_product"
	case ErrorKindTransportFault:
		return "transport_fault"
	case ErrorKindUpstreamError:
		return "upstream_error"
	case ErrorKindCatalogueFault:
		return "catalogue_fault"
	case ErrorKindAmountOutOfRange:
		return "amount_out_of_range"
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// Retryable reports whether another attempt may change the result.
func (k ErrorKind) Retryable() bool {
	return k == ErrorKindTransportFault || k == ErrorKindUpstreamError
}

// ChargeOutcome is either a success carrying the upstream status or a failure
// carrying a kind and a detail. Build it with Success or Failure.
type ChargeOutcome struct {
	status string
	kind   ErrorKind
	detail string
}

// Success builds the outcome of an accepted charge.
func Success(status string) ChargeOutcome {
	return ChargeOutcome{status: status}
}

// Failure builds the outcome of a failed charge. kind must not be zero.
func Failure(kind ErrorKind, detail string) ChargeOutcome {
	return ChargeOutcome{kind: kind, detail: detail}
}

// IsSuccess reports whether the charge was accepted.
func (o ChargeOutcome) IsSuccess() bool { return o.kind == 0 }

// Status is the upstream status of a successful charge, empty on failure.
func (o ChargeOutcome) Status() string { return o.status }

// Kind is zero on success.
func (o ChargeOutcome) Kind() ErrorKind { return o.kind }

// Detail describes a failure for logs. It is never shown to callers.
func (o ChargeOutcome) Detail() string { return o.detail }

func (o ChargeOutcome) String() string {
	if o.IsSuccess() {
		return "success(" + o.status + ")"
	}
	return fmt.Sprintf("failure(%s: %s)", o.kind, o.detail)
}
