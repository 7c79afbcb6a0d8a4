package charge

import (
	"fmt"
	"net/http"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
)

const (
	StatusUnknownProduct = "Unknown product"
	StatusPaymentFault   = "Payment service fault"
	StatusPaymentError   = "Payment service error"
	StatusCatalogueFault = "Price catalogue fault"
	StatusAmountTooLarge = "Invalid request: amount out of range"
)

// MapOutcome turns the final outcome of a purchase into the HTTP status and
// body returned to the caller. Every ErrorKind has its own case; an unknown
// kind is a programming error and panics.
func MapOutcome(outcome entity.ChargeOutcome) (int, entity.PaymentResult) {
	if outcome.IsSuccess() {
		return http.StatusCreated, entity.PaymentResult{Status: outcome.Status()}
	}

	switch outcome.Kind() {
	case entity.ErrorKindUnknownProduct:
		return http.StatusBadRequest, entity.PaymentResult{Status: StatusUnknownProduct}
	case entity.ErrorKindTransportFault:
		return http.StatusInternalServerError, entity.PaymentResult{Status: StatusPaymentFault}
	case entity.ErrorKindUpstreamError:
		return http.StatusInternalServerError, entity.PaymentResult{Status: StatusPaymentError}
	case entity.ErrorKindCatalogueFault:
		return http.StatusInternalServerError, entity.PaymentResult{Status: StatusCatalogueFault}
	case entity.ErrorKindAmountOutOfRange:
		return http.StatusBadRequest, entity.PaymentResult{Status: StatusAmountTooLarge}
	}
	panic(fmt.Sprintf("charge: no response mapping for %s", outcome.Kind()))
}
