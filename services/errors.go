package services

import (
	"errors"
	"net/http"
	"sandbay-backend/models"
)

// Outcome is the transport-independent failure category of an orchestration
// or lookup error
type Outcome string

const (
	OutcomeOK                   Outcome = "ok"
	OutcomeUnauthorized         Outcome = "unauthorized"
	OutcomeMissingConfiguration Outcome = "missing_configuration"
	OutcomeNotFound             Outcome = "not_found"
	OutcomeStartFailure         Outcome = "start_failure"
	OutcomeInternal             Outcome = "internal"
)

// ClassifyOutcome maps an error to its outcome category. Anything not carrying
// a known sentinel is internal.
func ClassifyOutcome(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, models.ErrUnauthorized):
		return OutcomeUnauthorized
	case errors.Is(err, models.ErrMissingConfiguration):
		return OutcomeMissingConfiguration
	case errors.Is(err, models.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, models.ErrStartFailure):
		return OutcomeStartFailure
	default:
		return OutcomeInternal
	}
}

// HTTPStatus returns the response status for this outcome
func (o Outcome) HTTPStatus() int {
	switch o {
	case OutcomeOK:
		return http.StatusOK
	case OutcomeUnauthorized:
		return http.StatusUnauthorized
	case OutcomeNotFound:
		return http.StatusNotFound
	default:
		// Missing configuration, start failure and internal errors are all
		// server-side faults.
		return http.StatusInternalServerError
	}
}

// ErrorType names the outcome for the API error envelope
func (o Outcome) ErrorType() string {
	switch o {
	case OutcomeUnauthorized:
		return "AuthorizationError"
	case OutcomeMissingConfiguration:
		return "ConfigurationError"
	case OutcomeNotFound:
		return "NotFoundError"
	case OutcomeStartFailure:
		return "SandboxStartError"
	default:
		return "InternalError"
	}
}
