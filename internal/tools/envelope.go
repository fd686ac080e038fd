// Package tools is the orchestrator-facing surface. Every operation
// answers with a uniform envelope: status plus either a result or a
// failure message. Expected failures (unresolved names, bad filters,
// rule violations) never cross this boundary as Go errors; only internal
// inconsistencies do.
package tools

import (
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
)

// Status tags an envelope as success or failure
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Response is the uniform tool envelope. Message carries the failure
// text; Result carries the success payload.
type Response[T any] struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Result  T      `json:"result,omitempty"`
}

// Success wraps a result in a success envelope
func Success[T any](result T) Response[T] {
	return Response[T]{
		Status: StatusSuccess,
		Result: result,
	}
}

// Failure wraps a message in a failure envelope
func Failure[T any](message string) Response[T] {
	return Response[T]{
		Status:  StatusFailure,
		Message: message,
	}
}

// From converts a service call into an envelope. Expected failure codes
// become failure envelopes; internal or unrecognized errors propagate as
// Go errors for the caller to treat as faults.
func From[T any](result T, err error) (Response[T], error) {
	if err == nil {
		return Success(result), nil
	}

	switch forgeerr.GetCode(err) {
	case forgeerr.CodeNotFound,
		forgeerr.CodeInvalidArgument,
		forgeerr.CodeRuleViolation,
		forgeerr.CodeAlreadyExists:
		return Failure[T](err.Error()), nil
	}

	return Response[T]{}, err
}
