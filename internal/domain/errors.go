package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Payload errors
	ErrMsgMalformedPayload = "malformed payload"

	// Dispatch errors
	ErrMsgDispatchFailed = "dispatch failed"

	// Registration errors
	ErrMsgRegistrationFailed = "registration failed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrMalformedPayload means a webhook payload is missing required fields
	// (DIALOG_ID, FROM_USER_ID). Handlers map it to HTTP 400, never 500.
	ErrMalformedPayload = errors.New(ErrMsgMalformedPayload)

	// ErrDispatchFailed means the outbound reply POST to Bitrix24 did not
	// succeed. It is logged and swallowed; the inbound acknowledgment has
	// already been sent, so there is nobody left to surface it to.
	ErrDispatchFailed = errors.New(ErrMsgDispatchFailed)

	// ErrRegistrationFailed means the imbot.register call was rejected.
	// The registration CLI surfaces it to the operator and exits non-zero.
	ErrRegistrationFailed = errors.New(ErrMsgRegistrationFailed)
)
