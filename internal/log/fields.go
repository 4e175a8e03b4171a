// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldInvocationID = "invocation_id"
	FieldRequestID    = "request_id"
	FieldSessionID    = "session_id"

	// Dispatch fields
	FieldService     = "service"
	FieldComponent   = "component"
	FieldEvent       = "event"
	FieldRequestType = "request_type"
	FieldIntent      = "intent"
	FieldLocale      = "locale"
)
