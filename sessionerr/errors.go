/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sessionerr defines the typed error taxonomy shared by the codec
// and session packages, so callers can branch on Kind instead of
// matching error strings.
package sessionerr

import "fmt"

// Kind classifies a session-level failure.
type Kind int

const (
	// Unknown covers errors that don't fit another Kind; a session should
	// not normally see these surface.
	Unknown Kind = iota
	// FrameCorrupt marks a frame that failed BodyLength or Checksum
	// verification.
	FrameCorrupt
	// TransportError wraps a failure reading from or writing to the
	// underlying connection.
	TransportError
	// SequenceMismatch marks an incoming MsgSeqNum that did not match the
	// expected next value for its stream.
	SequenceMismatch
	// AuthFailure marks a rejected Logon.
	AuthFailure
	// ProtocolReject marks a counterparty session-level Reject message.
	ProtocolReject
	// NotConnected is returned by requests issued before Connect.
	NotConnected
	// NotLoggedIn is returned by requests that require an active session.
	NotLoggedIn
	// TestRequestTimeout marks a TestRequest that went unanswered past its
	// deadline.
	TestRequestTimeout
)

func (k Kind) String() string {
	switch k {
	case FrameCorrupt:
		return "frame_corrupt"
	case TransportError:
		return "transport_error"
	case SequenceMismatch:
		return "sequence_mismatch"
	case AuthFailure:
		return "auth_failure"
	case ProtocolReject:
		return "protocol_reject"
	case NotConnected:
		return "not_connected"
	case NotLoggedIn:
		return "not_logged_in"
	case TestRequestTimeout:
		return "test_request_timeout"
	default:
		return "unknown"
	}
}

// Error is a typed session error. It wraps an optional underlying cause so
// errors.Unwrap keeps working with the standard library.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an *Error of the given Kind with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an *Error of the given Kind around an existing error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == kind
}
