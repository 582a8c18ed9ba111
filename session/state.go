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

// Package session owns the FIX session lifecycle: connect/logon/logout,
// heartbeat and test-request liveness monitoring, reconnect backoff, and
// the dispatcher that classifies inbound frames and emits typed domain
// events. A single owner goroutine serializes every state mutation; the
// transport read loop hands frames to it over a frames channel, timers
// fire into its select loop, and public methods post to its mailbox.
package session

// State is one point in the session lifecycle.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	LoggedIn
	LoggingOut
	SequenceResetting
	ErrorState
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case LoggedIn:
		return "loggedIn"
	case LoggingOut:
		return "loggingOut"
	case SequenceResetting:
		return "sequenceResetting"
	case ErrorState:
		return "error"
	default:
		return "unknown"
	}
}
