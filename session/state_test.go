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

package session

import "testing"

func TestState_String(t *testing.T) {
	cases := map[State]string{
		Disconnected:      "disconnected",
		Connecting:        "connecting",
		Connected:         "connected",
		LoggedIn:          "loggedIn",
		LoggingOut:        "loggingOut",
		SequenceResetting: "sequenceResetting",
		ErrorState:        "error",
		State(99):         "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String(): got %q, want %q", int(state), got, want)
		}
	}
}
