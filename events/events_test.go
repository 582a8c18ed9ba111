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

package events

import "testing"

func TestEmitter_PublishInvokesRegisteredHandler(t *testing.T) {
	e := New()
	var got Event
	var calls int
	e.On(Logon, func(ev Event) {
		got = ev
		calls++
	})

	e.Publish(Logon, "session established")

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if got.Kind != Logon {
		t.Errorf("Kind: got %v, want %v", got.Kind, Logon)
	}
	if got.Payload != "session established" {
		t.Errorf("Payload: got %v, want %q", got.Payload, "session established")
	}
}

func TestEmitter_PublishWithNoSubscribersIsNoop(t *testing.T) {
	e := New()
	e.Publish(Disconnected, nil) // must not panic
}

func TestEmitter_MultipleHandlersAllInvoked(t *testing.T) {
	e := New()
	var order []int
	e.On(MarketData, func(Event) { order = append(order, 1) })
	e.On(MarketData, func(Event) { order = append(order, 2) })

	e.Publish(MarketData, MarketDataPayload{Symbol: "OGDC"})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected handlers invoked in registration order, got %v", order)
	}
}

func TestEmitter_DistinctKindsDoNotCrossFire(t *testing.T) {
	e := New()
	var logonCalls, logoutCalls int
	e.On(Logon, func(Event) { logonCalls++ })
	e.On(Logout, func(Event) { logoutCalls++ })

	e.Publish(Logon, nil)

	if logonCalls != 1 {
		t.Errorf("logonCalls: got %d, want 1", logonCalls)
	}
	if logoutCalls != 0 {
		t.Errorf("logoutCalls: got %d, want 0", logoutCalls)
	}
}
