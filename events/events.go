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

// Package events defines the typed publish-subscribe surface the
// session dispatcher emits domain events on: named Kind constants and a
// payload struct per data-carrying kind. Payloads travel as `any`, so
// handlers type-assert them; the compiler does not check that a kind and
// its payload type match.
package events

// Kind names one of the domain events the dispatcher can emit.
type Kind string

const (
	Connected         Kind = "connected"
	Disconnected      Kind = "disconnected"
	Logon             Kind = "logon"
	Logout            Kind = "logout"
	Reject            Kind = "reject"
	Message           Kind = "message"
	MarketData        Kind = "marketData"
	MarketDataReject  Kind = "marketDataReject"
	SecurityList      Kind = "securityList"
	TradingSessionStat Kind = "tradingSessionStatus"
	TradingStatus      Kind = "tradingStatus"
	Error              Kind = "error"
)

// MarketDataEntry is one parsed MDEntry, decoded from a MarketData
// event's repeating group.
type MarketDataEntry struct {
	Symbol    string
	EntryType string
	Price     string
	Size      string
	Time      string
	Position  string
}

// MarketDataPayload is the payload carried by a MarketData event.
type MarketDataPayload struct {
	MdReqID    string
	Symbol     string
	IsSnapshot bool
	Entries    []MarketDataEntry
}

// SecurityListEntry is one deduplicated row from a Security List
// response.
type SecurityListEntry struct {
	Symbol  string
	CFICode string
	Product string
}

// SecurityListPayload is the payload carried by a SecurityList event.
type SecurityListPayload struct {
	SecurityReqID string
	Securities    []SecurityListEntry
}

// TradingSessionStatusPayload is the payload carried by a
// TradingSessionStat event.
type TradingSessionStatusPayload struct {
	TradSesReqID     string
	TradingSessionID string
	Status           string
}

// SecurityTradingStatusPayload is the payload carried by a
// TradingStatus event.
type SecurityTradingStatusPayload struct {
	SecurityStatusReqID string
	Symbol              string
	TradingStatus       string
}

// Event wraps one emission: Kind names it, Payload carries the
// kind-specific data (one of the *Payload types above, a string for
// Logout/Reject/Error text or the rejected MdReqID of a
// MarketDataReject, or nil for Logon and Disconnected).
type Event struct {
	Kind    Kind
	Payload any
}

// Handler receives events published to a subscription. Handlers must
// treat Payload as read-only - the emitter does not copy it per
// subscriber.
type Handler func(Event)

// Emitter is an in-process, synchronous publish-subscribe surface. It is
// the only channel the session owner goroutine uses to hand data to
// other goroutines; subscribers must not block for long or mutate what
// they receive.
type Emitter struct {
	handlers map[Kind][]Handler
}

// New returns an empty Emitter.
func New() *Emitter {
	return &Emitter{handlers: make(map[Kind][]Handler)}
}

// On registers fn to be called for every future Publish of kind. Not
// safe to call concurrently with Publish.
func (e *Emitter) On(kind Kind, fn Handler) {
	e.handlers[kind] = append(e.handlers[kind], fn)
}

// Publish invokes every handler registered for kind, in registration
// order. Handler panics are not recovered here - callers on the session
// owner should wrap their own Publish calls if a misbehaving subscriber
// must not be allowed to crash the owner goroutine.
func (e *Emitter) Publish(kind Kind, payload any) {
	for _, fn := range e.handlers[kind] {
		fn(Event{Kind: kind, Payload: payload})
	}
}
