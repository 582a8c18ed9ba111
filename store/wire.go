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

package store

import "github.com/RonMathew32/psx-connect-sub000/events"

// Views bundles the three in-memory projections an embedder typically
// wants kept current off the event stream.
type Views struct {
	MarketData     *MarketDataStore
	Securities     *SecurityStore
	TradingSession *TradingSessionStore
}

// NewViews creates an empty set of views and subscribes them to emitter,
// so callers get a live-updating snapshot without wiring each handler
// themselves.
func NewViews(emitter *events.Emitter, maxTicks int) *Views {
	v := &Views{
		MarketData:     NewMarketDataStore(maxTicks),
		Securities:     NewSecurityStore(),
		TradingSession: NewTradingSessionStore(),
	}
	v.Attach(emitter)
	return v
}

// Attach registers v's handlers on emitter. Exposed separately from
// NewViews so a caller building its own MarketDataStore/SecurityStore/
// TradingSessionStore combination can still reuse the subscription
// wiring.
func (v *Views) Attach(emitter *events.Emitter) {
	emitter.On(events.MarketData, func(e events.Event) {
		if payload, ok := e.Payload.(events.MarketDataPayload); ok {
			v.MarketData.AddEntries(payload)
		}
	})
	emitter.On(events.SecurityList, func(e events.Event) {
		if payload, ok := e.Payload.(events.SecurityListPayload); ok {
			v.Securities.Upsert(payload)
		}
	})
	emitter.On(events.TradingSessionStat, func(e events.Event) {
		if payload, ok := e.Payload.(events.TradingSessionStatusPayload); ok {
			v.TradingSession.Update(payload)
		}
	})
}
