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

// Package store holds the in-memory, thread-safe views the engine keeps
// on top of the event stream: a single ring buffer of recent market
// data entries for all symbols (filterable by symbol on read), and small maps of reference data (securities,
// trading session status) kept current by the latest snapshot.
package store

import (
	"sync"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/events"
	"github.com/shopspring/decimal"
)

// MarketDataTick is one stored MDEntry, timestamped at arrival.
type MarketDataTick struct {
	ReceivedAt time.Time
	MdReqID    string
	Symbol     string
	EntryType  string
	Price      string
	Size       string
	Time       string
	Position   string
	IsSnapshot bool
	SeqNum     int64
}

// PriceDecimal parses Price as an exact decimal, avoiding the binary
// floating-point rounding a plain float64 conversion would introduce on
// PSX's fixed-point price strings.
func (t MarketDataTick) PriceDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(t.Price)
}

// SizeDecimal parses Size as an exact decimal.
func (t MarketDataTick) SizeDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(t.Size)
}

// NotionalValue returns Price*Size as an exact decimal, or an error if
// either field fails to parse.
func (t MarketDataTick) NotionalValue() (decimal.Decimal, error) {
	price, err := t.PriceDecimal()
	if err != nil {
		return decimal.Decimal{}, err
	}
	size, err := t.SizeDecimal()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return price.Mul(size), nil
}

// MdSubscription tracks one active subscribe() call's bookkeeping: the
// symbols it covers and how many updates have been observed for it.
type MdSubscription struct {
	MdReqID      string
	Symbols      []string
	EntryTypes   []string
	SubscribedAt time.Time
	UpdateCount  int64
	LastUpdate   time.Time
}

// MarketDataStore is a fixed-capacity ring buffer of recent ticks plus a
// map of active subscriptions, adapted from the teacher's trade ring
// buffer: inserts are O(1) amortized and GetRecentTicks avoids an
// O(n^2) prepend by counting matches backwards before filling forwards.
type MarketDataStore struct {
	mu      sync.RWMutex
	ticks   []MarketDataTick
	head    int
	count   int
	maxSize int

	subs    map[string]*MdSubscription // MdReqID -> subscription
	seqNum  int64
}

// NewMarketDataStore creates a store holding up to maxSize recent ticks.
func NewMarketDataStore(maxSize int) *MarketDataStore {
	if maxSize <= 0 {
		maxSize = 10000
	}
	return &MarketDataStore{
		ticks:   make([]MarketDataTick, maxSize),
		maxSize: maxSize,
		subs:    make(map[string]*MdSubscription),
	}
}

// AddEntries records every entry in payload into the ring buffer and
// updates the matching subscription's counters, if one is registered
// under payload.MdReqID.
func (s *MarketDataStore) AddEntries(payload events.MarketDataPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, e := range payload.Entries {
		s.seqNum++
		tick := MarketDataTick{
			ReceivedAt: now,
			MdReqID:    payload.MdReqID,
			Symbol:     firstNonEmpty(e.Symbol, payload.Symbol),
			EntryType:  e.EntryType,
			Price:      e.Price,
			Size:       e.Size,
			Time:       e.Time,
			Position:   e.Position,
			IsSnapshot: payload.IsSnapshot,
			SeqNum:     s.seqNum,
		}
		s.ticks[s.head] = tick
		s.head = (s.head + 1) % s.maxSize
		if s.count < s.maxSize {
			s.count++
		}
	}

	if sub, ok := s.subs[payload.MdReqID]; ok {
		sub.UpdateCount += int64(len(payload.Entries))
		sub.LastUpdate = now
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// GetRecentTicks returns up to n of the most recent ticks matching
// symbol ("" matches any), oldest first. It walks the ring buffer
// backwards once to count matches, then fills a preallocated slice
// forwards, so it never reallocates on prepend.
func (s *MarketDataStore) GetRecentTicks(symbol string, n int) []MarketDataTick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || s.count == 0 {
		return nil
	}

	matches := 0
	for i := 0; i < s.count && matches < n; i++ {
		idx := (s.head - 1 - i + s.maxSize) % s.maxSize
		if symbol == "" || s.ticks[idx].Symbol == symbol {
			matches++
		}
	}
	if matches == 0 {
		return nil
	}

	result := make([]MarketDataTick, matches)
	pos := matches - 1
	for i := 0; i < s.count && pos >= 0; i++ {
		idx := (s.head - 1 - i + s.maxSize) % s.maxSize
		if symbol == "" || s.ticks[idx].Symbol == symbol {
			result[pos] = s.ticks[idx]
			pos--
		}
	}
	return result
}

// GetAllTicks returns a defensive copy of every stored tick in
// chronological (oldest-first) order.
func (s *MarketDataStore) GetAllTicks() []MarketDataTick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]MarketDataTick, s.count)
	for i := 0; i < s.count; i++ {
		idx := (s.head - s.count + i + s.maxSize) % s.maxSize
		result[i] = s.ticks[idx]
	}
	return result
}

// AddSubscription registers a new active subscription.
func (s *MarketDataStore) AddSubscription(mdReqID string, symbols, entryTypes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[mdReqID] = &MdSubscription{
		MdReqID:      mdReqID,
		Symbols:      append([]string(nil), symbols...),
		EntryTypes:   append([]string(nil), entryTypes...),
		SubscribedAt: time.Now(),
	}
}

// RemoveSubscription removes a subscription by MdReqID.
func (s *MarketDataStore) RemoveSubscription(mdReqID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, mdReqID)
}

// GetSubscription returns a defensive copy of the subscription
// registered under mdReqID, or nil if none exists.
func (s *MarketDataStore) GetSubscription(mdReqID string) *MdSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subs[mdReqID]
	if !ok {
		return nil
	}
	cpy := *sub
	cpy.Symbols = append([]string(nil), sub.Symbols...)
	cpy.EntryTypes = append([]string(nil), sub.EntryTypes...)
	return &cpy
}

// GetSubscriptionsBySymbol returns defensive copies of every active
// subscription that covers symbol.
func (s *MarketDataStore) GetSubscriptionsBySymbol(symbol string) []*MdSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*MdSubscription, 0)
	for _, sub := range s.subs {
		for _, sym := range sub.Symbols {
			if sym == symbol {
				cpy := *sub
				cpy.Symbols = append([]string(nil), sub.Symbols...)
				cpy.EntryTypes = append([]string(nil), sub.EntryTypes...)
				result = append(result, &cpy)
				break
			}
		}
	}
	return result
}

// GetAllSubscriptions returns defensive copies of every active
// subscription.
func (s *MarketDataStore) GetAllSubscriptions() []*MdSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*MdSubscription, 0, len(s.subs))
	for _, sub := range s.subs {
		cpy := *sub
		cpy.Symbols = append([]string(nil), sub.Symbols...)
		cpy.EntryTypes = append([]string(nil), sub.EntryTypes...)
		result = append(result, &cpy)
	}
	return result
}
