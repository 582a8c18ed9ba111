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

import (
	"sync"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/events"
)

// Security is one row of reference data received from a Security List
// response, keyed by symbol.
type Security struct {
	Symbol        string
	CFICode       string
	Product       string
	SecurityReqID string
	UpdatedAt     time.Time
}

// SecurityStore holds the latest known reference data per symbol,
// adapted from the teacher's OrderStore map-of-pointers-plus-RWMutex
// shape: order state tracking has no place here since order entry is
// out of scope, but the concurrency-safe map pattern carries over
// directly to reference data lookups.
type SecurityStore struct {
	mu         sync.RWMutex
	securities map[string]*Security // Symbol -> Security
}

// NewSecurityStore creates an empty SecurityStore.
func NewSecurityStore() *SecurityStore {
	return &SecurityStore{securities: make(map[string]*Security)}
}

// Upsert replaces the store's full contents with payload's securities,
// matching the semantics of a Security List response always being a
// complete snapshot, not an incremental update.
func (s *SecurityStore) Upsert(payload events.SecurityListPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	fresh := make(map[string]*Security, len(payload.Securities))
	for _, sec := range payload.Securities {
		fresh[sec.Symbol] = &Security{
			Symbol:        sec.Symbol,
			CFICode:       sec.CFICode,
			Product:       sec.Product,
			SecurityReqID: payload.SecurityReqID,
			UpdatedAt:     now,
		}
	}
	s.securities = fresh
}

// Get returns a defensive copy of the security registered under
// symbol, or nil if unknown.
func (s *SecurityStore) Get(symbol string) *Security {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sec, ok := s.securities[symbol]
	if !ok {
		return nil
	}
	cpy := *sec
	return &cpy
}

// GetAll returns defensive copies of every known security.
func (s *SecurityStore) GetAll() []*Security {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Security, 0, len(s.securities))
	for _, sec := range s.securities {
		cpy := *sec
		result = append(result, &cpy)
	}
	return result
}

// TradingSessionStatus is the latest known status for one trading
// session ID.
type TradingSessionStatus struct {
	TradingSessionID string
	Status           string
	TradSesReqID     string
	UpdatedAt        time.Time
}

// TradingSessionStore holds the latest known status per trading
// session ID, following the same map-plus-RWMutex shape as
// SecurityStore.
type TradingSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*TradingSessionStatus // TradingSessionID -> status
}

// NewTradingSessionStore creates an empty TradingSessionStore.
func NewTradingSessionStore() *TradingSessionStore {
	return &TradingSessionStore{sessions: make(map[string]*TradingSessionStatus)}
}

// Update records payload as the latest status for its TradingSessionID.
func (s *TradingSessionStore) Update(payload events.TradingSessionStatusPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[payload.TradingSessionID] = &TradingSessionStatus{
		TradingSessionID: payload.TradingSessionID,
		Status:           payload.Status,
		TradSesReqID:     payload.TradSesReqID,
		UpdatedAt:        time.Now(),
	}
}

// Get returns a defensive copy of the status for tradingSessionID, or
// nil if no status has been observed yet.
func (s *TradingSessionStore) Get(tradingSessionID string) *TradingSessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[tradingSessionID]
	if !ok {
		return nil
	}
	cpy := *st
	return &cpy
}

// GetAll returns defensive copies of every known trading session
// status.
func (s *TradingSessionStore) GetAll() []*TradingSessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*TradingSessionStatus, 0, len(s.sessions))
	for _, st := range s.sessions {
		cpy := *st
		result = append(result, &cpy)
	}
	return result
}
