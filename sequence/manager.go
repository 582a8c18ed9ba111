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

// Package sequence tracks the three independent outgoing/incoming
// MsgSeqNum streams a PSX FIX session keeps (Regular, SecurityList,
// MarketData). The Manager is not safe for concurrent use - callers on
// the session owner goroutine serialize access per the single-owner
// concurrency model.
package sequence

// Stream identifies one of the three independent sequence-number
// families PSX expects.
type Stream int

const (
	Regular Stream = iota
	SecurityList
	MarketData
)

func (s Stream) String() string {
	switch s {
	case Regular:
		return "regular"
	case SecurityList:
		return "security_list"
	case MarketData:
		return "market_data"
	default:
		return "unknown"
	}
}

type counters struct {
	outgoing int
	incoming int
}

// Manager owns the (outgoing, incoming) counter pair for each Stream and
// the notion of a "current" stream that request builders and the
// dispatcher consult without naming a stream explicitly.
type Manager struct {
	streams map[Stream]*counters
	current Stream
	store   Store
	onWarn  func(stream Stream, got, want int)
}

// New returns a Manager with every stream initialized to MsgSeqNumInit
// (1) on both directions, and Regular as the current stream.
func New(store Store) *Manager {
	m := &Manager{
		streams: map[Stream]*counters{
			Regular:      {outgoing: 1, incoming: 1},
			SecurityList: {outgoing: 1, incoming: 1},
			MarketData:   {outgoing: 1, incoming: 1},
		},
		current: Regular,
		store:   store,
	}
	return m
}

// OnWarn registers a callback invoked when observe() sees a seqIn that is
// not strictly greater than the tracked incoming counter - a possible
// duplicate or out-of-order delivery.
func (m *Manager) OnWarn(fn func(stream Stream, got, want int)) {
	m.onWarn = fn
}

// Current returns the stream request builders and the dispatcher should
// use right now.
func (m *Manager) Current() Stream {
	return m.current
}

// SwitchTo changes the current stream. Scoped operations (Security List
// Request/response, Market Data Request/response) call this around their
// send and receive; on completion they call SwitchTo(Regular) to return
// to the default.
func (m *Manager) SwitchTo(stream Stream) {
	m.current = stream
}

// Next returns the next outgoing MsgSeqNum for stream without consuming
// it; callers must call Advance after the frame carrying this value is
// actually sent.
func (m *Manager) Next(stream Stream) int {
	return m.streams[stream].outgoing
}

// Advance increments the outgoing counter for stream by one, to be
// called once the frame using Next's value has been written to the
// transport. Persists afterward if a Store is configured.
func (m *Manager) Advance(stream Stream) {
	m.streams[stream].outgoing++
	m.persist(stream)
}

// Observe updates the incoming counter for stream given a just-received
// MsgSeqNum. It only ever increases the counter: if seqIn is not
// strictly greater than the tracked value, OnWarn fires (if registered)
// and the counter is left untouched, so a duplicate or lower seqIn never
// moves incoming backwards; only Reset and ResetAll can lower it.
func (m *Manager) Observe(stream Stream, seqIn int) {
	c := m.streams[stream]
	if seqIn > c.incoming {
		c.incoming = seqIn
		m.persist(stream)
		return
	}
	if m.onWarn != nil {
		m.onWarn(stream, seqIn, c.incoming)
	}
}

// Reset sets stream's outgoing and incoming counters explicitly. This is
// the only way a counter may decrease - used for server-reported gap
// recovery and the reset-on-logon handshake.
func (m *Manager) Reset(stream Stream, outgoing, incoming int) {
	m.streams[stream].outgoing = outgoing
	m.streams[stream].incoming = incoming
	m.persist(stream)
}

// ResetAll sets every stream's outgoing counter to outgoing and incoming
// counter to 1, as happens when a Logon with ResetSeqNumFlag=Y is
// acknowledged.
func (m *Manager) ResetAll(outgoing int) {
	for stream := range m.streams {
		m.streams[stream].outgoing = outgoing
		m.streams[stream].incoming = 1
		m.persist(stream)
	}
}

// Snapshot returns the current (outgoing, incoming) pair for stream,
// primarily for display/diagnostics.
func (m *Manager) Snapshot(stream Stream) (outgoing, incoming int) {
	c := m.streams[stream]
	return c.outgoing, c.incoming
}

func (m *Manager) persist(stream Stream) {
	if m.store == nil {
		return
	}
	c := m.streams[stream]
	// A Save error is discarded here: it is neither returned nor logged,
	// and the in-memory counters stay authoritative.
	_ = m.store.Save(stream.String(), c.outgoing, c.incoming)
}

// LoadAll reloads every stream's counters from the configured Store.
// Whatever the Store last saved is loaded; LoadAll does not check which
// trading day that state belongs to.
func (m *Manager) LoadAll() error {
	if m.store == nil {
		return nil
	}
	for stream := range m.streams {
		outgoing, incoming, found, err := m.store.Load(stream.String())
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		m.streams[stream].outgoing = outgoing
		m.streams[stream].incoming = incoming
	}
	return nil
}
