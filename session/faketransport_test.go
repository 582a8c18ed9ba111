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

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/logging"
)

// fakeTransport is an in-memory transport.Transport double. Writes are
// captured for assertions; inbound frames are delivered by pushing onto
// readCh, simulating bytes arriving from the wire.
type fakeTransport struct {
	mu      sync.Mutex
	dialErr error
	writes  [][]byte
	readCh  chan []byte
	closed  bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{readCh: make(chan []byte, 16)}
}

func (f *fakeTransport) Dial(ctx context.Context, address string) error {
	return f.dialErr
}

func (f *fakeTransport) Read(buf []byte) (int, error) {
	data, ok := <-f.readCh
	if !ok {
		return 0, io.EOF
	}
	return copy(buf, data), nil
}

func (f *fakeTransport) Write(data []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := append([]byte(nil), data...)
	f.writes = append(f.writes, cp)
	return len(data), nil
}

func (f *fakeTransport) SetReadDeadline(t time.Time) error  { return nil }
func (f *fakeTransport) SetWriteDeadline(t time.Time) error { return nil }

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.readCh)
	}
	return nil
}

// push simulates a complete frame arriving from the counterparty.
func (f *fakeTransport) push(frame []byte) {
	f.readCh <- frame
}

func (f *fakeTransport) lastWrite() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return nil
	}
	return f.writes[len(f.writes)-1]
}

func (f *fakeTransport) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

// fakeLogger discards everything; tests assert on emitted events and
// sent frames, not log lines.
type fakeLogger struct{}

func (fakeLogger) Debug(msg string, fields logging.Fields)          {}
func (fakeLogger) Info(msg string, fields logging.Fields)           {}
func (fakeLogger) Warn(msg string, fields logging.Fields)           {}
func (fakeLogger) Error(msg string, err error, fields logging.Fields) {}

// fakeIDs returns a fixed, predictable ID so tests can assert on the
// exact MdReqID/SecurityReqID a request carries.
type fakeIDs struct{ id string }

func (f fakeIDs) NewID() string { return f.id }
