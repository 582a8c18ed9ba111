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

package transport

import (
	"context"
	"net"
	"sync"
	"time"
)

// TCPTransport is the default Transport: a plain TCP connection with
// keepalive and Nagle's algorithm disabled, since FIX frames are small
// and latency-sensitive.
type TCPTransport struct {
	KeepAlive time.Duration // defaults to 30s if zero

	mu   sync.Mutex
	conn net.Conn
}

func (t *TCPTransport) Dial(ctx context.Context, address string) error {
	keepAlive := t.KeepAlive
	if keepAlive == 0 {
		keepAlive = 30 * time.Second
	}
	dialer := &net.Dialer{KeepAlive: keepAlive}

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return err
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}

	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()
	return nil
}

func (t *TCPTransport) Read(buf []byte) (int, error) {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	return conn.Read(buf)
}

func (t *TCPTransport) Write(data []byte) (int, error) {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	return conn.Write(data)
}

func (t *TCPTransport) SetReadDeadline(deadline time.Time) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	return conn.SetReadDeadline(deadline)
}

func (t *TCPTransport) SetWriteDeadline(deadline time.Time) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	return conn.SetWriteDeadline(deadline)
}

func (t *TCPTransport) Close() error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}
