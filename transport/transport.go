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

// Package transport abstracts the byte stream a FIX session runs over,
// so the session package depends on an interface rather than net.Conn
// directly - useful for tests and for swapping in a TLS-wrapped dialer
// without touching session code.
package transport

import (
	"context"
	"time"
)

// Transport is a byte stream with explicit lifecycle and deadline
// control. Implementations need not be safe for concurrent Read/Write
// from multiple goroutines simultaneously, but Close must be safe to
// call concurrently with a blocked Read.
type Transport interface {
	Dial(ctx context.Context, address string) error
	Read(buf []byte) (int, error)
	Write(data []byte) (int, error)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}
