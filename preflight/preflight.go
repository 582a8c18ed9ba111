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

// Package preflight defines the VPN/network-reachability check the
// embedder runs before calling connect(), kept as an interface-only
// external collaborator per the engine's scope boundary.
package preflight

import (
	"context"
	"net"
	"time"
)

// Checker reports whether the configured FIX endpoint is currently
// reachable, e.g. because a required VPN tunnel is up.
type Checker interface {
	Check(ctx context.Context) error
}

// DialProbe is the default Checker: it attempts a TCP dial to address
// and succeeds only if a connection is established before ctx/timeout
// expires.
type DialProbe struct {
	Address string
	Timeout time.Duration // defaults to 5s if zero
}

func (p DialProbe) Check(ctx context.Context) error {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", p.Address)
	if err != nil {
		return err
	}
	return conn.Close()
}
