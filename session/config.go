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

import "time"

// Config holds everything the engine needs to run one session, derived
// by the embedder from its own configuration loader (see the config
// package for the environment-variable-backed implementation).
type Config struct {
	Address      string
	SenderCompID string
	TargetCompID string
	Username     string
	Password     string

	HeartBtInt   int  // seconds; also placed in tag 108
	ResetOnLogon bool // places 141=Y on Logon

	PartyID          string
	OnBehalfOfCompID string
	RawData          string
	RawDataLength    string

	ConnectTimeout time.Duration // default 5s
	WriteTimeout   time.Duration // default 5s
	LogonDelay     time.Duration // default 500ms

	ReconnectBaseDelay     time.Duration // default 5s
	ReconnectMaxDelay      time.Duration // default 30s
	MaxTestRequestRetries  int           // default 3
	TestRequestGracePeriod time.Duration // default 1x HeartBtInt; not read by the heartbeat tick, which escalates on the 2x silence threshold and MaxTestRequestRetries only
}

// withDefaults returns a copy of c with zero-valued optional fields
// filled in.
func (c Config) withDefaults() Config {
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 5 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 5 * time.Second
	}
	if c.LogonDelay == 0 {
		c.LogonDelay = 500 * time.Millisecond
	}
	if c.ReconnectBaseDelay == 0 {
		c.ReconnectBaseDelay = 5 * time.Second
	}
	if c.ReconnectMaxDelay == 0 {
		c.ReconnectMaxDelay = 30 * time.Second
	}
	if c.MaxTestRequestRetries == 0 {
		c.MaxTestRequestRetries = 3
	}
	if c.HeartBtInt == 0 {
		c.HeartBtInt = 30
	}
	if c.TestRequestGracePeriod == 0 {
		c.TestRequestGracePeriod = time.Duration(c.HeartBtInt) * time.Second
	}
	return c
}
