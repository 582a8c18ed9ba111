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
	"testing"
	"time"
)

func TestConfig_WithDefaultsFillsZeroFields(t *testing.T) {
	c := Config{}.withDefaults()

	if c.ConnectTimeout != 5*time.Second {
		t.Errorf("ConnectTimeout: got %v, want 5s", c.ConnectTimeout)
	}
	if c.WriteTimeout != 5*time.Second {
		t.Errorf("WriteTimeout: got %v, want 5s", c.WriteTimeout)
	}
	if c.LogonDelay != 500*time.Millisecond {
		t.Errorf("LogonDelay: got %v, want 500ms", c.LogonDelay)
	}
	if c.ReconnectBaseDelay != 5*time.Second {
		t.Errorf("ReconnectBaseDelay: got %v, want 5s", c.ReconnectBaseDelay)
	}
	if c.ReconnectMaxDelay != 30*time.Second {
		t.Errorf("ReconnectMaxDelay: got %v, want 30s", c.ReconnectMaxDelay)
	}
	if c.MaxTestRequestRetries != 3 {
		t.Errorf("MaxTestRequestRetries: got %d, want 3", c.MaxTestRequestRetries)
	}
	if c.HeartBtInt != 30 {
		t.Errorf("HeartBtInt: got %d, want 30", c.HeartBtInt)
	}
	if c.TestRequestGracePeriod != 30*time.Second {
		t.Errorf("TestRequestGracePeriod: got %v, want 30s (1x HeartBtInt)", c.TestRequestGracePeriod)
	}
}

func TestConfig_WithDefaultsPreservesExplicitValues(t *testing.T) {
	c := Config{
		ConnectTimeout: time.Second,
		HeartBtInt:     10,
	}.withDefaults()

	if c.ConnectTimeout != time.Second {
		t.Errorf("ConnectTimeout: got %v, want 1s (explicit)", c.ConnectTimeout)
	}
	if c.HeartBtInt != 10 {
		t.Errorf("HeartBtInt: got %d, want 10 (explicit)", c.HeartBtInt)
	}
	if c.TestRequestGracePeriod != 10*time.Second {
		t.Errorf("TestRequestGracePeriod: got %v, want 10s (derived from explicit HeartBtInt)", c.TestRequestGracePeriod)
	}
}
