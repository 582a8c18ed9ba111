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

package sessionerr

import (
	"errors"
	"testing"
)

func TestIs_MatchesKind(t *testing.T) {
	err := New(FrameCorrupt, "bad checksum")
	if !Is(err, FrameCorrupt) {
		t.Errorf("expected Is(err, FrameCorrupt) to be true")
	}
	if Is(err, TransportError) {
		t.Errorf("expected Is(err, TransportError) to be false")
	}
}

func TestIs_FalseForPlainError(t *testing.T) {
	if Is(errors.New("plain"), FrameCorrupt) {
		t.Errorf("expected Is to be false for a non-*Error")
	}
}

func TestWrap_UnwrapReturnsCause(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(TransportError, "read failed", cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}
}

func TestKind_String(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{FrameCorrupt, "frame_corrupt"},
		{SequenceMismatch, "sequence_mismatch"},
		{NotLoggedIn, "not_logged_in"},
		{Kind(999), "unknown"},
	}
	for _, tt := range cases {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}
