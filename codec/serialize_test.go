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

package codec

import (
	"strconv"
	"strings"
	"testing"
)

func TestSerialize_RoundTripsThroughParse(t *testing.T) {
	h := Header{
		MsgType:      "V",
		SenderCompID: "CLIENT1",
		TargetCompID: "PSX",
		MsgSeqNum:    7,
		SendingTime:  "20260101-00:00:00.000",
	}
	body := []Field{
		{Tag: 262, Value: "req-1"},
		{Tag: 263, Value: "1"},
		{Tag: 146, Value: "1"},
		{Tag: 55, Value: "OGDC"},
	}

	frame := Serialize(h, body)

	parsed, err := Parse(frame)
	if err != nil {
		t.Fatalf("Parse(Serialize(...)) failed: %v", err)
	}
	if got := parsed.MsgType(); got != "V" {
		t.Errorf("MsgType: got %q, want %q", got, "V")
	}
	if got := parsed.Get(49); got != "CLIENT1" {
		t.Errorf("SenderCompID: got %q, want %q", got, "CLIENT1")
	}
	if got := parsed.Get(34); got != "7" {
		t.Errorf("MsgSeqNum: got %q, want %q", got, "7")
	}
	if got := parsed.Get(55); got != "OGDC" {
		t.Errorf("Symbol: got %q, want %q", got, "OGDC")
	}
}

func TestSerialize_HeaderFieldOrder(t *testing.T) {
	h := Header{MsgType: "A", SenderCompID: "C", TargetCompID: "S", MsgSeqNum: 1, SendingTime: "20260101-00:00:00.000"}
	frame := Serialize(h, nil)

	s := string(frame)
	wantPrefixes := []string{"8=FIXT.1.1\x01", "9="}
	for _, p := range wantPrefixes {
		if !strings.HasPrefix(s, p) && !strings.Contains(s, p) {
			t.Errorf("frame missing expected prefix %q: %s", p, s)
		}
	}

	bodyStart := strings.Index(s, "\x0135=")
	if bodyStart == -1 {
		t.Fatalf("frame missing 35= MsgType field: %s", s)
	}
	order := []string{"35=A", "49=C", "56=S", "34=1", "52="}
	last := bodyStart
	for _, tag := range order {
		idx := strings.Index(s, tag)
		if idx == -1 {
			t.Fatalf("frame missing field %q: %s", tag, s)
		}
		if idx < last {
			t.Errorf("field %q out of order in frame: %s", tag, s)
		}
		last = idx
	}
	if !strings.HasSuffix(s, "\x01") {
		t.Errorf("frame does not end with SOH-terminated checksum field: %s", s)
	}
}

func TestSerialize_SendingTimeDefaultedWhenEmpty(t *testing.T) {
	h := Header{MsgType: "0", SenderCompID: "C", TargetCompID: "S", MsgSeqNum: 2}
	frame := Serialize(h, nil)

	parsed, err := Parse(frame)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := parsed.Get(52); got == "" {
		t.Errorf("expected SendingTime to be defaulted, got empty")
	}
}

func TestChecksum_ModuloWraps(t *testing.T) {
	// 256 'A' bytes (0x41 = 65) sums to 16640, which mod 256 is 0.
	data := strings.Repeat("A", 256)
	got := Checksum([]byte(data))
	want := (65 * 256) % 256
	if got != want {
		t.Errorf("Checksum: got %d, want %d", got, want)
	}
}

func TestPad3(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "000"},
		{7, "007"},
		{42, "042"},
		{255, "255"},
	}
	for _, tt := range cases {
		t.Run(strconv.Itoa(tt.in), func(t *testing.T) {
			if got := pad3(tt.in); got != tt.want {
				t.Errorf("pad3(%d): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
