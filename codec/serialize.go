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
	"time"
)

// Serialize renders header and body into a complete FIXT.1.1 frame:
// 8, 9, 35, 49, 56, 34, 52, then body in caller order, then 10.
// BodyLength (9) and Checksum (10) are computed per the framing rules in
// the FIX engine's data model - see the session package for field
// ordering requirements the caller must already satisfy for repeating
// groups (count tag first, then each entry's fields contiguously).
func Serialize(h Header, body []Field) []byte {
	sendingTime := h.SendingTime
	if sendingTime == "" {
		sendingTime = time.Now().UTC().Format("20060102-15:04:05.000")
	}

	var bodyBuf strings.Builder
	writeField(&bodyBuf, 35, h.MsgType)
	writeField(&bodyBuf, 49, h.SenderCompID)
	writeField(&bodyBuf, 56, h.TargetCompID)
	writeField(&bodyBuf, 34, strconv.Itoa(h.MsgSeqNum))
	writeField(&bodyBuf, 52, sendingTime)
	for _, f := range body {
		writeField(&bodyBuf, f.Tag, f.Value)
	}
	bodyStr := bodyBuf.String()

	var frame strings.Builder
	writeField(&frame, 8, "FIXT.1.1")
	writeField(&frame, 9, strconv.Itoa(len(bodyStr)))
	frame.WriteString(bodyStr)

	checksum := Checksum([]byte(frame.String()))
	writeField(&frame, 10, pad3(checksum))

	return []byte(frame.String())
}

func writeField(b *strings.Builder, tag int, value string) {
	b.WriteString(strconv.Itoa(tag))
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteByte(SOH)
}

func pad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// Checksum computes (sum of all bytes mod 256) per FIX tag 10 semantics.
func Checksum(b []byte) int {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}
	return sum % 256
}
