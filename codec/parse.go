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

	"github.com/RonMathew32/psx-connect-sub000/sessionerr"
)

// groupMembers maps a repeating-group count tag to the tag that marks the
// start of each new entry within that group. Used only to build the
// Groups view; the flat Tags view covers every tag regardless of whether
// it belongs to a known group.
var groupMembers = map[int]int{
	146: 55,  // NoRelatedSym -> Symbol
	267: 269, // NoMDEntryTypes -> MDEntryType
	268: 269, // NoMDEntries -> MDEntryType
	453: 448, // NoPartyIDs -> PartyID
	393: 55,  // NoSecurities -> Symbol
}

// Parse verifies BodyLength and Checksum and decodes frame into a
// ParsedMessage. Every tag is exposed at its first occurrence under its
// plain key, and every occurrence (including the first) is also exposed
// under a synthesized "tag.index" key, so repeated tags - whether or not
// they belong to a group this package recognizes - are never silently
// overwritten. A separate Groups view is built for the count tags in
// groupMembers, keyed by the count tag's own string value.
func Parse(frame []byte) (*ParsedMessage, error) {
	fields, err := splitFields(frame)
	if err != nil {
		return nil, err
	}
	if err := verifyFraming(frame, fields); err != nil {
		return nil, err
	}

	msg := &ParsedMessage{
		Tags:   make(map[string]string, len(fields)),
		Groups: make(map[string][]Group),
		Order:  fields,
	}

	occurrences := make(map[int]int, len(fields))
	for _, f := range fields {
		idx := occurrences[f.Tag]
		occurrences[f.Tag] = idx + 1

		key := strconv.Itoa(f.Tag)
		if idx == 0 {
			msg.Tags[key] = f.Value
		}
		msg.Tags[key+"."+strconv.Itoa(idx)] = f.Value
	}

	buildGroups(msg, fields)

	return msg, nil
}

// splitFields walks frame byte by byte, splitting on SOH and "=" without
// allocating intermediate strings.Split slices for the whole frame.
func splitFields(frame []byte) ([]Field, error) {
	var fields []Field
	start := 0
	for i := 0; i < len(frame); i++ {
		if frame[i] != SOH {
			continue
		}
		raw := frame[start:i]
		start = i + 1

		eq := indexByte(raw, '=')
		if eq == -1 {
			return nil, sessionerr.New(sessionerr.FrameCorrupt, "field missing '=' delimiter")
		}
		tag, err := strconv.Atoi(string(raw[:eq]))
		if err != nil {
			return nil, sessionerr.Wrap(sessionerr.FrameCorrupt, "non-numeric tag", err)
		}
		fields = append(fields, Field{Tag: tag, Value: string(raw[eq+1:])})
	}
	if len(fields) == 0 {
		return nil, sessionerr.New(sessionerr.FrameCorrupt, "empty frame")
	}
	return fields, nil
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// verifyFraming recomputes BodyLength (9) and Checksum (10) and compares
// them against the values the frame itself claims.
func verifyFraming(frame []byte, fields []Field) error {
	if len(fields) < 3 || fields[0].Tag != 8 || fields[1].Tag != 9 {
		return sessionerr.New(sessionerr.FrameCorrupt, "frame does not start with 8=, 9=")
	}
	last := fields[len(fields)-1]
	if last.Tag != 10 {
		return sessionerr.New(sessionerr.FrameCorrupt, "frame does not end with checksum field")
	}

	claimedLen, err := strconv.Atoi(fields[1].Value)
	if err != nil {
		return sessionerr.Wrap(sessionerr.FrameCorrupt, "non-numeric BodyLength", err)
	}

	prefixLen := len("8=") + len(fields[0].Value) + 1 + len("9=") + len(fields[1].Value) + 1
	checksumFieldLen := len("10=") + len(last.Value) + 1
	actualLen := len(frame) - prefixLen - checksumFieldLen
	if actualLen != claimedLen {
		return sessionerr.New(sessionerr.FrameCorrupt,
			"BodyLength mismatch: claimed "+fields[1].Value+" got "+strconv.Itoa(actualLen))
	}

	checksumInput := frame[:len(frame)-checksumFieldLen]
	expected := Checksum(checksumInput)
	actual, err := strconv.Atoi(last.Value)
	if err != nil {
		return sessionerr.Wrap(sessionerr.FrameCorrupt, "non-numeric checksum", err)
	}
	if actual != expected {
		return sessionerr.New(sessionerr.FrameCorrupt,
			"checksum mismatch: claimed "+last.Value+" computed "+pad3(expected))
	}

	return nil
}

// buildGroups detects, for every count tag in groupMembers present in
// fields, where each entry begins (the next occurrence of that group's
// member tag after the count tag) and collects the fields belonging to
// each entry up to the next entry boundary or the next count tag.
func buildGroups(msg *ParsedMessage, fields []Field) {
	for i, f := range fields {
		memberTag, known := groupMembers[f.Tag]
		if !known {
			continue
		}
		countKey := strconv.Itoa(f.Tag)
		if _, seen := msg.Groups[countKey]; seen {
			continue // already processed this count tag's run
		}

		var entries []Group
		var current Group
		for j := i + 1; j < len(fields); j++ {
			next := fields[j]
			if _, isCount := groupMembers[next.Tag]; isCount {
				break // a different repeating group starts; this one ends
			}
			if next.Tag == memberTag {
				if current != nil {
					entries = append(entries, current)
				}
				current = Group{}
			}
			if current == nil {
				continue // fields before the first member tag aren't part of this group
			}
			current[strconv.Itoa(next.Tag)] = next.Value
		}
		if current != nil {
			entries = append(entries, current)
		}
		msg.Groups[countKey] = entries
	}
}
