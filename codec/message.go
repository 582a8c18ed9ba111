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

// Package codec implements byte-accurate serialization and parsing of
// FIXT.1.1 frames: BodyLength/Checksum discipline, SOH-delimited
// tag=value fields, and repeating-group extraction. It does not interpret
// message semantics beyond extracting string field values - that is the
// session package's job.
package codec

import "strconv"

// SOH is the FIX field delimiter, ASCII 0x01.
const SOH = '\x01'

// Field is a single tag=value pair in wire order.
type Field struct {
	Tag   int
	Value string
}

// Header carries the fields every outbound frame needs set explicitly;
// Serialize fills BodyLength, Checksum, and SendingTime (if empty).
type Header struct {
	MsgType      string
	SenderCompID string
	TargetCompID string
	MsgSeqNum    int
	SendingTime  string // optional; UTC YYYYMMDD-HH:MM:SS.sss filled in if empty
}

// Group is one occurrence of a repeating-group entry: member tag (as a
// string, matching ParsedMessage.Tags) to value.
type Group map[string]string

// ParsedMessage is the result of Parse: a flat tag->value view (with
// repeating-group members additionally exposed under synthesized
// "tag.index" keys) plus a grouped view keyed by the enclosing count tag.
// Handlers should prefer Groups for repeating-group data and Tags for
// scalar header/body fields, per the "two views" design in DESIGN NOTES.
type ParsedMessage struct {
	Tags   map[string]string
	Groups map[string][]Group
	Order  []Field
}

// Get returns the scalar value for tag, or "" if absent.
func (p *ParsedMessage) Get(tag int) string {
	return p.Tags[strconv.Itoa(tag)]
}

// GetIndexed returns the value of the i'th occurrence of tag, or "" if
// there were fewer than i+1 occurrences.
func (p *ParsedMessage) GetIndexed(tag, i int) string {
	return p.Tags[strconv.Itoa(tag)+"."+strconv.Itoa(i)]
}

// MsgType is a convenience accessor for tag 35.
func (p *ParsedMessage) MsgType() string {
	return p.Get(35)
}
