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

import "bytes"

// trailerPrefix is the byte sequence that marks the start of a frame's
// checksum field: SOH, "10=".
var trailerPrefix = []byte{SOH, '1', '0', '='}

// Splitter accumulates bytes from a transport read loop and emits complete
// FIX frames as soon as they are available, independent of how the
// underlying byte stream happened to be chunked. Frames not beginning
// with "8=FIX" are logged by the caller (via the Dropped callback) and
// discarded rather than returned.
type Splitter struct {
	buf []byte

	// Dropped, if set, is invoked with the raw bytes of any span that was
	// discarded because it did not begin with "8=FIX".
	Dropped func(raw []byte)
}

// Feed appends data to the internal buffer and returns every complete
// frame it can extract. Incomplete trailing bytes are retained for the
// next call.
func (s *Splitter) Feed(data []byte) [][]byte {
	s.buf = append(s.buf, data...)

	var frames [][]byte
	for {
		frame, rest, ok := s.extractOne(s.buf)
		if !ok {
			break
		}
		s.buf = rest
		if frame != nil {
			frames = append(frames, frame)
		}
	}
	return frames
}

// extractOne pulls the first complete frame (or discarded span) off buf.
// ok is false when buf holds no complete frame yet.
func (s *Splitter) extractOne(buf []byte) (frame []byte, rest []byte, ok bool) {
	if len(buf) == 0 {
		return nil, buf, false
	}

	if !bytes.HasPrefix(buf, []byte("8=FIX")) {
		// Not a frame start - try to resynchronize on the next "8=FIX"
		// occurrence so a corrupted prefix doesn't wedge the stream.
		next := bytes.Index(buf[1:], []byte("8=FIX"))
		if next == -1 {
			// Can't resynchronize yet; keep buffering. No size bound is
			// applied to bytes buffered while waiting for a frame start.
			return nil, buf, false
		}
		dropped := buf[:next+1]
		if s.Dropped != nil {
			s.Dropped(dropped)
		}
		return nil, buf[next+1:], true
	}

	trailerAt := bytes.Index(buf, trailerPrefix)
	if trailerAt == -1 {
		return nil, buf, false
	}

	// Need 3 checksum digits plus the trailing SOH after trailerPrefix.
	digitsStart := trailerAt + len(trailerPrefix)
	if len(buf) < digitsStart+4 {
		return nil, buf, false
	}
	for i := 0; i < 3; i++ {
		if buf[digitsStart+i] < '0' || buf[digitsStart+i] > '9' {
			// Malformed checksum field; drop up through this point and
			// resynchronize on the next frame start.
			bad := buf[:digitsStart+3]
			if s.Dropped != nil {
				s.Dropped(bad)
			}
			return nil, buf[digitsStart+3:], true
		}
	}
	if buf[digitsStart+3] != SOH {
		bad := buf[:digitsStart+3]
		if s.Dropped != nil {
			s.Dropped(bad)
		}
		return nil, buf[digitsStart+3:], true
	}

	end := digitsStart + 4
	return buf[:end], buf[end:], true
}
