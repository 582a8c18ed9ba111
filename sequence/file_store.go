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

package sequence

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// streamOrder fixes the six-integer record layout: regular out/in,
// security_list out/in, market_data out/in.
var streamOrder = []string{
	Regular.String(), SecurityList.String(), MarketData.String(),
}

// FileStore persists all three streams' counters as one record of six
// decimal integers in the single file at path, matching spec.md §6's
// "persisted state" layout; the file is not keyed or rotated by trading
// day. Every Save rewrites the whole
// record via a temp-file-then-rename so a crash mid-write never leaves
// a partially-written record behind.
type FileStore struct {
	mu   sync.Mutex
	path string
	rec  map[string]counters
}

// NewFileStore opens (or creates) the record file at path, loading any
// existing values into memory.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, rec: make(map[string]counters)}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	fields := strings.Fields(string(data))
	if len(fields) != 2*len(streamOrder) {
		return nil // treat a malformed/partial file as "no prior state"
	}
	for i, stream := range streamOrder {
		out, err := strconv.Atoi(fields[i*2])
		if err != nil {
			return fmt.Errorf("sequence file store: parsing %s outgoing: %w", stream, err)
		}
		in, err := strconv.Atoi(fields[i*2+1])
		if err != nil {
			return fmt.Errorf("sequence file store: parsing %s incoming: %w", stream, err)
		}
		fs.rec[stream] = counters{outgoing: out, incoming: in}
	}
	return nil
}

func (fs *FileStore) Save(stream string, outgoing, incoming int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.rec[stream] = counters{outgoing: outgoing, incoming: incoming}

	var b strings.Builder
	for _, s := range streamOrder {
		c := fs.rec[s]
		fmt.Fprintf(&b, "%d %d ", c.outgoing, c.incoming)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.TrimSpace(b.String())+"\n"), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path)
}

func (fs *FileStore) Load(stream string) (outgoing, incoming int, found bool, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	c, ok := fs.rec[stream]
	if !ok {
		return 0, 0, false, nil
	}
	return c.outgoing, c.incoming, true, nil
}
