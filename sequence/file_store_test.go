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
	"path/filepath"
	"testing"
)

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.record")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Save(Regular.String(), 10, 9); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, in, found, err := fs.Load(Regular.String())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatalf("expected found=true after Save")
	}
	if out != 10 || in != 9 {
		t.Errorf("got (%d, %d), want (10, 9)", out, in)
	}
}

func TestFileStore_LoadMissingStreamNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.record")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	_, _, found, err := fs.Load(MarketData.String())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Errorf("expected found=false for a stream never saved")
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.record")

	fs1, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := fs1.Save(Regular.String(), 7, 6); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := fs1.Save(SecurityList.String(), 3, 2); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := fs1.Save(MarketData.String(), 20, 19); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fs2, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopening NewFileStore: %v", err)
	}

	cases := []struct {
		stream       string
		wantOutgoing int
		wantIncoming int
	}{
		{Regular.String(), 7, 6},
		{SecurityList.String(), 3, 2},
		{MarketData.String(), 20, 19},
	}
	for _, tt := range cases {
		t.Run(tt.stream, func(t *testing.T) {
			out, in, found, err := fs2.Load(tt.stream)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !found {
				t.Fatalf("expected found=true for %s after reopen", tt.stream)
			}
			if out != tt.wantOutgoing || in != tt.wantIncoming {
				t.Errorf("got (%d, %d), want (%d, %d)", out, in, tt.wantOutgoing, tt.wantIncoming)
			}
		})
	}
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.record")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore on missing file: %v", err)
	}
	_, _, found, err := fs.Load(Regular.String())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Errorf("expected found=false when file never existed")
	}
}
