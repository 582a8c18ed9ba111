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

import "testing"

func TestManager_InitialState(t *testing.T) {
	m := New(nil)
	for _, s := range []Stream{Regular, SecurityList, MarketData} {
		out, in := m.Snapshot(s)
		if out != 1 || in != 1 {
			t.Errorf("stream %s: got (%d, %d), want (1, 1)", s, out, in)
		}
	}
	if m.Current() != Regular {
		t.Errorf("initial current stream: got %s, want regular", m.Current())
	}
}

func TestManager_NextAdvance(t *testing.T) {
	m := New(nil)
	if got := m.Next(Regular); got != 1 {
		t.Fatalf("Next before Advance: got %d, want 1", got)
	}
	m.Advance(Regular)
	if got := m.Next(Regular); got != 2 {
		t.Fatalf("Next after Advance: got %d, want 2", got)
	}
	m.Advance(Regular)
	m.Advance(Regular)
	if got := m.Next(Regular); got != 4 {
		t.Fatalf("Next after 3 advances: got %d, want 4", got)
	}
}

func TestManager_AdvanceIsPerStream(t *testing.T) {
	m := New(nil)
	m.Advance(MarketData)
	if got := m.Next(Regular); got != 1 {
		t.Errorf("Regular affected by MarketData advance: got %d, want 1", got)
	}
	if got := m.Next(MarketData); got != 2 {
		t.Errorf("MarketData: got %d, want 2", got)
	}
}

func TestManager_ObserveIncreasesIncoming(t *testing.T) {
	m := New(nil)
	m.Observe(Regular, 5)
	_, in := m.Snapshot(Regular)
	if in != 5 {
		t.Fatalf("incoming after Observe(5): got %d, want 5", in)
	}
}

func TestManager_ObserveNeverDecreases(t *testing.T) {
	m := New(nil)
	m.Observe(Regular, 5)

	var warned bool
	var gotSeq, gotWant int
	m.OnWarn(func(stream Stream, got, want int) {
		warned = true
		gotSeq, gotWant = got, want
	})

	m.Observe(Regular, 3)
	_, in := m.Snapshot(Regular)
	if in != 5 {
		t.Errorf("incoming regressed: got %d, want 5", in)
	}
	if !warned {
		t.Errorf("expected OnWarn to fire for out-of-order seqIn")
	}
	if gotSeq != 3 || gotWant != 5 {
		t.Errorf("OnWarn args: got (%d, %d), want (3, 5)", gotSeq, gotWant)
	}
}

func TestManager_ObserveDuplicateWarns(t *testing.T) {
	m := New(nil)
	m.Observe(Regular, 5)

	var warnCount int
	m.OnWarn(func(Stream, int, int) { warnCount++ })
	m.Observe(Regular, 5)

	if warnCount != 1 {
		t.Errorf("expected exactly one warn for a duplicate seqIn, got %d", warnCount)
	}
}

func TestManager_Reset(t *testing.T) {
	m := New(nil)
	m.Advance(SecurityList)
	m.Advance(SecurityList)
	m.Reset(SecurityList, 10, 9)
	out, in := m.Snapshot(SecurityList)
	if out != 10 || in != 9 {
		t.Errorf("after Reset: got (%d, %d), want (10, 9)", out, in)
	}
}

func TestManager_ResetAllSetsGivenOutgoingAndIncomingToOne(t *testing.T) {
	m := New(nil)
	m.Advance(Regular)
	m.Observe(MarketData, 7)

	m.ResetAll(2)
	for _, s := range []Stream{Regular, SecurityList, MarketData} {
		out, in := m.Snapshot(s)
		if out != 2 || in != 1 {
			t.Errorf("stream %s after ResetAll(2): got (%d, %d), want (2, 1)", s, out, in)
		}
	}
}

func TestManager_SwitchToAndBack(t *testing.T) {
	m := New(nil)
	m.SwitchTo(MarketData)
	if m.Current() != MarketData {
		t.Fatalf("Current: got %s, want market_data", m.Current())
	}
	m.SwitchTo(Regular)
	if m.Current() != Regular {
		t.Fatalf("Current: got %s, want regular", m.Current())
	}
}

type fakeStore struct {
	saved map[string][2]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][2]int)}
}

func (f *fakeStore) Save(stream string, outgoing, incoming int) error {
	f.saved[stream] = [2]int{outgoing, incoming}
	return nil
}

func (f *fakeStore) Load(stream string) (outgoing, incoming int, found bool, err error) {
	v, ok := f.saved[stream]
	if !ok {
		return 0, 0, false, nil
	}
	return v[0], v[1], true, nil
}

func TestManager_PersistsOnAdvanceAndReset(t *testing.T) {
	store := newFakeStore()
	m := New(store)

	m.Advance(Regular)
	if v, ok := store.saved[Regular.String()]; !ok || v != [2]int{2, 1} {
		t.Errorf("after Advance: got %+v (present=%v), want {2 1}", v, ok)
	}

	m.Reset(MarketData, 3, 3)
	if v, ok := store.saved[MarketData.String()]; !ok || v != [2]int{3, 3} {
		t.Errorf("after Reset: got %+v (present=%v), want {3 3}", v, ok)
	}
}

func TestManager_LoadAllReloadsFromStore(t *testing.T) {
	store := newFakeStore()
	_ = store.Save(Regular.String(), 40, 39)
	_ = store.Save(SecurityList.String(), 5, 4)

	m := New(store)
	if err := m.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	out, in := m.Snapshot(Regular)
	if out != 40 || in != 39 {
		t.Errorf("Regular after LoadAll: got (%d, %d), want (40, 39)", out, in)
	}
	out, in = m.Snapshot(MarketData)
	if out != 1 || in != 1 {
		t.Errorf("MarketData with no saved state after LoadAll: got (%d, %d), want (1, 1)", out, in)
	}
}
