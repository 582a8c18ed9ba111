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

import "github.com/RonMathew32/psx-connect-sub000/database"

// SQLiteStore persists stream counters through the same sqlite database
// used for market-data/security-list/trading-session persistence,
// giving the teacher's mattn/go-sqlite3 dependency a second consumer.
type SQLiteStore struct {
	db *database.MarketDataDb
}

// NewSQLiteStore wraps an already-open MarketDataDb for sequence-state
// persistence.
func NewSQLiteStore(db *database.MarketDataDb) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(stream string, outgoing, incoming int) error {
	return s.db.SaveSequenceState(stream, outgoing, incoming)
}

func (s *SQLiteStore) Load(stream string) (outgoing, incoming int, found bool, err error) {
	return s.db.LoadSequenceState(stream)
}
