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

package database

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	request_type TEXT NOT NULL,
	data_types TEXT NOT NULL,
	market_depth INTEGER,
	md_req_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL,
	price TEXT NOT NULL,
	size TEXT NOT NULL,
	aggressor_side TEXT,
	trade_time TEXT,
	seq_num INTEGER NOT NULL,
	md_req_id TEXT,
	is_snapshot INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS order_book (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	price TEXT NOT NULL,
	size TEXT NOT NULL,
	position INTEGER,
	seq_num INTEGER NOT NULL,
	md_req_id TEXT,
	is_snapshot INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS ohlcv (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL,
	data_type TEXT NOT NULL,
	value TEXT NOT NULL,
	entry_time TEXT,
	seq_num INTEGER NOT NULL,
	md_req_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS securities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL,
	cfi_code TEXT,
	product TEXT,
	security_req_id TEXT,
	snapshot_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS trading_session_status (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	trading_session_id TEXT NOT NULL,
	trad_ses_status TEXT NOT NULL,
	trad_ses_req_id TEXT,
	observed_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sequence_state (
	stream TEXT PRIMARY KEY,
	outgoing_seq_num INTEGER NOT NULL,
	incoming_seq_num INTEGER NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const (
	insertSessionQuery = `INSERT INTO sessions (session_id, symbol, request_type, data_types, market_depth, md_req_id)
		VALUES (?, ?, ?, ?, ?, ?)`

	insertTradeQuery = `INSERT INTO trades (symbol, price, size, aggressor_side, trade_time, seq_num, md_req_id, is_snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	insertOrderBookQuery = `INSERT INTO order_book (symbol, side, price, size, position, seq_num, md_req_id, is_snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	insertOHLCVQuery = `INSERT INTO ohlcv (symbol, data_type, value, entry_time, seq_num, md_req_id)
		VALUES (?, ?, ?, ?, ?, ?)`

	insertSecurityQuery = `INSERT INTO securities (symbol, cfi_code, product, security_req_id)
		VALUES (?, ?, ?, ?)`

	insertTradingSessionStatusQuery = `INSERT INTO trading_session_status (trading_session_id, trad_ses_status, trad_ses_req_id)
		VALUES (?, ?, ?)`

	upsertSequenceStateQuery = `INSERT INTO sequence_state (stream, outgoing_seq_num, incoming_seq_num, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(stream) DO UPDATE SET
			outgoing_seq_num = excluded.outgoing_seq_num,
			incoming_seq_num = excluded.incoming_seq_num,
			updated_at = CURRENT_TIMESTAMP`

	selectSequenceStateQuery = `SELECT stream, outgoing_seq_num, incoming_seq_num FROM sequence_state WHERE stream = ?`
)

func (mdb *MarketDataDb) initSchema() error {
	_, err := mdb.db.Exec(schemaSQL)
	return err
}
