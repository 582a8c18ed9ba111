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

// Package logging defines the structured-logging capability the session
// engine takes as a dependency-injected collaborator, replacing the
// teacher's direct log.Printf calls with queryable fields (stream name,
// sequence numbers, msg type) per the singleton-to-DI redesign note.
package logging

// Fields is a set of structured key-value pairs attached to a log line.
type Fields map[string]any

// Logger is the capability the session engine and its collaborators
// depend on. Implementations must be safe for concurrent use, since the
// transport read loop and the session owner may both log.
type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
}
