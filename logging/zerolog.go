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

package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger is the default Logger, backed by rs/zerolog writing
// human-readable console output in development and JSON in production,
// matching how zerolog consumers in the retrieval pack configure it.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger builds a ZerologLogger. When pretty is true, output
// goes through zerolog.ConsoleWriter for local/interactive use; otherwise
// it writes newline-delimited JSON to stdout.
func NewZerologLogger(pretty bool) *ZerologLogger {
	var l zerolog.Logger
	if pretty {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return &ZerologLogger{log: l}
}

func apply(e *zerolog.Event, fields Fields) *zerolog.Event {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	return e
}

func (z *ZerologLogger) Debug(msg string, fields Fields) {
	apply(z.log.Debug(), fields).Msg(msg)
}

func (z *ZerologLogger) Info(msg string, fields Fields) {
	apply(z.log.Info(), fields).Msg(msg)
}

func (z *ZerologLogger) Warn(msg string, fields Fields) {
	apply(z.log.Warn(), fields).Msg(msg)
}

func (z *ZerologLogger) Error(msg string, err error, fields Fields) {
	apply(z.log.Error().Err(err), fields).Msg(msg)
}
