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
	"errors"
	"testing"
)

func TestZerologLogger_ImplementsLogger(t *testing.T) {
	var _ Logger = NewZerologLogger(false)
}

func TestZerologLogger_MethodsDoNotPanic(t *testing.T) {
	l := NewZerologLogger(true)

	l.Debug("connecting", Fields{"target": "NMDUFISQ0001"})
	l.Info("logged on", Fields{"seq": 1})
	l.Warn("duplicate seq", Fields{"stream": "regular", "got": 3, "want": 5})
	l.Error("transport closed", errors.New("eof"), Fields{"reconnect_in": "5s"})
	l.Info("no fields", nil)
}
