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

// Package idgen generates the request identifiers (MDReqID,
// SecurityReqID, TradSesReqID, SecurityStatusReqID) the session engine
// attaches to outbound requests, as an injected collaborator rather than
// an ad hoc UUID call scattered through request builders.
package idgen

import "github.com/google/uuid"

// Generator produces a fresh request identifier string.
type Generator interface {
	NewID() string
}

// UUIDGenerator is the default Generator, backed by google/uuid v4.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
