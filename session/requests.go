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

package session

import (
	"github.com/RonMathew32/psx-connect-sub000/builder"
	"github.com/RonMathew32/psx-connect-sub000/constants"
	"github.com/RonMathew32/psx-connect-sub000/sequence"
	"github.com/RonMathew32/psx-connect-sub000/sessionerr"
)

// requirePreconditions fails fast with a typed error when a request is
// issued before Connect or before the Logon handshake completes, per the
// NotConnected/NotLoggedIn error kinds.
func (e *Engine) requirePreconditions(requireLoggedIn bool) error {
	switch e.state {
	case Disconnected, Connecting:
		return sessionerr.New(sessionerr.NotConnected, "not connected")
	case LoggedIn:
		return nil
	default:
		if requireLoggedIn {
			return sessionerr.New(sessionerr.NotLoggedIn, "not logged in")
		}
		return nil
	}
}

// SubscribeParams holds the arguments to Subscribe.
type SubscribeParams struct {
	MdReqID                 string // generated via the injected idgen.Generator if empty
	Symbols                 []string
	MdEntryTypes            []string
	MarketDepth             int
	SubscriptionRequestType string // defaults to constants.SubscriptionRequestTypeSubscribe if empty
}

// Subscribe sends a Market Data Request (V). SubscriptionRequestType
// defaults to 1 (snapshot + updates); pass
// constants.SubscriptionRequestTypeSnapshot for a one-shot snapshot.
func (e *Engine) Subscribe(p SubscribeParams) error {
	var err error
	e.post(func() {
		if err = e.requirePreconditions(true); err != nil {
			return
		}
		if p.MdReqID == "" {
			p.MdReqID = e.ids.NewID()
		}
		reqType := p.SubscriptionRequestType
		if reqType == "" {
			reqType = constants.SubscriptionRequestTypeSubscribe
		}
		body := builder.BuildMarketDataRequest(builder.MarketDataRequestParams{
			MdReqID:                 p.MdReqID,
			Symbols:                 p.Symbols,
			SubscriptionRequestType: reqType,
			MarketDepth:             p.MarketDepth,
			MdEntryTypes:            p.MdEntryTypes,
			PartyID:                 e.cfg.PartyID,
		})
		err = e.sendFrame(constants.MsgTypeMarketDataRequest, sequence.MarketData, body)
	})
	return err
}

// Unsubscribe sends a Market Data Request (V) with
// SubscriptionRequestType=2 against a previously subscribed MdReqID.
func (e *Engine) Unsubscribe(mdReqID string, symbols []string) error {
	var err error
	e.post(func() {
		if err = e.requirePreconditions(true); err != nil {
			return
		}
		body := builder.BuildMarketDataRequest(builder.MarketDataRequestParams{
			MdReqID:                 mdReqID,
			Symbols:                 symbols,
			SubscriptionRequestType: constants.SubscriptionRequestTypeUnsubscribe,
			PartyID:                 e.cfg.PartyID,
		})
		err = e.sendFrame(constants.MsgTypeMarketDataRequest, sequence.MarketData, body)
	})
	return err
}

// RequestSecurityList sends a Security List Request (x) for every equity
// security PSX carries (55=NA, 460=4, 336=REG).
func (e *Engine) RequestSecurityList() error {
	var err error
	e.post(func() {
		if err = e.requirePreconditions(true); err != nil {
			return
		}
		body := builder.BuildSecurityListRequest(builder.SecurityListRequestParams{
			SecurityReqID: e.ids.NewID(),
			RequestType:   constants.SecurityListRequestTypeAll,
			Symbol:        "NA",
		})
		err = e.sendFrame(constants.MsgTypeSecurityListRequest, sequence.SecurityList, body)
	})
	return err
}

// RequestTradingSessionStatus sends a Trading Session Status Request (g)
// for tradingSessionID, defaulting to REG.
func (e *Engine) RequestTradingSessionStatus(tradingSessionID string) error {
	var err error
	e.post(func() {
		if err = e.requirePreconditions(true); err != nil {
			return
		}
		body := builder.BuildTradingSessionStatusRequest(e.ids.NewID(), tradingSessionID)
		err = e.sendFrame(constants.MsgTypeTradingSessionStatusReq, sequence.Regular, body)
	})
	return err
}

// RequestSecurityStatus sends a Security Status Request (e) for symbol.
func (e *Engine) RequestSecurityStatus(symbol string) error {
	var err error
	e.post(func() {
		if err = e.requirePreconditions(true); err != nil {
			return
		}
		body := builder.BuildSecurityStatusRequest(e.ids.NewID(), symbol, constants.SubscriptionRequestTypeSnapshot)
		err = e.sendFrame(constants.MsgTypeSecurityStatusRequest, sequence.Regular, body)
	})
	return err
}

// SetSequenceNumbers overrides a stream's outgoing/incoming counters
// directly, for operator recovery outside the normal reject/reset path.
func (e *Engine) SetSequenceNumbers(stream sequence.Stream, outgoing, incoming int) error {
	var err error
	e.post(func() {
		if err = e.requirePreconditions(false); err != nil {
			return
		}
		e.seq.Reset(stream, outgoing, incoming)
	})
	return err
}

// ResetSequenceNumbers sets every stream's outgoing counter to 1 and
// incoming to 1, matching the effect of a resetOnLogon handshake without
// requiring a fresh Logon.
func (e *Engine) ResetSequenceNumbers() error {
	var err error
	e.post(func() {
		if err = e.requirePreconditions(false); err != nil {
			return
		}
		e.seq.ResetAll(1)
	})
	return err
}
