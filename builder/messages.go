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

// Package builder constructs the body fields of outbound FIX messages.
// Builders never assign MsgSeqNum or touch the sequence manager - callers
// pass the next sequence number in through codec.Header at send time.
package builder

import (
	"strconv"

	"github.com/RonMathew32/psx-connect-sub000/codec"
	"github.com/RonMathew32/psx-connect-sub000/constants"
)

func field(tag int, value string) codec.Field {
	return codec.Field{Tag: tag, Value: value}
}

func fieldIfNotEmpty(fields []codec.Field, tag int, value string) []codec.Field {
	if value == "" {
		return fields
	}
	return append(fields, field(tag, value))
}

// LogonParams holds the fields a Logon needs beyond what the header
// carries.
type LogonParams struct {
	EncryptMethod    string // defaults to constants.EncryptMethodNone if empty
	HeartBtInt       int
	Username         string
	Password         string
	ResetSeqNumFlag  bool
	OnBehalfOfCompID string // optional, tag 115
	RawData          string // defaults to constants.RawDataKSE if empty
}

// BuildLogon returns the body fields for a Logon (A) message, including
// the PSX-specific DefaultApplVerID/DefaultCstmApplVerID and RawData/
// RawDataLength pair.
func BuildLogon(p LogonParams) []codec.Field {
	encryptMethod := p.EncryptMethod
	if encryptMethod == "" {
		encryptMethod = constants.EncryptMethodNone
	}
	rawData := p.RawData
	if rawData == "" {
		rawData = constants.RawDataKSE
	}

	fields := []codec.Field{
		field(constants.TagEncryptMethod, encryptMethod),
		field(constants.TagHeartBtInt, strconv.Itoa(p.HeartBtInt)),
	}
	fields = fieldIfNotEmpty(fields, constants.TagUsername, p.Username)
	fields = fieldIfNotEmpty(fields, constants.TagPassword, p.Password)
	if p.ResetSeqNumFlag {
		fields = append(fields, field(constants.TagResetSeqNumFlag, "Y"))
	}
	fields = fieldIfNotEmpty(fields, constants.TagOnBehalfOfCompID, p.OnBehalfOfCompID)
	fields = append(fields,
		field(constants.TagDefaultApplVerID, constants.DefaultApplVerIDFix50SP2),
		field(constants.TagDefaultCstmApplVerID, constants.DefaultCstmApplVerIDPSX),
		field(constants.TagRawDataLength, strconv.Itoa(len(rawData))),
		field(constants.TagRawData, rawData),
	)
	return fields
}

// BuildLogout returns the body fields for a Logout (5) message.
func BuildLogout(text string) []codec.Field {
	return fieldIfNotEmpty(nil, constants.TagText, text)
}

// BuildHeartbeat returns the body fields for a Heartbeat (0) message,
// echoing TestReqID when responding to a Test Request.
func BuildHeartbeat(testReqID string) []codec.Field {
	return fieldIfNotEmpty(nil, constants.TagTestReqID, testReqID)
}

// BuildTestRequest returns the body fields for a Test Request (1)
// message.
func BuildTestRequest(testReqID string) []codec.Field {
	return []codec.Field{field(constants.TagTestReqID, testReqID)}
}

// BuildSequenceReset returns the body fields for a Sequence Reset (4)
// Gap Fill message.
func BuildSequenceReset(newSeqNo int, gapFill bool) []codec.Field {
	fields := []codec.Field{field(constants.TagNewSeqNo, strconv.Itoa(newSeqNo))}
	if gapFill {
		fields = append(fields, field(constants.TagGapFillFlag, "Y"))
	}
	return fields
}

// MarketDataRequestParams holds the parameters for a Market Data Request
// (V).
type MarketDataRequestParams struct {
	MdReqID                 string
	Symbols                 []string
	SubscriptionRequestType string
	MarketDepth             int
	MdEntryTypes            []string
	MdUpdateType            string // defaults to Incremental when subscribing, ignored otherwise
	PartyID                 string // defaults to "PSX" if empty
}

// BuildMarketDataRequest returns the body fields for a Market Data
// Request (V), with the NoMDEntryTypes (267) and NoRelatedSym (146)
// repeating groups and the PartyID block PSX requires on every request.
func BuildMarketDataRequest(p MarketDataRequestParams) []codec.Field {
	fields := []codec.Field{
		field(constants.TagMdReqId, p.MdReqID),
		field(constants.TagSubscriptionRequestType, p.SubscriptionRequestType),
		field(constants.TagMarketDepth, strconv.Itoa(p.MarketDepth)),
	}

	if p.SubscriptionRequestType == constants.SubscriptionRequestTypeSubscribe {
		updateType := p.MdUpdateType
		if updateType == "" {
			updateType = constants.MdUpdateTypeIncremental
		}
		fields = append(fields, field(constants.TagMdUpdateType, updateType))
	}

	fields = append(fields, field(constants.TagNoMdEntryTypes, strconv.Itoa(len(p.MdEntryTypes))))
	for _, entryType := range p.MdEntryTypes {
		fields = append(fields, field(constants.TagMdEntryType, entryType))
	}

	fields = append(fields, field(constants.TagNoRelatedSym, strconv.Itoa(len(p.Symbols))))
	for _, symbol := range p.Symbols {
		fields = append(fields, field(constants.TagSymbol, symbol))
	}

	partyID := p.PartyID
	if partyID == "" {
		partyID = "PSX"
	}
	fields = append(fields,
		field(constants.TagNoPartyIDs, "1"),
		field(constants.TagPartyID, partyID),
		field(constants.TagPartyIDSource, constants.PartyIDSourcePSX),
		field(constants.TagPartyRole, constants.PartyRolePSX),
	)

	return fields
}

// SecurityListRequestParams holds the parameters for a Security List
// Request (x).
type SecurityListRequestParams struct {
	SecurityReqID    string
	RequestType      string // constants.SecurityListRequestType*
	Symbol           string // "NA" requests all securities for the given Product
	Product          string // defaults to constants.ProductEquity if empty
	TradingSessionID string // defaults to constants.TradingSessionREG if empty
}

// BuildSecurityListRequest returns the body fields for a Security List
// Request (x), including the Product (460) and TradingSessionID (336)
// PSX expects alongside the symbol/request-type pair.
func BuildSecurityListRequest(p SecurityListRequestParams) []codec.Field {
	product := p.Product
	if product == "" {
		product = constants.ProductEquity
	}
	sessionID := p.TradingSessionID
	if sessionID == "" {
		sessionID = constants.TradingSessionREG
	}

	fields := []codec.Field{
		field(constants.TagSecurityReqID, p.SecurityReqID),
		field(constants.TagSecurityListRequestType, p.RequestType),
	}
	fields = fieldIfNotEmpty(fields, constants.TagSymbol, p.Symbol)
	fields = append(fields,
		field(constants.TagProduct, product),
		field(constants.TagTradingSessionID, sessionID),
	)
	return fields
}

// BuildTradingSessionStatusRequest returns the body fields for a Trading
// Session Status Request (g).
func BuildTradingSessionStatusRequest(tradSesReqID, tradingSessionID string) []codec.Field {
	sessionID := tradingSessionID
	if sessionID == "" {
		sessionID = constants.TradingSessionREG
	}
	return []codec.Field{
		field(constants.TagTradSesReqID, tradSesReqID),
		field(constants.TagTradingSessionID, sessionID),
	}
}

// BuildSecurityStatusRequest returns the body fields for a Security
// Status Request (e).
func BuildSecurityStatusRequest(securityStatusReqID, symbol, subscriptionRequestType string) []codec.Field {
	return []codec.Field{
		field(constants.TagSecurityStatusReqID, securityStatusReqID),
		field(constants.TagSymbol, symbol),
		field(constants.TagSubscriptionRequestType, subscriptionRequestType),
	}
}
