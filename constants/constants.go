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

// Package constants holds the FIX tags, message types, and PSX-specific
// field values used across the codec, builder, sequence, and session
// packages.
package constants

// --- Message Types ---
const (
	// Admin Messages
	MsgTypeLogon         = "A" // Logon
	MsgTypeLogout        = "5" // Logout
	MsgTypeHeartbeat     = "0" // Heartbeat
	MsgTypeTestRequest   = "1" // Test Request
	MsgTypeResendRequest = "2" // Resend Request (never sent, handled defensively)
	MsgTypeReject        = "3" // Session-level Reject
	MsgTypeSequenceReset = "4" // Sequence Reset

	// Market Data Messages
	MsgTypeMarketDataRequest     = "V" // Market Data Request
	MsgTypeMarketDataSnapshot    = "W" // Market Data Snapshot/Full Refresh
	MsgTypeMarketDataIncremental = "X" // Market Data Incremental Refresh
	MsgTypeMarketDataReject      = "Y" // Market Data Request Reject

	// Reference Data Messages
	MsgTypeSecurityListRequest     = "x" // Security List Request
	MsgTypeSecurityList            = "y" // Security List
	MsgTypeTradingSessionStatusReq = "g" // Trading Session Status Request
	MsgTypeTradingSessionStatus    = "h" // Trading Session Status
	MsgTypeSecurityStatusRequest   = "e" // Security Status Request
	MsgTypeSecurityTradingStatus   = "f" // Security Trading Status (a.k.a Security Status)
)

// --- Protocol Constants ---
const (
	FixTimeFormat     = "20060102-15:04:05.000"
	FixBeginString    = "FIXT.1.1"
	EncryptMethodNone = "0"
	MsgSeqNumInit     = 1

	// DefaultApplVerID / DefaultCstmApplVerID (tags 1137 / 1408) identify
	// the FIX 5.0 SP2 application layer and the PSX-specific custom
	// application version respectively.
	DefaultApplVerIDFix50SP2 = "9"
	DefaultCstmApplVerIDPSX  = "FIX5.00_PSX_1.00"

	// RawData/RawDataLength value PSX expects on Logon (tags 96/95).
	RawDataKSE       = "kse"
	RawDataLengthKSE = "3"
)

// --- Subscription Request Types (Tag 263) ---
const (
	SubscriptionRequestTypeSnapshot    = "0" // Snapshot
	SubscriptionRequestTypeSubscribe   = "1" // Snapshot + Updates
	SubscriptionRequestTypeUnsubscribe = "2" // Unsubscribe
)

// --- MD Entry Types (Tag 269) ---
const (
	MdEntryTypeBid    = "0" // Bid
	MdEntryTypeOffer  = "1" // Offer/Ask
	MdEntryTypeTrade  = "2" // Trade
	MdEntryTypeOpen   = "4" // Open
	MdEntryTypeClose  = "5" // Close
	MdEntryTypeHigh   = "7" // High
	MdEntryTypeLow    = "8" // Low
	MdEntryTypeVolume = "B" // Volume
)

// --- MD Update Types (Tag 265) ---
const (
	MdUpdateTypeFullRefresh = "0" // Full refresh
	MdUpdateTypeIncremental = "1" // Incremental refresh
)

// --- MD Rejection Reasons (Tag 281) ---
const (
	MdReqRejReasonUnknownSymbol              = "0"
	MdReqRejReasonDuplicateMdReqId           = "1"
	MdReqRejReasonInsufficientBandwidth      = "2"
	MdReqRejReasonInsufficientPermission     = "3"
	MdReqRejReasonInvalidSubscriptionReqType = "4"
	MdReqRejReasonInvalidMarketDepth         = "5"
	MdReqRejReasonUnsupportedMdUpdateType    = "6"
	MdReqRejReasonOther                      = "7"
	MdReqRejReasonUnsupportedMdEntryType     = "8"
)

// --- Security List Request Type (Tag 559) ---
const (
	SecurityListRequestTypeSymbol = "0" // All securities for Symbol
	SecurityListRequestTypeAll    = "4" // All securities
)

// --- Product (Tag 460) ---
const (
	ProductEquity = "4"
	ProductIndex  = "5"
)

// --- Trading Session ID (Tag 336) ---
const (
	TradingSessionREG = "REG"
)

// --- Session Reject Reason (Tag 373) ---
const (
	SessionRejectReasonInvalidTag          = "0"
	SessionRejectReasonRequiredTagMissing  = "1"
	SessionRejectReasonTagNotDefined       = "2"
	SessionRejectReasonUndefinedTag        = "3"
	SessionRejectReasonTagWithoutValue     = "4"
	SessionRejectReasonValueOutOfRange     = "5"
	SessionRejectReasonIncorrectDataFormat = "6"
	SessionRejectReasonDecryptionProblem   = "7"
	SessionRejectReasonSignatureProblem    = "8"
	SessionRejectReasonCompIDProblem       = "9"
	SessionRejectReasonSendingTimeAccuracy = "10"
	SessionRejectReasonInvalidMsgType      = "11"
)

// --- Standard FIX Tags ---
const (
	TagBeginString      = 8
	TagBodyLength        = 9
	TagMsgSeqNum         = 34
	TagMsgType           = 35
	TagSenderCompId      = 49
	TagSenderSubID       = 50
	TagSendingTime       = 52
	TagTargetCompId      = 56
	TagText              = 58
	TagOnBehalfOfCompID  = 115
	TagRawDataLength     = 95
	TagRawData           = 96
	TagEncryptMethod     = 98
	TagHeartBtInt        = 108
	TagTestReqID         = 112
	TagOrigSendingTime   = 122
	TagPossDupFlag       = 43
	TagGapFillFlag       = 123
	TagNewSeqNo          = 36
	TagRefSeqNum         = 45
	TagRefTagID          = 371
	TagRefMsgType        = 372
	TagSessionRejectReason = 373
	TagResetSeqNumFlag   = 141
	TagUsername          = 553
	TagPassword          = 554
	TagDefaultApplVerID     = 1137
	TagDefaultCstmApplVerID = 1408
	TagChecksum          = 10

	// Market Data Tags
	TagMdReqId                 = 262
	TagSubscriptionRequestType = 263
	TagMarketDepth             = 264
	TagMdUpdateType            = 265
	TagNoRelatedSym            = 146
	TagSymbol                  = 55
	TagNoMdEntryTypes          = 267
	TagMdEntryType             = 269
	TagNoMdEntries             = 268
	TagMdEntryPx               = 270
	TagMdEntrySize             = 271
	TagMdEntryTime             = 273
	TagMdReqRejReason          = 281
	TagMdEntryPositionNo       = 290
	TagNoPartyIDs              = 453
	TagPartyID                 = 448
	TagPartyIDSource           = 447
	TagPartyRole               = 452

	// Reference Data Tags
	TagSecurityReqID           = 320
	TagSecurityListRequestType = 559
	TagProduct                 = 460
	TagTradingSessionID        = 336
	TagCFICode                 = 167
	TagNoSecurities            = 393
	TagTradSesReqID            = 335
	TagTradSesStatus           = 340
	TagSecurityStatusReqID     = 324
	TagSecurityTradingStatus   = 326
)

// PSX party identification for market-data requests (tags 447/452).
const (
	PartyIDSourcePSX = "D"
	PartyRolePSX     = "3"
)
