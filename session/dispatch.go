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
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/codec"
	"github.com/RonMathew32/psx-connect-sub000/constants"
	"github.com/RonMathew32/psx-connect-sub000/events"
	"github.com/RonMathew32/psx-connect-sub000/logging"
	"github.com/RonMathew32/psx-connect-sub000/sequence"
)

// seqRelatedReject matches the session-level Reject text PSX sends when
// the rejection stems from MsgSeqNum bookkeeping rather than a field-level
// problem; expectedSeqNum pulls the number PSX says it wanted out of that
// text when present.
var (
	seqRelatedReject = regexp.MustCompile(`(?i)MsgSeqNum|too large|sequence`)
	expectedSeqNum   = regexp.MustCompile(`(?i)expected ['"]?(\d+)['"]?`)
)

// handleFrame decodes one complete frame handed over by the reader
// goroutine and routes it by MsgType. Called only from the owner
// goroutine's run loop.
func (e *Engine) handleFrame(frame []byte) {
	msg, err := codec.Parse(frame)
	if err != nil {
		e.logger.Warn("failed to parse frame", logging.Fields{"error": err.Error()})
		if e.metrics != nil {
			if strings.Contains(err.Error(), "checksum mismatch") {
				e.metrics.ChecksumFailures.Inc()
			} else {
				e.metrics.FramingFailures.Inc()
			}
		}
		return
	}
	if e.metrics != nil {
		e.metrics.FramesParsed.Inc()
		e.metrics.MessagesReceived.Inc()
	}
	e.lastActivityAt = time.Now()

	msgType := msg.MsgType()
	stream := streamForMsgType(msgType)

	seqNum, err := strconv.Atoi(msg.Get(constants.TagMsgSeqNum))
	if err != nil {
		e.logger.Warn("frame missing valid MsgSeqNum", logging.Fields{"msgType": msgType})
		return
	}
	if msg.Get(constants.TagPossDupFlag) != "Y" {
		e.seq.Observe(stream, seqNum)
	}

	switch msgType {
	case constants.MsgTypeLogon:
		e.handleLogonAck(msg)
	case constants.MsgTypeHeartbeat:
		e.testRequestsOutstanding = 0
	case constants.MsgTypeTestRequest:
		e.sendHeartbeat(msg.Get(constants.TagTestReqID))
	case constants.MsgTypeResendRequest:
		e.logger.Warn("ResendRequest received but not supported", nil)
	case constants.MsgTypeReject:
		e.handleSessionReject(msg)
	case constants.MsgTypeSequenceReset:
		e.handleSequenceReset(msg, stream)
	case constants.MsgTypeLogout:
		e.handleLogout(msg)
	case constants.MsgTypeMarketDataSnapshot:
		e.handleMarketData(msg, true)
	case constants.MsgTypeMarketDataIncremental:
		e.handleMarketData(msg, false)
	case constants.MsgTypeMarketDataReject:
		e.emitter.Publish(events.MarketDataReject, msg.Get(constants.TagMdReqId))
	case constants.MsgTypeSecurityList:
		e.handleSecurityList(msg)
	case constants.MsgTypeTradingSessionStatus:
		e.handleTradingSessionStatus(msg)
	case constants.MsgTypeSecurityTradingStatus:
		e.handleSecurityTradingStatus(msg)
	default:
		e.logger.Debug("unhandled message type", logging.Fields{"msgType": msgType})
	}
}

// handleLogonAck processes the server's Logon acknowledgement: applies a
// reset-on-logon if PSX echoed ResetSeqNumFlag=Y, transitions to
// LoggedIn, and arms the heartbeat timer.
func (e *Engine) handleLogonAck(msg *codec.ParsedMessage) {
	if msg.Get(constants.TagResetSeqNumFlag) == "Y" {
		e.seq.ResetAll(2) // this Logon itself carried MsgSeqNum 1
	}
	e.testRequestsOutstanding = 0
	e.setState(LoggedIn)
	e.startHeartbeatTimer()
	e.logger.Info("logon acknowledged", nil)
	e.emitter.Publish(events.Logon, nil)
}

// handleSessionReject inspects a session-level Reject (3). Rejects whose
// text indicates a sequence-number problem reset the affected stream to
// the value PSX reports expecting and force a fresh connection; anything
// else is just surfaced to subscribers.
func (e *Engine) handleSessionReject(msg *codec.ParsedMessage) {
	text := msg.Get(constants.TagText)
	e.emitter.Publish(events.Reject, text)

	if !seqRelatedReject.MatchString(text) {
		e.logger.Warn("session reject", logging.Fields{"text": text})
		return
	}
	stream := streamForMsgType(msg.Get(constants.TagRefMsgType))
	e.recoverFromSequenceError(stream, text)
}

// recoverFromSequenceError resets the stream's outgoing counter to the
// value PSX reports it expected next (the reject/logout text refers to
// an outbound MsgSeqNum we sent), then tears the connection down for an
// immediate short-delay reconnect rather than the usual backoff.
func (e *Engine) recoverFromSequenceError(stream sequence.Stream, text string) {
	if m := expectedSeqNum.FindStringSubmatch(text); m != nil {
		if expected, convErr := strconv.Atoi(m[1]); convErr == nil {
			_, incoming := e.seq.Snapshot(stream)
			e.seq.Reset(stream, expected, incoming)
		}
	}

	e.logger.Warn("sequence-related protocol error, reconnecting", logging.Fields{"text": text})
	if e.metrics != nil {
		e.metrics.SequenceResets.Inc()
	}
	e.closeTransport()
	e.setState(Disconnected)
	e.emitter.Publish(events.Disconnected, nil)
	e.scheduleImmediateReconnect()
}

// handleSequenceReset applies a Sequence Reset (4), Gap Fill or plain, by
// advancing stream's incoming counter to NewSeqNo.
func (e *Engine) handleSequenceReset(msg *codec.ParsedMessage, stream sequence.Stream) {
	newSeqNo, err := strconv.Atoi(msg.Get(constants.TagNewSeqNo))
	if err != nil {
		e.logger.Warn("malformed SequenceReset", logging.Fields{"error": err.Error()})
		return
	}
	outgoing, _ := e.seq.Snapshot(stream)
	e.seq.Reset(stream, outgoing, newSeqNo)
	if e.metrics != nil {
		e.metrics.SequenceResets.Inc()
	}
	e.logger.Info("sequence reset applied", logging.Fields{"stream": stream.String(), "newSeqNo": newSeqNo})
}

// handleLogout processes a Logout (5). A Logout received while this side
// is already LoggingOut is the expected reply to our own Logout. A
// Logout whose text indicates a sequence-number problem recovers like a
// session Reject (immediate short-delay reconnect); any other
// unsolicited Logout gets the ordinary backoff.
func (e *Engine) handleLogout(msg *codec.ParsedMessage) {
	text := msg.Get(constants.TagText)
	wasLoggingOut := e.state == LoggingOut

	e.emitter.Publish(events.Logout, text)
	e.logger.Info("logout received", logging.Fields{"text": text})

	if !wasLoggingOut && seqRelatedReject.MatchString(text) {
		e.recoverFromSequenceError(sequence.Regular, text)
		return
	}

	e.closeTransport()
	e.setState(Disconnected)
	e.emitter.Publish(events.Disconnected, nil)

	if !wasLoggingOut {
		e.scheduleReconnect()
	}
}

// handleMarketData decodes the NoMDEntries (268) repeating group of a
// Market Data Snapshot (W) or Incremental Refresh (X) and publishes it.
func (e *Engine) handleMarketData(msg *codec.ParsedMessage, isSnapshot bool) {
	groups := msg.Groups[strconv.Itoa(constants.TagNoMdEntries)]
	entries := make([]events.MarketDataEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, events.MarketDataEntry{
			Symbol:    msg.Get(constants.TagSymbol),
			EntryType: g[strconv.Itoa(constants.TagMdEntryType)],
			Price:     g[strconv.Itoa(constants.TagMdEntryPx)],
			Size:      g[strconv.Itoa(constants.TagMdEntrySize)],
			Time:      g[strconv.Itoa(constants.TagMdEntryTime)],
			Position:  g[strconv.Itoa(constants.TagMdEntryPositionNo)],
		})
	}
	e.emitter.Publish(events.MarketData, events.MarketDataPayload{
		MdReqID:    msg.Get(constants.TagMdReqId),
		Symbol:     msg.Get(constants.TagSymbol),
		IsSnapshot: isSnapshot,
		Entries:    entries,
	})
}

// handleSecurityList decodes the NoSecurities (393) repeating group of a
// Security List (y) response, deduplicating by Symbol.
func (e *Engine) handleSecurityList(msg *codec.ParsedMessage) {
	groups := msg.Groups[strconv.Itoa(constants.TagNoSecurities)]
	seen := make(map[string]bool, len(groups))
	entries := make([]events.SecurityListEntry, 0, len(groups))
	for _, g := range groups {
		symbol := g[strconv.Itoa(constants.TagSymbol)]
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		entries = append(entries, events.SecurityListEntry{
			Symbol:  symbol,
			CFICode: g[strconv.Itoa(constants.TagCFICode)],
			Product: g[strconv.Itoa(constants.TagProduct)],
		})
	}
	e.emitter.Publish(events.SecurityList, events.SecurityListPayload{
		SecurityReqID: msg.Get(constants.TagSecurityReqID),
		Securities:    entries,
	})
}

func (e *Engine) handleTradingSessionStatus(msg *codec.ParsedMessage) {
	e.emitter.Publish(events.TradingSessionStat, events.TradingSessionStatusPayload{
		TradSesReqID:     msg.Get(constants.TagTradSesReqID),
		TradingSessionID: msg.Get(constants.TagTradingSessionID),
		Status:           msg.Get(constants.TagTradSesStatus),
	})
}

func (e *Engine) handleSecurityTradingStatus(msg *codec.ParsedMessage) {
	e.emitter.Publish(events.TradingStatus, events.SecurityTradingStatusPayload{
		SecurityStatusReqID: msg.Get(constants.TagSecurityStatusReqID),
		Symbol:              msg.Get(constants.TagSymbol),
		TradingStatus:       msg.Get(constants.TagSecurityTradingStatus),
	})
}
