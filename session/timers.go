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
	"context"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/builder"
	"github.com/RonMathew32/psx-connect-sub000/constants"
	"github.com/RonMathew32/psx-connect-sub000/events"
	"github.com/RonMathew32/psx-connect-sub000/logging"
	"github.com/RonMathew32/psx-connect-sub000/sequence"
	"github.com/RonMathew32/psx-connect-sub000/sessionerr"
)

// sendLogon is posted to the owner goroutine cfg.LogonDelay after the
// transport connects. gen guards against a stale send firing after a
// disconnect/reconnect already replaced this connection.
func (e *Engine) sendLogon(gen int) {
	if gen != e.readerGen || e.state != Connected {
		return
	}
	body := builder.BuildLogon(builder.LogonParams{
		HeartBtInt:       e.cfg.HeartBtInt,
		Username:         e.cfg.Username,
		Password:         e.cfg.Password,
		ResetSeqNumFlag:  e.cfg.ResetOnLogon,
		OnBehalfOfCompID: e.cfg.OnBehalfOfCompID,
		RawData:          e.cfg.RawData,
	})
	if err := e.sendFrame(constants.MsgTypeLogon, sequence.Regular, body); err != nil {
		e.logger.Error("failed to send logon", err, nil)
	}
}

func (e *Engine) sendLogout(text string) {
	body := builder.BuildLogout(text)
	if err := e.sendFrame(constants.MsgTypeLogout, sequence.Regular, body); err != nil {
		e.logger.Error("failed to send logout", err, nil)
	}
}

func (e *Engine) sendHeartbeat(testReqID string) {
	body := builder.BuildHeartbeat(testReqID)
	if err := e.sendFrame(constants.MsgTypeHeartbeat, sequence.Regular, body); err != nil {
		e.logger.Error("failed to send heartbeat", err, nil)
	}
}

func (e *Engine) sendTestRequest() {
	id := e.ids.NewID()
	e.lastTestReqID = id
	body := builder.BuildTestRequest(id)
	if err := e.sendFrame(constants.MsgTypeTestRequest, sequence.Regular, body); err != nil {
		e.logger.Error("failed to send test request", err, nil)
		return
	}
	if e.metrics != nil {
		e.metrics.TestRequestsSent.Inc()
		e.metrics.OutstandingTestReq.Set(float64(e.testRequestsOutstanding))
	}
}

// startHeartbeatTimer begins the periodic heartbeat tick once LoggedIn
// is reached.
func (e *Engine) startHeartbeatTimer() {
	e.hbTimer.Reset(time.Duration(e.cfg.HeartBtInt) * time.Second)
}

// onHeartbeatTick fires every HeartBtInt seconds while LoggedIn. Silence
// longer than 2*HBInt escalates to a TestRequest instead of a plain
// Heartbeat; MaxTestRequestRetries unanswered TestRequests in a row
// declares the peer dead.
func (e *Engine) onHeartbeatTick() {
	if e.state != LoggedIn {
		return
	}

	silence := time.Since(e.lastActivityAt)
	threshold := 2 * time.Duration(e.cfg.HeartBtInt) * time.Second
	if silence > threshold {
		e.testRequestsOutstanding++
		e.sendTestRequest()
		if e.testRequestsOutstanding > e.cfg.MaxTestRequestRetries {
			if e.metrics != nil {
				e.metrics.TestRequestStale.Inc()
			}
			e.onTransportError(e.readerGen, sessionerr.New(sessionerr.TestRequestTimeout, "no response to outstanding test requests"))
			return
		}
	} else {
		e.sendHeartbeat("")
	}

	e.startHeartbeatTimer()
}

// attemptReconnect fires when the reconnect backoff timer elapses.
func (e *Engine) attemptReconnect() {
	if e.state != Disconnected {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.ConnectTimeout)
	defer cancel()

	e.setState(Connecting)
	if err := e.transport.Dial(ctx, e.cfg.Address); err != nil {
		e.logger.Warn("reconnect attempt failed", logging.Fields{"error": err.Error()})
		e.setState(Disconnected)
		e.scheduleReconnect()
		return
	}
	e.logger.Info("reconnected", nil)
	e.onConnected()
}

// scheduleReconnect arms the reconnect timer with exponential backoff,
// doubling ReconnectBaseDelay on each consecutive failure and capping at
// ReconnectMaxDelay.
func (e *Engine) scheduleReconnect() {
	delay := e.cfg.ReconnectBaseDelay
	for i := 0; i < e.reconnectAttempts && delay < e.cfg.ReconnectMaxDelay; i++ {
		delay *= 2
	}
	if delay > e.cfg.ReconnectMaxDelay {
		delay = e.cfg.ReconnectMaxDelay
	}
	e.reconnectAttempts++
	if e.metrics != nil {
		e.metrics.Reconnects.Inc()
	}
	e.reconnectTimer.Reset(delay)
}

// scheduleImmediateReconnect is used for the sequence-error recovery
// path (S3 in the testable-properties scenarios): a short fixed delay
// rather than the exponential backoff used for ordinary transport
// failures.
func (e *Engine) scheduleImmediateReconnect() {
	e.reconnectTimer.Reset(2 * time.Second)
}

// onTransportError handles a read or write failure: it tears down the
// connection, emits disconnected/error, and arms the reconnect backoff.
// gen guards against a stale error from an already-retired reader loop.
func (e *Engine) onTransportError(gen int, err error) {
	if gen != e.readerGen || e.state == Disconnected {
		return
	}
	e.logger.Error("transport error", err, nil)
	e.emitter.Publish(events.Error, err.Error())

	e.closeTransport()
	e.setState(Disconnected)
	e.emitter.Publish(events.Disconnected, nil)
	e.scheduleReconnect()
}
