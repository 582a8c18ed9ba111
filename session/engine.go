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
	"sync"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/codec"
	"github.com/RonMathew32/psx-connect-sub000/constants"
	"github.com/RonMathew32/psx-connect-sub000/events"
	"github.com/RonMathew32/psx-connect-sub000/idgen"
	"github.com/RonMathew32/psx-connect-sub000/logging"
	"github.com/RonMathew32/psx-connect-sub000/metrics"
	"github.com/RonMathew32/psx-connect-sub000/preflight"
	"github.com/RonMathew32/psx-connect-sub000/sequence"
	"github.com/RonMathew32/psx-connect-sub000/sessionerr"
	"github.com/RonMathew32/psx-connect-sub000/transport"
)

// Deps holds the engine's external collaborators. Transport, Emitter,
// Logger, and IDs are required; SeqStore, Metrics, and Preflight are
// optional and may be left nil.
type Deps struct {
	Transport transport.Transport
	Emitter   *events.Emitter
	Logger    logging.Logger
	IDs       idgen.Generator
	SeqStore  sequence.Store
	Metrics   *metrics.Registry
	Preflight preflight.Checker
}

// Engine owns the full lifecycle of one FIX session: the connection,
// the sequence streams, the heartbeat/reconnect/test-request timers,
// and the dispatcher. All state is mutated exclusively by the owner
// goroutine started in New; public methods post closures to its
// mailbox and (where a result is needed) block on a reply channel, per
// the single-owner concurrency model.
type Engine struct {
	cfg       Config
	transport transport.Transport
	emitter   *events.Emitter
	logger    logging.Logger
	ids       idgen.Generator
	seq       *sequence.Manager
	metrics   *metrics.Registry
	preflight preflight.Checker

	mailbox chan func()
	frames  chan []byte
	stop    chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup

	// Owner-goroutine-only fields - never touched from another goroutine.
	state                   State
	lastActivityAt          time.Time
	testRequestsOutstanding int
	lastTestReqID           string
	reconnectAttempts       int
	readerGen               int // bumped on every reconnect to retire stale reader goroutines

	hbTimer        *time.Timer
	reconnectTimer *time.Timer

	stateMu sync.RWMutex // guards stateSnapshot only, so other goroutines can read it without going through the mailbox
	stateSnapshot State
}

// New creates an Engine and starts its owner goroutine. Connect must be
// called before the session does anything useful.
func New(cfg Config, deps Deps) *Engine {
	e := &Engine{
		cfg:       cfg.withDefaults(),
		transport: deps.Transport,
		emitter:   deps.Emitter,
		logger:    deps.Logger,
		ids:       deps.IDs,
		metrics:   deps.Metrics,
		preflight: deps.Preflight,
		seq:       sequence.New(deps.SeqStore),
		mailbox:   make(chan func(), 32),
		frames:    make(chan []byte, 256),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	if err := e.seq.LoadAll(); err != nil {
		e.logger.Warn("failed to reload persisted sequence state", logging.Fields{"error": err.Error()})
	}
	e.seq.OnWarn(func(stream sequence.Stream, got, want int) {
		e.logger.Warn("incoming MsgSeqNum not strictly increasing", logging.Fields{
			"stream": stream.String(), "got": got, "want": want,
		})
		if e.metrics != nil {
			e.metrics.SequenceGapWarns.Inc()
		}
	})
	e.hbTimer = time.NewTimer(time.Hour)
	e.hbTimer.Stop()
	e.reconnectTimer = time.NewTimer(time.Hour)
	e.reconnectTimer.Stop()
	e.setState(Disconnected)

	go e.run()
	return e
}

// State returns the engine's current lifecycle state. Safe to call from
// any goroutine.
func (e *Engine) State() State {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.stateSnapshot
}

// setState must only be called from the owner goroutine.
func (e *Engine) setState(s State) {
	e.state = s
	e.stateMu.Lock()
	e.stateSnapshot = s
	e.stateMu.Unlock()
	if e.metrics != nil {
		e.metrics.SessionState.Set(float64(s))
	}
}

// post runs fn on the owner goroutine and blocks until it returns. If the
// owner has already stopped (Close was called), post returns immediately
// without running fn rather than blocking forever on a run loop that will
// never drain the mailbox again.
func (e *Engine) post(fn func()) {
	done := make(chan struct{})
	select {
	case e.mailbox <- func() {
		fn()
		close(done)
	}:
	case <-e.stop:
		return
	}
	select {
	case <-done:
	case <-e.stop:
	}
}

// Connect opens the transport and begins the logon sequence. It blocks
// until the TCP connection is established (or ctx/ConnectTimeout
// expires); LoggedIn is reached asynchronously once the server
// acknowledges the Logon.
func (e *Engine) Connect(ctx context.Context) error {
	var err error
	e.post(func() { err = e.doConnect(ctx) })
	return err
}

func (e *Engine) doConnect(ctx context.Context) error {
	if e.state != Disconnected {
		return sessionerr.New(sessionerr.Unknown, "connect called while not disconnected")
	}

	if e.preflight != nil {
		if perr := e.preflight.Check(ctx); perr != nil {
			return sessionerr.Wrap(sessionerr.NotConnected, "preflight check failed", perr)
		}
	}

	e.setState(Connecting)
	dialCtx, cancel := context.WithTimeout(ctx, e.cfg.ConnectTimeout)
	defer cancel()

	if err := e.transport.Dial(dialCtx, e.cfg.Address); err != nil {
		e.setState(Disconnected)
		return sessionerr.Wrap(sessionerr.TransportError, "dial failed", err)
	}

	e.onConnected()
	return nil
}

// onConnected transitions to Connected, starts the reader loop, and
// schedules the delayed Logon send. Called only from the owner
// goroutine, both from doConnect and from a successful reconnect.
func (e *Engine) onConnected() {
	e.setState(Connected)
	e.lastActivityAt = time.Now()
	e.testRequestsOutstanding = 0
	e.reconnectAttempts = 0

	e.readerGen++
	gen := e.readerGen
	e.startReaderLoop(gen)

	delay := e.cfg.LogonDelay
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			e.post(func() { e.sendLogon(gen) })
		case <-e.stop:
		}
	}()
}

// startReaderLoop launches a goroutine that reads bytes from the
// transport, feeds them through a per-connection Splitter, and hands
// complete frames to the owner via e.frames. gen identifies this
// connection attempt; frames/errors from a stale generation (after a
// reconnect) are ignored.
func (e *Engine) startReaderLoop(gen int) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		splitter := &codec.Splitter{
			Dropped: func(raw []byte) {
				e.logger.Warn("dropped unparsable bytes", logging.Fields{"bytes": len(raw)})
			},
		}
		buf := make([]byte, 4096)
		for {
			n, err := e.transport.Read(buf)
			if err != nil {
				e.post(func() { e.onTransportError(gen, err) })
				return
			}
			for _, frame := range splitter.Feed(buf[:n]) {
				select {
				case e.frames <- frame:
				case <-e.stop:
					return
				}
			}
		}
	}()
}

// Disconnect closes the transport and transitions to Disconnected. It
// is idempotent and blocks until the owner goroutine has run the
// disconnect; it does not wait for the reader goroutine to exit.
func (e *Engine) Disconnect(ctx context.Context) error {
	var err error
	e.post(func() { err = e.doDisconnect() })
	return err
}

func (e *Engine) doDisconnect() error {
	if e.state == Disconnected {
		return nil
	}
	if e.state == LoggedIn {
		e.setState(LoggingOut)
		e.sendLogout("")
	}
	e.closeTransport()
	e.setState(Disconnected)
	e.emitter.Publish(events.Disconnected, nil)
	return nil
}

func (e *Engine) closeTransport() {
	e.hbTimer.Stop()
	e.reconnectTimer.Stop()
	_ = e.transport.Close()
	e.readerGen++ // retire any in-flight reader/logon-delay goroutines
}

// Close stops the engine permanently: disconnects if needed and shuts
// down the owner goroutine. The Engine must not be used afterward.
func (e *Engine) Close() {
	e.post(func() { e.doDisconnect() })
	close(e.stop)
	e.wg.Wait()
	<-e.done
}

func (e *Engine) run() {
	defer close(e.done)
	for {
		select {
		case fn := <-e.mailbox:
			fn()
		case frame := <-e.frames:
			e.handleFrame(frame)
		case <-e.hbTimer.C:
			e.onHeartbeatTick()
		case <-e.reconnectTimer.C:
			e.attemptReconnect()
		case <-e.stop:
			return
		}
	}
}

// sendFrame assembles and writes a single outbound message, advancing
// stream's outgoing counter only after a successful write.
func (e *Engine) sendFrame(msgType string, stream sequence.Stream, body []codec.Field) error {
	seqNo := e.seq.Next(stream)
	frame := codec.Serialize(codec.Header{
		MsgType:      msgType,
		SenderCompID: e.cfg.SenderCompID,
		TargetCompID: e.cfg.TargetCompID,
		MsgSeqNum:    seqNo,
	}, body)

	if err := e.transport.SetWriteDeadline(time.Now().Add(e.cfg.WriteTimeout)); err != nil {
		return sessionerr.Wrap(sessionerr.TransportError, "set write deadline", err)
	}
	if _, err := e.transport.Write(frame); err != nil {
		e.onTransportError(e.readerGen, err)
		return sessionerr.Wrap(sessionerr.TransportError, "write failed", err)
	}

	e.seq.Advance(stream)
	if e.metrics != nil {
		e.metrics.MessagesSent.Inc()
	}
	e.logger.Debug("sent message", logging.Fields{"msgType": msgType, "seq": seqNo, "stream": stream.String()})
	return nil
}

// streamForMsgType returns the sequence stream PSX expects for
// MsgType, deterministically - no correlation bookkeeping is needed
// since outgoing and incoming windows never overlap by message family.
func streamForMsgType(msgType string) sequence.Stream {
	switch msgType {
	case constants.MsgTypeSecurityListRequest, constants.MsgTypeSecurityList:
		return sequence.SecurityList
	case constants.MsgTypeMarketDataRequest, constants.MsgTypeMarketDataSnapshot,
		constants.MsgTypeMarketDataIncremental, constants.MsgTypeMarketDataReject:
		return sequence.MarketData
	default:
		return sequence.Regular
	}
}
