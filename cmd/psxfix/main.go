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

// Command psxfix is an interactive market-data client for the Pakistan
// Stock Exchange's FIX 5.0 SP2 / FIXT.1.1 venue. It has no order-entry
// surface - market data, security reference, and trading session status
// only.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/config"
	"github.com/RonMathew32/psx-connect-sub000/events"
	"github.com/RonMathew32/psx-connect-sub000/idgen"
	"github.com/RonMathew32/psx-connect-sub000/logging"
	"github.com/RonMathew32/psx-connect-sub000/metrics"
	"github.com/RonMathew32/psx-connect-sub000/preflight"
	"github.com/RonMathew32/psx-connect-sub000/sequence"
	"github.com/RonMathew32/psx-connect-sub000/session"
	"github.com/RonMathew32/psx-connect-sub000/store"
	"github.com/RonMathew32/psx-connect-sub000/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewZerologLogger(cfg.Pretty)
	reg := metrics.NewRegistry()
	emitter := events.New()
	views := store.NewViews(emitter, 10000)

	var seqStore sequence.Store
	if cfg.SequenceStorePath != "" {
		fs, ferr := sequence.NewFileStore(cfg.SequenceStorePath)
		if ferr != nil {
			log.Fatalf("failed to open sequence store: %v", ferr)
		}
		seqStore = fs
	}

	attachDisplay(emitter)

	eng := session.New(session.Config{
		Address:          cfg.Address(),
		SenderCompID:     cfg.SenderCompID,
		TargetCompID:     cfg.TargetCompID,
		Username:         cfg.Username,
		Password:         cfg.Password,
		HeartBtInt:       cfg.HeartbeatIntervalSecs,
		ResetOnLogon:     cfg.ResetOnLogon,
		PartyID:          cfg.PartyID,
		OnBehalfOfCompID: cfg.OnBehalfOfCompID,
		RawData:          cfg.RawData,
		RawDataLength:    cfg.RawDataLength,
		ConnectTimeout:   time.Duration(cfg.ConnectTimeoutMs) * time.Millisecond,
	}, session.Deps{
		Transport: &transport.TCPTransport{},
		Emitter:   emitter,
		Logger:    logger,
		IDs:       idgen.UUIDGenerator{},
		SeqStore:  seqStore,
		Metrics:   reg,
		Preflight: preflight.DialProbe{Address: cfg.Address()},
	})
	defer eng.Close()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		log.Println("metrics listening on :9100/metrics")
		if err := http.ListenAndServe(":9100", mux); err != nil {
			logger.Warn("metrics server stopped", logging.Fields{"error": err.Error()})
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := eng.Connect(ctx); err != nil {
		log.Fatalf("connect failed: %v", err)
	}

	fmt.Println("psxfix connected - type 'help' for commands")
	repl(eng, views)

	dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dcancel()
	_ = eng.Disconnect(dctx)
}

// attachDisplay subscribes plain-text prints for the events a live
// session produces, in the teacher's log.Printf-with-marker style.
func attachDisplay(emitter *events.Emitter) {
	emitter.On(events.Logon, func(events.Event) {
		log.Println("logon acknowledged")
	})
	emitter.On(events.Logout, func(e events.Event) {
		log.Printf("logout: %v", e.Payload)
	})
	emitter.On(events.Disconnected, func(events.Event) {
		log.Println("disconnected")
	})
	emitter.On(events.Reject, func(e events.Event) {
		log.Printf("reject: %v", e.Payload)
	})
	emitter.On(events.MarketData, func(e events.Event) {
		payload, ok := e.Payload.(events.MarketDataPayload)
		if !ok {
			return
		}
		kind := "incremental"
		if payload.IsSnapshot {
			kind = "snapshot"
		}
		log.Printf("market data (%s) %s: %d entries", kind, payload.Symbol, len(payload.Entries))
	})
	emitter.On(events.MarketDataReject, func(e events.Event) {
		log.Printf("market data request rejected: %v", e.Payload)
	})
	emitter.On(events.SecurityList, func(e events.Event) {
		payload, ok := e.Payload.(events.SecurityListPayload)
		if !ok {
			return
		}
		log.Printf("security list: %d securities", len(payload.Securities))
	})
	emitter.On(events.TradingSessionStat, func(e events.Event) {
		payload, ok := e.Payload.(events.TradingSessionStatusPayload)
		if !ok {
			return
		}
		log.Printf("trading session %s status: %s", payload.TradingSessionID, payload.Status)
	})
	emitter.On(events.TradingStatus, func(e events.Event) {
		payload, ok := e.Payload.(events.SecurityTradingStatusPayload)
		if !ok {
			return
		}
		log.Printf("security %s trading status: %s", payload.Symbol, payload.TradingStatus)
	})
}
