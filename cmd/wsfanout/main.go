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

// Command wsfanout runs one PSX FIX market-data session and republishes
// every MarketData/SecurityList/TradingSessionStatus/TradingStatus event
// to any number of websocket subscribers as JSON, so browser or
// service-side consumers never need a FIX stack of their own.
package main

import (
	"context"
	"encoding/json"
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
	"github.com/RonMathew32/psx-connect-sub000/transport"
)

// wireMessage is the envelope every fanout frame is marshaled as.
type wireMessage struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewZerologLogger(cfg.Pretty)
	reg := metrics.NewRegistry()
	emitter := events.New()

	var seqStore sequence.Store
	if cfg.SequenceStorePath != "" {
		fs, ferr := sequence.NewFileStore(cfg.SequenceStorePath)
		if ferr != nil {
			log.Fatalf("failed to open sequence store: %v", ferr)
		}
		seqStore = fs
	}

	hub := NewHub()
	go hub.Run()
	attachFanout(emitter, hub)

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := eng.Connect(ctx); err != nil {
		log.Fatalf("connect failed: %v", err)
	}

	if err := eng.RequestSecurityList(); err != nil {
		logger.Warn("initial security list request failed", logging.Fields{"error": err.Error()})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/stream", hub.ServeWs)
	mux.Handle("/metrics", reg.Handler())
	log.Println("wsfanout listening on :9101 (/stream, /metrics)")
	if err := http.ListenAndServe(":9101", mux); err != nil {
		log.Fatalf("websocket server stopped: %v", err)
	}
}

func attachFanout(emitter *events.Emitter, hub *Hub) {
	publish := func(kind string, payload any) {
		b, err := json.Marshal(wireMessage{Kind: kind, Payload: payload})
		if err != nil {
			return
		}
		hub.Broadcast(b)
	}

	emitter.On(events.MarketData, func(e events.Event) { publish("marketData", e.Payload) })
	emitter.On(events.MarketDataReject, func(e events.Event) { publish("marketDataReject", e.Payload) })
	emitter.On(events.SecurityList, func(e events.Event) { publish("securityList", e.Payload) })
	emitter.On(events.TradingSessionStat, func(e events.Event) { publish("tradingSessionStatus", e.Payload) })
	emitter.On(events.TradingStatus, func(e events.Event) { publish("tradingStatus", e.Payload) })
	emitter.On(events.Logon, func(events.Event) { publish("logon", nil) })
	emitter.On(events.Logout, func(e events.Event) { publish("logout", e.Payload) })
	emitter.On(events.Disconnected, func(events.Event) { publish("disconnected", nil) })
}
