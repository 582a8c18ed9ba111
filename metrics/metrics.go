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

// Package metrics wraps the Prometheus collectors the session engine
// updates as it runs, following the Registry-struct-of-collectors shape
// used for the pack's other long-running network services.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every Prometheus collector the engine touches.
type Registry struct {
	FramesParsed      prometheus.Counter
	ChecksumFailures  prometheus.Counter
	FramingFailures   prometheus.Counter
	Reconnects        prometheus.Counter
	SequenceResets    prometheus.Counter
	SequenceGapWarns  prometheus.Counter
	TestRequestsSent  prometheus.Counter
	TestRequestStale  prometheus.Counter
	MessagesSent      prometheus.Counter
	MessagesReceived  prometheus.Counter
	SessionState      prometheus.Gauge
	OutstandingTestReq prometheus.Gauge
}

// NewRegistry creates and registers every collector against the default
// Prometheus registry.
func NewRegistry() *Registry {
	return &Registry{
		FramesParsed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_frames_parsed_total",
			Help: "Total number of complete FIX frames successfully parsed",
		}),
		ChecksumFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_checksum_failures_total",
			Help: "Total number of frames rejected for a checksum mismatch",
		}),
		FramingFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_framing_failures_total",
			Help: "Total number of frames rejected for malformed BodyLength or tag=value structure",
		}),
		Reconnects: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_reconnects_total",
			Help: "Total number of transport reconnect attempts",
		}),
		SequenceResets: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_sequence_resets_total",
			Help: "Total number of sequence counter resets across all streams",
		}),
		SequenceGapWarns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_sequence_gap_warnings_total",
			Help: "Total number of incoming sequence numbers observed out of monotonic order",
		}),
		TestRequestsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_test_requests_sent_total",
			Help: "Total number of TestRequest messages sent due to heartbeat silence",
		}),
		TestRequestStale: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_test_request_timeouts_total",
			Help: "Total number of TestRequests that went unanswered past MaxTestRequestRetries",
		}),
		MessagesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_messages_sent_total",
			Help: "Total number of FIX messages sent",
		}),
		MessagesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "psxfix_messages_received_total",
			Help: "Total number of FIX messages received",
		}),
		SessionState: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "psxfix_session_state",
			Help: "Current session state as an enum ordinal (see session.State)",
		}),
		OutstandingTestReq: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "psxfix_outstanding_test_requests",
			Help: "Number of TestRequests sent but not yet answered with a Heartbeat echo",
		}),
	}
}

// Handler exposes the registered collectors over HTTP for scraping.
func (r *Registry) Handler() http.Handler {
	return promhttp.Handler()
}
