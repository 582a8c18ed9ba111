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

// Package config loads session configuration from environment
// variables, following the getEnv/getEnvInt/getEnvBool helper shape used
// elsewhere in the pack for small standalone services.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds every recognized option for a PSX FIX session.
type Config struct {
	Host string
	Port int

	SenderCompID string
	TargetCompID string
	Username     string
	Password     string

	HeartbeatIntervalSecs int
	ResetOnLogon          bool
	ConnectTimeoutMs      int

	PartyID           string
	OnBehalfOfCompID  string
	RawData           string
	RawDataLength     string

	// Sequence-persistence and database options, added by this
	// implementation beyond spec.md's recognized-options table.
	SequenceStorePath string // plain-file Store path; empty disables it
	DatabasePath      string // sqlite database path; empty disables persistence

	Pretty bool // console-formatted logging vs JSON
}

// Address formats Host/Port for use as a transport.Dial address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load builds a Config from environment variables, applying the same
// defaults a local/interactive run would want.
func Load() (*Config, error) {
	return &Config{
		Host: getEnv("PSX_HOST", "127.0.0.1"),
		Port: getEnvInt("PSX_PORT", 9877),

		SenderCompID: getEnv("PSX_SENDER_COMP_ID", ""),
		TargetCompID: getEnv("PSX_TARGET_COMP_ID", "NMDUFISQ0001"),
		Username:     getEnv("PSX_USERNAME", ""),
		Password:     getEnv("PSX_PASSWORD", ""),

		HeartbeatIntervalSecs: getEnvInt("PSX_HEARTBEAT_INTERVAL_SECS", 30),
		ResetOnLogon:          getEnvBool("PSX_RESET_ON_LOGON", true),
		ConnectTimeoutMs:      getEnvInt("PSX_CONNECT_TIMEOUT_MS", 5000),

		PartyID:          getEnv("PSX_PARTY_ID", ""),
		OnBehalfOfCompID: getEnv("PSX_ON_BEHALF_OF_COMP_ID", ""),
		RawData:          getEnv("PSX_RAW_DATA", "kse"),
		RawDataLength:    getEnv("PSX_RAW_DATA_LENGTH", "3"),

		SequenceStorePath: getEnv("PSX_SEQUENCE_STORE_PATH", ""),
		DatabasePath:      getEnv("PSX_DATABASE_PATH", ""),

		Pretty: getEnvBool("PSX_LOG_PRETTY", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
