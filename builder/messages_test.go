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

package builder

import (
	"testing"

	"github.com/RonMathew32/psx-connect-sub000/codec"
	"github.com/RonMathew32/psx-connect-sub000/constants"
)

func fieldValue(t *testing.T, fields []codec.Field, tag int) (string, bool) {
	t.Helper()
	for _, f := range fields {
		if f.Tag == tag {
			return f.Value, true
		}
	}
	return "", false
}

func TestBuildLogon_SetsPSXDefaults(t *testing.T) {
	fields := BuildLogon(LogonParams{HeartBtInt: 30, Username: "u", Password: "p"})

	cases := []struct {
		tag  int
		want string
	}{
		{constants.TagEncryptMethod, constants.EncryptMethodNone},
		{constants.TagHeartBtInt, "30"},
		{constants.TagUsername, "u"},
		{constants.TagPassword, "p"},
		{constants.TagDefaultApplVerID, constants.DefaultApplVerIDFix50SP2},
		{constants.TagDefaultCstmApplVerID, constants.DefaultCstmApplVerIDPSX},
		{constants.TagRawData, constants.RawDataKSE},
		{constants.TagRawDataLength, constants.RawDataLengthKSE},
	}
	for _, tt := range cases {
		got, ok := fieldValue(t, fields, tt.tag)
		if !ok {
			t.Errorf("tag %d missing from Logon fields", tt.tag)
			continue
		}
		if got != tt.want {
			t.Errorf("tag %d: got %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestBuildLogon_OmitsOnBehalfOfCompIDWhenEmpty(t *testing.T) {
	fields := BuildLogon(LogonParams{HeartBtInt: 30})
	if _, ok := fieldValue(t, fields, constants.TagOnBehalfOfCompID); ok {
		t.Errorf("OnBehalfOfCompID should be absent when not configured")
	}
}

func TestBuildLogon_OmitsResetSeqNumFlagByDefault(t *testing.T) {
	fields := BuildLogon(LogonParams{HeartBtInt: 30})
	if _, ok := fieldValue(t, fields, constants.TagResetSeqNumFlag); ok {
		t.Errorf("ResetSeqNumFlag should be absent when not requested")
	}
}

func TestBuildLogon_SetsResetSeqNumFlagWhenRequested(t *testing.T) {
	fields := BuildLogon(LogonParams{HeartBtInt: 30, ResetSeqNumFlag: true})
	got, ok := fieldValue(t, fields, constants.TagResetSeqNumFlag)
	if !ok || got != "Y" {
		t.Errorf("expected ResetSeqNumFlag=Y, got %q (present=%v)", got, ok)
	}
}

func TestBuildMarketDataRequest_RepeatingGroupsAndParty(t *testing.T) {
	fields := BuildMarketDataRequest(MarketDataRequestParams{
		MdReqID:                 "req-1",
		Symbols:                 []string{"OGDC", "LUCK"},
		SubscriptionRequestType: constants.SubscriptionRequestTypeSubscribe,
		MarketDepth:             0,
		MdEntryTypes:            []string{constants.MdEntryTypeBid, constants.MdEntryTypeOffer},
	})

	if got, ok := fieldValue(t, fields, constants.TagNoMdEntryTypes); !ok || got != "2" {
		t.Errorf("NoMDEntryTypes: got %q (present=%v), want 2", got, ok)
	}
	if got, ok := fieldValue(t, fields, constants.TagNoRelatedSym); !ok || got != "2" {
		t.Errorf("NoRelatedSym: got %q (present=%v), want 2", got, ok)
	}
	if got, ok := fieldValue(t, fields, constants.TagMdUpdateType); !ok || got != constants.MdUpdateTypeIncremental {
		t.Errorf("MDUpdateType: got %q (present=%v), want incremental default", got, ok)
	}
	if got, ok := fieldValue(t, fields, constants.TagPartyIDSource); !ok || got != constants.PartyIDSourcePSX {
		t.Errorf("PartyIDSource: got %q (present=%v), want %q", got, ok, constants.PartyIDSourcePSX)
	}
	if got, ok := fieldValue(t, fields, constants.TagPartyRole); !ok || got != constants.PartyRolePSX {
		t.Errorf("PartyRole: got %q (present=%v), want %q", got, ok, constants.PartyRolePSX)
	}

	var symbolOccurrences int
	for _, f := range fields {
		if f.Tag == constants.TagSymbol {
			symbolOccurrences++
		}
	}
	if symbolOccurrences != 2 {
		t.Errorf("expected 2 occurrences of Symbol, got %d", symbolOccurrences)
	}
}

func TestBuildMarketDataRequest_SnapshotOmitsUpdateType(t *testing.T) {
	fields := BuildMarketDataRequest(MarketDataRequestParams{
		MdReqID:                 "req-2",
		Symbols:                 []string{"OGDC"},
		SubscriptionRequestType: constants.SubscriptionRequestTypeSnapshot,
		MdEntryTypes:            []string{constants.MdEntryTypeTrade},
	})
	if _, ok := fieldValue(t, fields, constants.TagMdUpdateType); ok {
		t.Errorf("MDUpdateType should be absent for a snapshot-only request")
	}
}

func TestBuildSecurityListRequest_OmitsSymbolWhenEmpty(t *testing.T) {
	fields := BuildSecurityListRequest(SecurityListRequestParams{
		SecurityReqID: "req-3",
		RequestType:   constants.SecurityListRequestTypeAll,
	})
	if _, ok := fieldValue(t, fields, constants.TagSymbol); ok {
		t.Errorf("Symbol should be absent when requesting all securities")
	}
	if got, ok := fieldValue(t, fields, constants.TagProduct); !ok || got != constants.ProductEquity {
		t.Errorf("Product: got %q (present=%v), want default %q", got, ok, constants.ProductEquity)
	}
	if got, ok := fieldValue(t, fields, constants.TagTradingSessionID); !ok || got != constants.TradingSessionREG {
		t.Errorf("TradingSessionID: got %q (present=%v), want default %q", got, ok, constants.TradingSessionREG)
	}
}

func TestBuildTradingSessionStatusRequest_DefaultsToREG(t *testing.T) {
	fields := BuildTradingSessionStatusRequest("req-4", "")
	got, ok := fieldValue(t, fields, constants.TagTradingSessionID)
	if !ok || got != constants.TradingSessionREG {
		t.Errorf("TradingSessionID: got %q (present=%v), want %q", got, ok, constants.TradingSessionREG)
	}
}

func TestBuildHeartbeat_EchoesTestReqID(t *testing.T) {
	fields := BuildHeartbeat("probe-1")
	got, ok := fieldValue(t, fields, constants.TagTestReqID)
	if !ok || got != "probe-1" {
		t.Errorf("TestReqID: got %q (present=%v), want %q", got, ok, "probe-1")
	}
}

func TestBuildHeartbeat_OmitsTestReqIDWhenUnsolicited(t *testing.T) {
	fields := BuildHeartbeat("")
	if _, ok := fieldValue(t, fields, constants.TagTestReqID); ok {
		t.Errorf("TestReqID should be absent for an unsolicited heartbeat")
	}
}
