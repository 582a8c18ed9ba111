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

package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/RonMathew32/psx-connect-sub000/constants"
	"github.com/RonMathew32/psx-connect-sub000/session"
	"github.com/RonMathew32/psx-connect-sub000/store"
	"github.com/chzyer/readline"
)

// repl runs the interactive command shell for one Engine. Order entry
// commands are not carried over from the venue this client was adapted
// from - PSX market-data sessions have no order-entry surface.
func repl(engine *session.Engine, views *store.Views) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("md",
			readline.PcItem("--snapshot"),
			readline.PcItem("--subscribe"),
			readline.PcItem("--depth"),
		),
		readline.PcItem("unsubscribe"),
		readline.PcItem("securities"),
		readline.PcItem("sessionstatus"),
		readline.PcItem("security-status"),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("version"),
		readline.PcItem("exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "PSX-MD> ",
		HistoryFile:     "/tmp/psxfix_history",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Printf("failed to create readline: %v", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}

		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "md":
			handleMdRequest(engine, views, parts)
		case "unsubscribe":
			handleUnsubscribe(engine, views, parts)
		case "securities":
			handleSecurities(engine, views)
		case "sessionstatus":
			handleSessionStatus(engine, views, parts)
		case "security-status":
			handleSecurityStatus(engine, parts)
		case "status":
			handleStatus(engine, views)
		case "help":
			displayHelp()
		case "version":
			fmt.Println("psxfix 1.0.0")
		case "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help' for available commands.")
		}
	}
}

func displayHelp() {
	fmt.Print(`Commands:
  md <symbol> [symbol2 ...] [flags...]   - Market data request
  unsubscribe <symbol>                   - Stop a subscription
  securities                             - List known securities
  sessionstatus [sessionID]              - Trading session status
  security-status <symbol>               - Security trading status
  status                                 - Show engine state and subscriptions
  help                                   - Show this help message
  version, exit

Market Data Flags:
  --snapshot / --subscribe     - Request type (default: --subscribe)
  --depth N                    - Order book depth (0=full, 1=L1, N=LN)
  --trades                     - Trade entries
  --o, --c, --h, --l, --v      - OHLCV entries

Examples:
  md KSE100 --subscribe --depth 10
  md OGDC LUCK --snapshot --trades
  unsubscribe KSE100
  sessionstatus REG
  security-status OGDC
`)
}

func handleMdRequest(engine *session.Engine, views *store.Views, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: md <symbol> [symbol2 ...] [--snapshot|--subscribe] [--depth N] [--trades] [--o] [--c] [--h] [--l] [--v]")
		return
	}

	var symbols []string
	var flagStart int
	for i, part := range parts[1:] {
		if strings.HasPrefix(part, "--") {
			flagStart = i + 1
			break
		}
		symbols = append(symbols, strings.ToUpper(part))
	}
	if flagStart == 0 {
		flagStart = len(parts)
	}

	depth := 0
	var entryTypes []string
	reqType := constants.SubscriptionRequestTypeSubscribe
	for i := flagStart; i < len(parts); i++ {
		switch parts[i] {
		case "--snapshot":
			reqType = constants.SubscriptionRequestTypeSnapshot
		case "--subscribe":
			reqType = constants.SubscriptionRequestTypeSubscribe
		case "--depth":
			if i+1 < len(parts) {
				i++
				if d, err := strconv.Atoi(parts[i]); err == nil {
					depth = d
				}
			}
		case "--trades":
			entryTypes = append(entryTypes, "2")
		case "--o":
			entryTypes = append(entryTypes, "4")
		case "--c":
			entryTypes = append(entryTypes, "5")
		case "--h":
			entryTypes = append(entryTypes, "7")
		case "--l":
			entryTypes = append(entryTypes, "8")
		case "--v":
			entryTypes = append(entryTypes, "B")
		}
	}
	if len(entryTypes) == 0 {
		entryTypes = []string{"0", "1"} // bid, offer
	}

	mdReqID := fmt.Sprintf("md_%d", time.Now().UnixNano())
	err := engine.Subscribe(session.SubscribeParams{
		MdReqID:                 mdReqID,
		Symbols:                 symbols,
		MdEntryTypes:            entryTypes,
		MarketDepth:             depth,
		SubscriptionRequestType: reqType,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if reqType == constants.SubscriptionRequestTypeSubscribe {
		views.MarketData.AddSubscription(mdReqID, symbols, entryTypes)
	}
	fmt.Printf("Market data request sent for %s\n", strings.Join(symbols, ", "))
}

func handleUnsubscribe(engine *session.Engine, views *store.Views, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: unsubscribe <symbol>")
		return
	}
	symbol := strings.ToUpper(parts[1])

	subs := views.MarketData.GetSubscriptionsBySymbol(symbol)
	if len(subs) == 0 {
		if err := engine.Unsubscribe("", []string{symbol}); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}
	for _, sub := range subs {
		if err := engine.Unsubscribe(sub.MdReqID, sub.Symbols); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		views.MarketData.RemoveSubscription(sub.MdReqID)
	}
	fmt.Printf("Unsubscribe request sent for %s\n", symbol)
}

func handleSecurities(engine *session.Engine, views *store.Views) {
	if err := engine.RequestSecurityList(); err != nil {
		fmt.Printf("Error requesting security list: %v\n", err)
		return
	}

	time.Sleep(300 * time.Millisecond)
	securities := views.Securities.GetAll()
	if len(securities) == 0 {
		fmt.Println("No securities known yet - response may still be in flight.")
		return
	}

	fmt.Print("\nSecurities:\n")
	fmt.Print("┌──────────────┬──────────┬──────────────┐\n")
	fmt.Print("│ Symbol       │ CFI Code │ Product      │\n")
	fmt.Print("├──────────────┼──────────┼──────────────┤\n")
	for _, sec := range securities {
		fmt.Printf("│ %-12s │ %-8s │ %-12s │\n", sec.Symbol, sec.CFICode, sec.Product)
	}
	fmt.Print("└──────────────┴──────────┴──────────────┘\n")
}

func handleSessionStatus(engine *session.Engine, views *store.Views, parts []string) {
	sessionID := "REG"
	if len(parts) >= 2 {
		sessionID = strings.ToUpper(parts[1])
	}
	if err := engine.RequestTradingSessionStatus(sessionID); err != nil {
		fmt.Printf("Error requesting trading session status: %v\n", err)
		return
	}

	time.Sleep(300 * time.Millisecond)
	status := views.TradingSession.Get(sessionID)
	if status == nil {
		fmt.Println("No trading session status known yet - response may still be in flight.")
		return
	}
	fmt.Printf("Trading session %s: status=%s (updated %s)\n", status.TradingSessionID, status.Status, status.UpdatedAt.Format("15:04:05"))
}

func handleSecurityStatus(engine *session.Engine, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: security-status <symbol>")
		return
	}
	symbol := strings.ToUpper(parts[1])
	if err := engine.RequestSecurityStatus(symbol); err != nil {
		fmt.Printf("Error requesting security status: %v\n", err)
		return
	}
	fmt.Printf("Security status request sent for %s\n", symbol)
}

func handleStatus(engine *session.Engine, views *store.Views) {
	fmt.Printf("Session: %s\n", engine.State())

	subs := views.MarketData.GetAllSubscriptions()
	if len(subs) == 0 {
		fmt.Println("No active subscriptions")
		return
	}

	fmt.Print("\nActive Subscriptions:\n")
	fmt.Print("┌──────────────────┬────────────┬──────────────┬──────────────┐\n")
	fmt.Print("│ ReqID            │ Symbols    │ Updates      │ Last Update  │\n")
	fmt.Print("├──────────────────┼────────────┼──────────────┼──────────────┤\n")
	for _, sub := range subs {
		lastUpdate := "Never"
		if !sub.LastUpdate.IsZero() {
			lastUpdate = sub.LastUpdate.Format("15:04:05")
		}
		reqID := sub.MdReqID
		if len(reqID) > 16 {
			reqID = "..." + reqID[len(reqID)-13:]
		}
		fmt.Printf("│ %-16s │ %-10s │ %-12d │ %-12s │\n", reqID, strings.Join(sub.Symbols, ","), sub.UpdateCount, lastUpdate)
	}
	fmt.Print("└──────────────────┴────────────┴──────────────┴──────────────┘\n")
}
