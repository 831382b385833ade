package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marcelandrean/wabot/pkg/ai"
	"github.com/marcelandrean/wabot/pkg/broadcast"
	"github.com/marcelandrean/wabot/pkg/config"
	"github.com/marcelandrean/wabot/pkg/logger"
	"github.com/marcelandrean/wabot/pkg/message"
)

const demoImageURL = "https://picsum.photos/800"

// Dispatcher routes a normalized message's command to its handler. The
// command set is fixed; unmatched commands are silently ignored.
type Dispatcher struct {
	cfg      *config.Config
	ai       ai.Completer
	settings *config.SettingsStore

	// demoDelay is the pause between the demo acknowledgement and the
	// message-type showcase.
	demoDelay    time.Duration
	demoImageURL string
}

func NewDispatcher(cfg *config.Config, completer ai.Completer) *Dispatcher {
	return &Dispatcher{
		cfg:          cfg,
		ai:           completer,
		demoDelay:    time.Second,
		demoImageURL: demoImageURL,
	}
}

// SetSettings attaches the settings store used to record broadcast outcomes.
func (d *Dispatcher) SetSettings(settings *config.SettingsStore) {
	d.settings = settings
}

// Dispatch runs the handler matching m.Cmd. Any handler error (or panic) is
// caught here, logged, and reported to the chat; a command failure is never
// fatal to the process.
func (d *Dispatcher) Dispatch(ctx context.Context, m *message.Message) {
	if !m.IsCommand {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCF("commands", "Handler panic", map[string]interface{}{
				"cmd":   m.Cmd,
				"panic": fmt.Sprint(r),
			})
			d.reportError(ctx, m, fmt.Errorf("%v", r))
		}
	}()

	var err error
	switch m.Cmd {
	case "menu":
		err = d.handleMenu(ctx, m)
	case "ping":
		err = m.Reply(ctx, "Pong!")
	case "demo":
		err = d.handleDemo(ctx, m)
	case "ai":
		err = d.handleAI(ctx, m)
	case "broadcast", "bc":
		err = d.handleBroadcast(ctx, m)
	case "bclist":
		err = d.handleBroadcastList(ctx, m)
	default:
		logger.DebugCF("commands", "No matching command", map[string]interface{}{
			"cmd": m.Cmd,
		})
		return
	}

	if err != nil {
		logger.ErrorCF("commands", "Handler error", map[string]interface{}{
			"cmd":   m.Cmd,
			"error": err.Error(),
		})
		d.reportError(ctx, m, err)
	}
}

func (d *Dispatcher) reportError(ctx context.Context, m *message.Message, err error) {
	if replyErr := m.Reply(ctx, "*ERROR:* "+err.Error()); replyErr != nil {
		logger.ErrorCF("commands", "Failed to send error reply", map[string]interface{}{
			"error": replyErr.Error(),
		})
	}
}

func (d *Dispatcher) handleMenu(ctx context.Context, m *message.Message) error {
	return m.SendText(ctx, m.SenderID, "Hello, this is the menu command")
}

func (d *Dispatcher) handleAI(ctx context.Context, m *message.Message) error {
	if len(m.Args) == 0 {
		return m.Reply(ctx, "What would you like to ask the AI?")
	}

	prompt := strings.Join(m.Args, " ")
	result, err := d.ai.Complete(ctx, prompt)
	if err != nil {
		logger.ErrorCF("commands", "AI request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return m.Reply(ctx, "An error occurred: "+err.Error())
	}
	return m.Reply(ctx, result)
}

func (d *Dispatcher) handleBroadcastList(ctx context.Context, m *message.Message) error {
	if !m.IsOwner {
		return m.Reply(ctx, "Sorry, only the owner can use broadcast commands")
	}
	// Saved-list broadcasting is not implemented; no contact persistence yet.
	return m.Reply(ctx, "This command would broadcast to a saved list of contacts. Implement this by storing contact lists in your database.")
}

func (d *Dispatcher) handleBroadcast(ctx context.Context, m *message.Message) error {
	if !m.IsOwner {
		return m.Reply(ctx, "Sorry, only the owner can use broadcast commands")
	}

	if len(m.Args) < 2 {
		usage := fmt.Sprintf("*Broadcast Command*\n\nFormat: %sbroadcast number1,number2,number3%smessage",
			d.cfg.Prefix, d.cfg.SplitArgs)
		return m.Reply(ctx, usage)
	}

	recipients := parseRecipients(m.Args[0], d.cfg.CountryCode)
	if len(recipients) == 0 {
		return m.Reply(ctx, "Please provide at least one recipient number")
	}

	text := strings.Join(m.Args[1:], " ")

	if err := m.Reply(ctx, fmt.Sprintf("Broadcasting text message to %d recipients...", len(recipients))); err != nil {
		return err
	}

	result := broadcast.Text(ctx, m, recipients, text, broadcast.Options{
		Delay:    d.cfg.BroadcastDelay(),
		Strategy: broadcast.StrategyFixed,
	})

	d.recordBroadcast(result)

	return m.Reply(ctx, fmt.Sprintf(
		"Broadcast completed:\n✅ Successful: %d\n❌ Failed: %d\n📊 Total: %d",
		result.Success, result.Failed, result.Total))
}

// recordBroadcast keeps the latest aggregate outcome in the settings blob.
func (d *Dispatcher) recordBroadcast(result *broadcast.Result) {
	if d.settings == nil {
		return
	}
	d.settings.Set("last_broadcast", map[string]interface{}{
		"total":   result.Total,
		"success": result.Success,
		"failed":  result.Failed,
	})
	if err := d.settings.Save(); err != nil {
		logger.WarnCF("commands", "Failed to save broadcast record", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// parseRecipients splits a comma-separated recipient list, trimming tokens,
// dropping empties, and replacing a leading 0 with the country code.
func parseRecipients(list, countryCode string) []string {
	var recipients []string
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, "0") {
			token = countryCode + token[1:]
		}
		recipients = append(recipients, token)
	}
	return recipients
}
