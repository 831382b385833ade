package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelandrean/wabot/pkg/logger"
	"github.com/marcelandrean/wabot/pkg/message"
	"github.com/marcelandrean/wabot/pkg/wa"
)

// handleDemo acknowledges immediately, then after a fixed pause walks
// through one send of every message type. Failures anywhere in the sequence
// are reported back to the chat; partial sends are not rolled back.
func (d *Dispatcher) handleDemo(ctx context.Context, m *message.Message) error {
	if err := m.Reply(ctx, "🚀 Demonstrating different message types..."); err != nil {
		return err
	}

	if d.demoDelay > 0 {
		time.Sleep(d.demoDelay)
	}

	if err := d.runDemoSequence(ctx, m); err != nil {
		logger.ErrorCF("commands", "Demo sequence failed", map[string]interface{}{
			"error": err.Error(),
		})
		return m.Reply(ctx, "Error in demo: "+err.Error())
	}
	return nil
}

func (d *Dispatcher) runDemoSequence(ctx context.Context, m *message.Message) error {
	if err := m.Reply(ctx, "This is a simple text message"); err != nil {
		return err
	}

	if err := m.ReplyWithImage(ctx, message.URL(d.demoImageURL), "This is a random image caption"); err != nil {
		return err
	}

	if err := m.ReplyWithPoll(ctx, "What's your favorite color?", []string{"Red", "Blue", "Green", "Yellow"}); err != nil {
		return err
	}

	if err := m.ReplyWithLocation(ctx, -6.1754, 106.8272, "Jakarta, Indonesia"); err != nil {
		return err
	}

	if err := m.ReplyWithContact(ctx, d.cfg.OwnerNumber, d.cfg.OwnerName); err != nil {
		return err
	}

	if d.cfg.DemoNumber != "" {
		if err := m.ReplyWithContact(ctx, d.cfg.DemoNumber, d.cfg.DemoName); err != nil {
			return err
		}
	}

	if err := m.SendPresenceUpdate(ctx, wa.PresenceComposing); err != nil {
		return err
	}

	if m.SenderID != wa.EnsureUserJID(d.cfg.OwnerNumber) {
		if err := m.SendText(ctx, d.cfg.OwnerNumber,
			fmt.Sprintf("User %s is testing the demo command", m.SenderID)); err != nil {
			return err
		}
	}
	return nil
}
