package broadcast

import (
	"context"
	"time"

	"github.com/marcelandrean/wabot/pkg/logger"
	"github.com/marcelandrean/wabot/pkg/message"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Strategy selects the inter-send throttling policy.
type Strategy string

const (
	StrategyFixed Strategy = "fixed"
	StrategyNone  Strategy = "none"
)

// Outcome is one recipient's delivery result.
type Outcome struct {
	Recipient string `json:"recipient"`
	Status    Status `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Result aggregates a whole batch, with per-recipient outcomes in input
// order. Success+Failed always equals Total.
type Result struct {
	Total   int       `json:"total"`
	Success int       `json:"success"`
	Failed  int       `json:"failed"`
	Results []Outcome `json:"results"`
}

type Options struct {
	Delay    time.Duration
	Strategy Strategy
	// FileName overrides the document file name for file-kind media.
	FileName string
}

// Sender is the slice of the responder surface batch delivery needs.
// *message.Message satisfies it.
type Sender interface {
	SendText(ctx context.Context, number, text string) error
	SendImage(ctx context.Context, number string, src message.MediaSource, caption string) error
	SendVideo(ctx context.Context, number string, src message.MediaSource, caption string) error
	SendAudio(ctx context.Context, number string, src message.MediaSource) error
	SendFile(ctx context.Context, number string, src message.MediaSource, fileName string) error
}

// Text delivers one text message to each recipient in order, strictly
// sequentially. A recipient's failure is recorded and never aborts the
// batch; once started, a batch runs to completion.
func Text(ctx context.Context, s Sender, recipients []string, msg string, opts Options) *Result {
	return run(recipients, opts, func(number string) error {
		return s.SendText(ctx, number, msg)
	})
}

// Media delivers one media payload to each recipient in order. The declared
// kind picks the send operation; unknown kinds fall back to image delivery.
// Audio delivery drops the caption per the transport's constraints.
func Media(ctx context.Context, s Sender, recipients []string, src message.MediaSource, caption string, kind message.MediaKind, opts Options) *Result {
	return run(recipients, opts, func(number string) error {
		switch kind {
		case message.MediaVideo:
			return s.SendVideo(ctx, number, src, caption)
		case message.MediaAudio:
			return s.SendAudio(ctx, number, src)
		case message.MediaFile:
			return s.SendFile(ctx, number, src, opts.FileName)
		default:
			return s.SendImage(ctx, number, src, caption)
		}
	})
}

func run(recipients []string, opts Options, send func(string) error) *Result {
	result := &Result{
		Total:   len(recipients),
		Results: make([]Outcome, 0, len(recipients)),
	}

	for _, number := range recipients {
		if err := send(number); err != nil {
			logger.WarnCF("broadcast", "Failed to send to recipient", map[string]interface{}{
				"recipient": number,
				"error":     err.Error(),
			})
			result.Results = append(result.Results, Outcome{
				Recipient: number,
				Status:    StatusFailed,
				Error:     err.Error(),
			})
			result.Failed++
		} else {
			result.Results = append(result.Results, Outcome{
				Recipient: number,
				Status:    StatusSuccess,
			})
			result.Success++
		}

		// Fixed pause after every attempt; a running batch is never
		// cancelled mid-flight.
		if opts.Strategy != StrategyNone && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}

	return result
}
