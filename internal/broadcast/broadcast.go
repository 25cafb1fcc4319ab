// Package broadcast fans a message out to every tracked channel through the
// host's outbound sink.
package broadcast

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Sink delivers one message to one channel. Implementations report failure
// as an error value; a failure never takes down the caller.
type Sink interface {
	Send(ctx context.Context, channelID, text string) error
}

// Result aggregates per-channel delivery outcomes for observability.
type Result struct {
	Delivered int
	Failed    int
}

// Fanout delivers text to every channel in parallel. Each delivery is
// independent: a failure is logged and counted without aborting the
// siblings. The call returns once every delivery has settled.
func Fanout(ctx context.Context, sink Sink, channels []string, text string) Result {
	if sink == nil || len(channels) == 0 {
		return Result{}
	}

	var (
		mu     sync.Mutex
		result Result
	)
	group := new(errgroup.Group)
	for _, channelID := range channels {
		channelID := channelID
		group.Go(func() error {
			if err := sink.Send(ctx, channelID, text); err != nil {
				log.Printf("broadcast: delivery failed channel_id=%s err=%v", channelID, err)
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			result.Delivered++
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()
	return result
}
