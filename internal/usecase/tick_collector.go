package usecase

import (
	"context"

	"GoldPulse/internal/domain/models"
	drepo "GoldPulse/internal/domain/repository"
	mid "GoldPulse/internal/middleware"
)

// TickCollector collects ticks from the price stream and processes them.
type TickCollector struct {
	stream  drepo.PriceStream
	proc    *TickProcessor
	metrics drepo.Metrics
	pipe    *mid.RealtimePipeline
}

// NewTickCollector creates a new TickCollector instance.
func NewTickCollector(stream drepo.PriceStream, proc *TickProcessor, metrics drepo.Metrics, pipe *mid.RealtimePipeline) *TickCollector {
	return &TickCollector{stream: stream, proc: proc, metrics: metrics, pipe: pipe}
}

// IsConnected returns true if the price stream is connected.
func (c *TickCollector) IsConnected() bool {
	return c.stream.IsConnected()
}

func (c *TickCollector) Start(ctx context.Context) error {
	if err := c.stream.Connect(ctx); err != nil {
		return err
	}
	if err := c.stream.Subscribe(ctx); err != nil {
		return err
	}
	if c.pipe != nil {
		c.pipe.Start(ctx)
	}
	tickCh, errCh := c.stream.Read(ctx)
	go c.consume(ctx, tickCh, errCh)
	return nil
}

func (c *TickCollector) consume(ctx context.Context, tickCh <-chan *models.Tick, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errCh:
			if err != nil {
				c.metrics.RecordError("stream")
				_ = c.stream.Reconnect(ctx)
			}
		case t := <-tickCh:
			if t == nil {
				continue
			}
			if c.pipe != nil {
				_ = c.pipe.Process(ctx, t)
			} else {
				_ = c.proc.Process(ctx, t)
			}
			c.metrics.RecordLastPrice(t.Category, t.Price)
		}
	}
}

func (c *TickCollector) Stop() error { return c.stream.Close() }

// Processor returns the underlying TickProcessor for lifecycle management.
func (c *TickCollector) Processor() *TickProcessor { return c.proc }

// Shutdown stops the pipeline and closes the stream.
func (c *TickCollector) Shutdown(ctx context.Context) error {
	if c.pipe != nil {
		c.pipe.Stop()
	}
	return c.stream.Close()
}
