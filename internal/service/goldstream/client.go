// Package goldstream implements a PriceStream backed by the upstream
// realtime quote WebSocket.
package goldstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"GoldPulse/internal/domain/models"
	drepo "GoldPulse/internal/domain/repository"

	"github.com/gorilla/websocket"
)

// Client implements a PriceStream over the upstream WebSocket feed.
type Client struct {
	apiKey         string
	websocketURL   string
	categories     []string
	reconnectDelay time.Duration
	pingInterval   time.Duration

	conn      *websocket.Conn
	connected bool
}

// New creates a new upstream PriceStream.
func New(apiKey, websocketURL string, categories []string, reconnectDelay, pingInterval time.Duration) drepo.PriceStream {
	return &Client{
		apiKey:         apiKey,
		websocketURL:   websocketURL,
		categories:     categories,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
	}
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect(ctx context.Context) error {
	u := fmt.Sprintf("%s?token=%s", c.websocketURL, c.apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("goldstream connect: %w", err)
	}
	c.conn = conn
	c.connected = true
	log.Printf("goldstream: connected")
	return nil
}

// Subscribe subscribes to configured categories.
func (c *Client) Subscribe(ctx context.Context) error {
	if c.conn == nil || !c.connected {
		return fmt.Errorf("goldstream not connected")
	}
	for _, cat := range c.categories {
		msg := map[string]string{"type": "subscribe", "category": cat}
		if err := c.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", cat, err)
		}
		log.Printf("goldstream: subscribed %s", cat)
	}
	return nil
}

type wsQuote struct {
	C string             `json:"c"`
	P float64            `json:"p"`
	F map[string]float64 `json:"f"`
	T int64              `json:"t"` // ms
}

type wsMessage struct {
	Type string    `json:"type"`
	Data []wsQuote `json:"data"`
}

// Read streams Tick events and errors.
func (c *Client) Read(ctx context.Context) (<-chan *models.Tick, <-chan error) {
	ticks := make(chan *models.Tick, 1024)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.conn != nil {
					_ = c.conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop
	go func() {
		defer close(ticks)
		defer close(errs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if c.conn == nil {
					errs <- fmt.Errorf("goldstream conn nil")
					return
				}
				_, b, err := c.conn.ReadMessage()
				if err != nil {
					errs <- fmt.Errorf("goldstream read: %w", err)
					return
				}
				var m wsMessage
				if err := json.Unmarshal(b, &m); err != nil {
					// ignore non-quote frames
					continue
				}
				if m.Type != "quote" {
					continue
				}
				for _, d := range m.Data {
					sec := d.T / 1000
					tick := &models.Tick{Category: d.C, Timestamp: sec, Price: d.P, Fields: d.F}
					select {
					case ticks <- tick:
					default:
						// drop on backpressure
					}
				}
			}
		}
	}()

	return ticks, errs
}

// Reconnect closes and reconnects.
func (c *Client) Reconnect(ctx context.Context) error {
	_ = c.Close()
	time.Sleep(c.reconnectDelay)
	if err := c.Connect(ctx); err != nil {
		return err
	}
	return c.Subscribe(ctx)
}

// Close closes the WS connection.
func (c *Client) Close() error {
	c.connected = false
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// IsConnected indicates status.
func (c *Client) IsConnected() bool { return c.connected }
