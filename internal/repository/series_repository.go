package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"GoldPulse/internal/domain/models"
	"GoldPulse/internal/domain/repository"
	pkgkafka "GoldPulse/pkg/kafka"
)

// ClickHouseStorage implements Storage for ClickHouse.
type ClickHouseStorage struct {
	db    *sql.DB
	table string
}

// NewClickHouseStorage creates ClickHouse storage.
func NewClickHouseStorage(db *sql.DB, table string) repository.Storage {
	return &ClickHouseStorage{db: db, table: table}
}

func (s *ClickHouseStorage) Init(ctx context.Context) error {
	return nil // Schema init in pkg
}

func (s *ClickHouseStorage) Store(ctx context.Context, t *models.Tick) error {
	q := fmt.Sprintf("INSERT INTO %s (ts, category, price, bar_buy, bar_sell, ornament_buy, ornament_sell, price_change, source, event_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", s.table)
	// Idempotency placeholder: event_id derived from category+timestamp
	eventID := fmt.Sprintf("%s-%d", t.Category, t.Timestamp)
	_, err := s.db.ExecContext(ctx, q, tickArgs(t, eventID)...)
	return err
}

func (s *ClickHouseStorage) StoreBatch(ctx context.Context, ticks []*models.Tick) error {
	if len(ticks) == 0 {
		return nil
	}
	// Batch insert using VALUES multi-row to reduce round-trips.
	// Chunk size tuned to 2000 rows per batch.
	const chunkSize = 2000
	for start := 0; start < len(ticks); start += chunkSize {
		end := start + chunkSize
		if end > len(ticks) {
			end = len(ticks)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*10)
		for _, t := range ticks[start:end] {
			if t == nil || t.Category == "" || t.Timestamp == 0 {
				continue
			}
			eventID := fmt.Sprintf("%s-%d", t.Category, t.Timestamp)
			values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args, tickArgs(t, eventID)...)
		}
		if len(values) == 0 {
			continue
		}
		q := fmt.Sprintf("INSERT INTO %s (ts, category, price, bar_buy, bar_sell, ornament_buy, ornament_sell, price_change, source, event_id) VALUES %s", s.table, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

func tickArgs(t *models.Tick, eventID string) []interface{} {
	return []interface{}{
		time.Unix(t.Timestamp, 0),
		t.Category,
		t.Price,
		t.Fields[models.FieldBarBuy],
		t.Fields[models.FieldBarSell],
		t.Fields[models.FieldOrnamentBuy],
		t.Fields[models.FieldOrnamentSell],
		t.Fields[models.FieldPriceChange],
		"goldstream",
		eventID,
	}
}

func (s *ClickHouseStorage) Query(ctx context.Context, category string, from, to time.Time, limit int) (models.Series, error) {
	q := fmt.Sprintf("SELECT ts, price, bar_buy, bar_sell, ornament_buy, ornament_sell, price_change FROM %s WHERE category = ? AND ts >= ? AND ts <= ? ORDER BY ts ASC LIMIT ?", s.table)
	rows, err := s.db.QueryContext(ctx, q, category, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series models.Series
	for rows.Next() {
		var ts time.Time
		var price, barBuy, barSell, ornBuy, ornSell, priceChange float64
		if err := rows.Scan(&ts, &price, &barBuy, &barSell, &ornBuy, &ornSell, &priceChange); err != nil {
			return nil, err
		}
		p := models.SeriesPoint{Time: ts.Unix(), Value: price}
		fields := map[string]float64{}
		if barBuy != 0 {
			fields[models.FieldBarBuy] = barBuy
		}
		if barSell != 0 {
			fields[models.FieldBarSell] = barSell
		}
		if ornBuy != 0 {
			fields[models.FieldOrnamentBuy] = ornBuy
		}
		if ornSell != 0 {
			fields[models.FieldOrnamentSell] = ornSell
		}
		if priceChange != 0 {
			fields[models.FieldPriceChange] = priceChange
		}
		if len(fields) > 0 {
			p.Fields = fields
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

func (s *ClickHouseStorage) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseStorage) Close() error {
	return nil // Managed by pkg
}

// KafkaPublisher implements Publisher for Kafka.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates Kafka publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, t *models.Tick) error {
	return p.producer.Publish(ctx, p.topic, []byte(t.Category), tickPayload(t))
}

func (p *KafkaPublisher) PublishBatch(ctx context.Context, ticks []*models.Tick) error {
	if len(ticks) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(ticks))
	for i, t := range ticks {
		msgs[i] = pkgkafka.Message{
			Key:   []byte(t.Category),
			Value: tickPayload(t),
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func tickPayload(t *models.Tick) map[string]interface{} {
	payload := map[string]interface{}{
		"category": t.Category,
		"t":        t.Timestamp,
		"p":        t.Price,
	}
	if len(t.Fields) > 0 {
		payload["fields"] = t.Fields
	}
	return payload
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
