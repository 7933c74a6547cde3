package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"topgreen/internal/lib/logger/sl"

	"github.com/redis/go-redis/v9"
)

const channel = "topgreen:changefeed"

// Publisher announces that a table's contents changed. Subscribers are
// expected to invalidate and reload the matching collection wholesale.
type Publisher interface {
	TableChanged(table string)
}

// Broadcaster is the local fan-out side, satisfied by realtime.Hub.
type Broadcaster interface {
	Broadcast(topic string)
}

type change struct {
	Table string    `json:"table"`
	At    time.Time `json:"at"`
}

// Redis bridges change notifications over a Redis channel so every
// running instance can fan them out to its own websocket subscribers.
type Redis struct {
	conn *redis.Client
	log  *slog.Logger
}

func NewRedis(addr string, log *slog.Logger) (*Redis, error) {
	conn := redis.NewClient(&redis.Options{Addr: addr})

	if err := conn.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Redis{conn: conn, log: log}, nil
}

// TableChanged publishes best-effort; a failed publish is logged and
// dropped, matching the source's fire-and-forget realtime semantics.
func (r *Redis) TableChanged(table string) {
	data, err := json.Marshal(change{Table: table, At: time.Now().UTC()})
	if err != nil {
		r.log.Error("failed to marshal change", sl.Err(err))
		return
	}

	if err := r.conn.Publish(context.Background(), channel, data).Err(); err != nil {
		r.log.Error("failed to publish change", sl.Err(err), slog.String("table", table))
	}
}

// Listen subscribes to the change channel and forwards each table name to
// the broadcaster. Blocks until ctx is cancelled.
func (r *Redis) Listen(ctx context.Context, b Broadcaster) {
	sub := r.conn.Subscribe(ctx, channel)
	defer sub.Close()

	ch := sub.Channel()

	r.log.Info("change feed listener started")

	for {
		select {
		case <-ctx.Done():
			r.log.Info("change feed listener stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var c change
			if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil {
				r.log.Error("failed to parse change", sl.Err(err))
				continue
			}

			b.Broadcast(c.Table)
		}
	}
}

func (r *Redis) Close() error {
	return r.conn.Close()
}

// Local delivers changes straight to the broadcaster, used when Redis is
// disabled in config.
type Local struct {
	B Broadcaster
}

func (l Local) TableChanged(table string) {
	l.B.Broadcast(table)
}
