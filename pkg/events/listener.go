package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// SubscriberFunc receives the raw JSON payload of one plugin event.
type SubscriberFunc func(payload []byte)

// NotifyListener holds a dedicated pgx connection LISTENing on the plugin
// events channel and fans notifications out to in-process subscribers.
// The receive loop is the sole goroutine touching the connection.
type NotifyListener struct {
	connString string

	connMu sync.Mutex
	conn   *pgx.Conn

	subsMu sync.RWMutex
	subs   map[int]SubscriberFunc
	nextID int

	running    atomic.Bool
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a listener for the given connection string.
func NewNotifyListener(connString string) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		subs:       make(map[int]SubscriberFunc),
	}
}

// Subscribe registers fn for every received event and returns an
// unsubscribe function.
func (l *NotifyListener) Subscribe(fn SubscriberFunc) func() {
	l.subsMu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = fn
	l.subsMu.Unlock()

	return func() {
		l.subsMu.Lock()
		delete(l.subs, id)
		l.subsMu.Unlock()
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := l.connect(ctx)
	if err != nil {
		return err
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started", "channel", PluginEventsChannel)
	return nil
}

// Stop shuts down the receive loop and closes the connection.
func (l *NotifyListener) Stop(ctx context.Context) {
	if !l.running.CompareAndSwap(true, false) {
		return
	}
	l.cancelLoop()
	select {
	case <-l.loopDone:
	case <-ctx.Done():
		slog.Warn("NotifyListener stop timed out waiting for receive loop")
	}

	l.connMu.Lock()
	conn := l.conn
	l.conn = nil
	l.connMu.Unlock()
	if conn != nil {
		_ = conn.Close(context.Background())
	}
}

func (l *NotifyListener) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	listen := "LISTEN " + pgx.Identifier{PluginEventsChannel}.Sanitize()
	if _, err := conn.Exec(ctx, listen); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("LISTEN failed: %w", err)
	}
	return conn, nil
}

func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.broadcast([]byte(notification.Payload))
	}
}

func (l *NotifyListener) broadcast(payload []byte) {
	l.subsMu.RLock()
	defer l.subsMu.RUnlock()
	for _, fn := range l.subs {
		fn(payload)
	}
}

// reconnect replaces a dead connection, backing off between attempts.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	if l.conn != nil {
		_ = l.conn.Close(context.Background())
		l.conn = nil
	}
	l.connMu.Unlock()

	select {
	case <-ctx.Done():
		return
	case <-time.After(time.Second):
	}

	conn, err := l.connect(ctx)
	if err != nil {
		slog.Warn("NotifyListener reconnect failed", "error", err)
		return
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	slog.Info("NotifyListener reconnected")
}
