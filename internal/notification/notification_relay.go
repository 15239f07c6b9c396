package notification

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Misenpai/prweb/internal/events"
	"github.com/Misenpai/prweb/internal/shared/apperror"
	"github.com/Misenpai/prweb/internal/shared/contextutil"
	"github.com/Misenpai/prweb/internal/upstream"

	"go.uber.org/zap"
)

// Poster is the slice of the upstream client the relay needs.
type Poster interface {
	Get(ctx context.Context, cred upstream.Credential, path string, out any) error
	Post(ctx context.Context, cred upstream.Credential, path string, body, out any) error
}

// Relay holds the pending HR data requests and forwards attendance data
// on demand. Refreshes carry a generation counter so a slow response
// never overwrites a newer snapshot; submissions mutate the snapshot
// directly. There is no in-flight guard on Submit: two rapid identical
// submissions both go upstream.
type Relay struct {
	client    Poster
	publisher EventPublisher
	logger    *zap.Logger

	mu      sync.Mutex
	pending []Notification
	gen     uint64
}

func NewRelay(client Poster, publisher EventPublisher, logger *zap.Logger) *Relay {
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{client: client, publisher: publisher, logger: logger}
}

// Pending returns a copy of the current snapshot.
func (r *Relay) Pending() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.pending))
	copy(out, r.pending)
	return out
}

// Refresh fetches the pending requests. A response is applied only if no
// newer refresh started while it was in flight; non-success responses
// leave the snapshot untouched.
func (r *Relay) Refresh(ctx context.Context, cred upstream.Credential) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	previous := make(map[string]struct{}, len(r.pending))
	for _, n := range r.pending {
		previous[n.Year+"-"+n.Month] = struct{}{}
	}
	r.mu.Unlock()

	var out listResponse
	if err := r.client.Get(ctx, cred, "/pi/notifications", &out); err != nil {
		return err
	}
	if !out.Success {
		return nil
	}

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return nil // superseded by a newer refresh
	}
	r.pending = out.Data
	r.mu.Unlock()

	for _, n := range out.Data {
		if _, seen := previous[n.Year+"-"+n.Month]; seen {
			continue
		}
		event := events.DataRequestedEvent{
			EventType:  "hr.data_requested",
			Month:      n.Month,
			Year:       n.Year,
			ObservedAt: time.Now().UTC(),
		}
		if err := r.publisher.PublishDataRequested(ctx, event); err != nil {
			r.logger.Error("publish data-requested event failed",
				zap.String("month", n.Month),
				zap.String("year", n.Year),
				zap.Error(err),
			)
		}
	}

	return nil
}

// Submit forwards attendance data for one period. On success every
// pending notification matching the submitted (month, year) is removed
// from the snapshot, not just the one acted on. On failure the snapshot
// is left unchanged.
func (r *Relay) Submit(ctx context.Context, cred upstream.Credential, req SubmitDataRequest) (string, error) {
	l := contextutil.GetLogger(ctx, r.logger)

	var out submitResponse
	if err := r.client.Post(ctx, cred, "/pi/submit-data", req, &out); err != nil {
		return "", err
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "Data submission was rejected"
		}
		return "", apperror.New(apperror.CodeUpstreamError, msg, http.StatusBadGateway)
	}

	removed := r.removeMatching(req.Month, req.Year)
	l.Info("attendance data submitted",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Bool("send_all", req.SendAll),
		zap.Int("selected_employees", len(req.SelectedEmployees)),
		zap.Int("notifications_removed", removed),
	)

	event := events.DataSubmittedEvent{
		EventType:     "hr.data_submitted",
		Month:         req.Month,
		Year:          req.Year,
		SendAll:       req.SendAll,
		EmployeeCount: len(req.SelectedEmployees),
		SubmittedBy:   contextutil.GetUsername(ctx),
		OccurredAt:    time.Now().UTC(),
	}
	if err := r.publisher.PublishDataSubmitted(ctx, event); err != nil {
		l.Error("publish data-submitted event failed", zap.Error(err))
	}

	return out.Message, nil
}

func (r *Relay) removeMatching(month, year int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.pending[:0]
	removed := 0
	for _, n := range r.pending {
		m, mErr := strconv.Atoi(n.Month)
		y, yErr := strconv.Atoi(n.Year)
		if mErr == nil && yErr == nil && m == month && y == year {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	r.pending = kept
	return removed
}

// Run polls on a fixed interval until the context is cancelled. No
// backoff: a failed poll is logged and the next tick tries again.
func (r *Relay) Run(ctx context.Context, cred upstream.Credential, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	log := r.logger.Named("poller")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("notification poller started", zap.Duration("poll_interval", interval))

	if err := r.Refresh(ctx, cred); err != nil {
		log.Error("notification refresh failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("notification poller stopped")
			return
		case <-ticker.C:
			if err := r.Refresh(ctx, cred); err != nil {
				log.Error("notification refresh failed", zap.Error(err))
			}
		}
	}
}
