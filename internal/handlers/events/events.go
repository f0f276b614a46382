// Package events streams live session events as server-sent events.
package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KirkDiggler/standup/internal/notifier"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const defaultPingInterval = 30 * time.Second

// Subscriber hands out per-session event channels; *notifier.Broker satisfies it
type Subscriber interface {
	Subscribe(sessionID string) chan notifier.Event
	Unsubscribe(sessionID string, ch chan notifier.Event)
}

// Handler serves the event stream of a session
type Handler struct {
	broker       Subscriber
	logger       logrus.FieldLogger
	pingInterval time.Duration
}

// NewHandler creates an events handler
func NewHandler(logger logrus.FieldLogger, broker Subscriber) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		broker:       broker,
		logger:       logger.WithField("component", "events"),
		pingInterval: defaultPingInterval,
	}
}

// Routes returns the router to mount under /sessions
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{sessionID}/events", h.stream)
	return r
}

type timerPayload struct {
	MemberID       string `json:"memberId"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	OverLimit      bool   `json:"overLimit"`
}

type completedPayload struct {
	TeamScore            int    `json:"teamScore"`
	WinnerMemberID       string `json:"winnerMemberId"`
	WinnerName           string `json:"winnerName"`
	TotalDurationSeconds int    `json:"totalDurationSeconds"`
	AverageSpeakingTime  int    `json:"averageSpeakingTime"`
	Violations           int    `json:"violations"`
}

type cancelledPayload struct {
	Status string `json:"status"`
}

// encode returns the SSE event name and JSON body of an event
func encode(event notifier.Event) (string, []byte, error) {
	var payload any
	switch event.Type {
	case notifier.EventTimerUpdate:
		payload = timerPayload{
			MemberID:       event.Timer.MemberID,
			ElapsedSeconds: event.Timer.ElapsedSeconds,
			OverLimit:      event.Timer.OverLimit,
		}
	case notifier.EventSessionCompleted:
		p := completedPayload{}
		if summary := event.Completed.Summary; summary != nil {
			p = completedPayload{
				TeamScore:            summary.TeamScore,
				WinnerMemberID:       summary.WinnerMemberID,
				WinnerName:           summary.WinnerName,
				TotalDurationSeconds: summary.TotalDurationSeconds,
				AverageSpeakingTime:  summary.AverageSpeakingTime,
				Violations:           summary.Violations,
			}
		}
		payload = p
	case notifier.EventSessionCancelled:
		payload = cancelledPayload{Status: "cancelled"}
	default:
		return "", nil, fmt.Errorf("unknown event type %q", event.Type)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", nil, err
	}
	return string(event.Type), data, nil
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	flusher.Flush()

	ch := h.broker.Subscribe(sessionID)
	defer h.broker.Unsubscribe(sessionID, ch)

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	log := h.logger.WithField("session_id", sessionID)
	log.Debug("event stream opened")

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}

			name, data, err := encode(event)
			if err != nil {
				log.WithError(err).Warn("failed to encode event")
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
			flusher.Flush()

			// nothing follows the end of a session
			if event.Type == notifier.EventSessionCompleted || event.Type == notifier.EventSessionCancelled {
				return
			}
		case <-ping.C:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
