package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/api/shared"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/events"
)

// StreamHandler serves the live task-created feed over Server-Sent
// Events. Each connected client holds exactly one bus subscription,
// optionally narrowed to one owner, which is released as soon as the
// client disconnects.
type StreamHandler struct {
	bus    *events.Bus
	logger *slog.Logger
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(bus *events.Bus, logger *slog.Logger) *StreamHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &StreamHandler{
		bus:    bus,
		logger: logger.With(slog.String("component", "stream_handler")),
	}
}

// TaskCreated handles GET /api/tasks/events requests. The optional
// user_id query parameter filters the stream to tasks owned by that
// user; without it, every created task is delivered. Events published
// before the request subscribed are never replayed.
func (h *StreamHandler) TaskCreated(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
			return
		}
		userID = &id
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	stream := events.NewFilteredStream(
		h.bus.Subscribe(events.TopicTaskCreated),
		events.FilterByOwner(userID),
	)
	defer stream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log := h.logger.With(slog.String("trace_id", shared.GetTraceID(r.Context())))
	log.Debug("subscription stream opened", "filtered", userID != nil)
	defer log.Debug("subscription stream closed")

	for {
		select {
		case <-r.Context().Done():
			return

		case evt, open := <-stream.C():
			if !open {
				// Bus shut down; end the stream cleanly.
				return
			}
			if evt.Task == nil {
				continue
			}

			payload, err := json.Marshal(taskToResponse(evt.Task))
			if err != nil {
				log.Error("failed to encode event payload",
					"error", err,
					"event_id", evt.ID)
				continue
			}

			if _, err := fmt.Fprintf(w, "event: %s\nid: %s\ndata: %s\n\n",
				events.TopicTaskCreated, evt.ID, payload); err != nil {
				log.Debug("client write failed, closing stream", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}
