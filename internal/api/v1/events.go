package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vmunix/premiere/internal/events"
)

const maxEventsLimit = 1000

// listEvents serves the newest events, or the full history of one entity
// when entity_type and entity_id are given.
func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if entityType := q.Get("entity_type"); entityType != "" {
		id, err := strconv.ParseInt(q.Get("entity_id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ENTITY", "entity_id must be an integer")
			return
		}
		history, err := s.deps.EventLog.ForEntity(entityType, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "EVENT_ERROR", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, eventsResponse(history, len(history), len(history), 0))
		return
	}

	limit := min(queryInt(r, "limit", 50), maxEventsLimit)
	offset := queryInt(r, "offset", 0)
	if limit < 0 || offset < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_PAGINATION", "limit and offset must be non-negative")
		return
	}

	recent, total, err := s.deps.EventLog.Recent(limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "EVENT_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse(recent, total, limit, offset))
}

func eventsResponse(raw []events.RawEvent, total, limit, offset int) ListEventsResponse {
	resp := ListEventsResponse{
		Items:  make([]EventResponse, 0, len(raw)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, e := range raw {
		resp.Items = append(resp.Items, EventResponse{
			ID:         e.ID,
			EventType:  e.EventType,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Payload:    e.Payload,
			OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
