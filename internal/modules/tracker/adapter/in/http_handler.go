package in

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifeagent/internal/modules/tracker/dto"
	trackerin "lifeagent/internal/modules/tracker/port/in"
	apperrors "lifeagent/internal/platform/errors"
)

// HTTPHandler receives tab events forwarded by the browser extension.
type HTTPHandler struct {
	usecase trackerin.Usecase
}

func NewHTTPHandler(usecase trackerin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

type eventRequest struct {
	Kind     string `json:"kind"`
	TabID    string `json:"tab_id"`
	URL      string `json:"url"`
	Complete bool   `json:"complete"`
	Active   bool   `json:"active"`
}

type flushResponse struct {
	UnitID    string `json:"unit_id"`
	Category  string `json:"category"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Recorded  bool   `json:"recorded"`
	Fired     bool   `json:"fired"`
}

type eventResponse struct {
	Kind  string         `json:"kind"`
	Flush *flushResponse `json:"flush,omitempty"`
	Alert string         `json:"alert,omitempty"`
}

type totalResponse struct {
	Category string `json:"category"`
	TotalMS  int64  `json:"total_ms"`
}

type statusResponse struct {
	State     string          `json:"state"`
	ActiveID  string          `json:"active_tab_id,omitempty"`
	StartedAt string          `json:"started_at,omitempty"`
	Totals    []totalResponse `json:"totals"`
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/events", h.postEvent)
	mux.HandleFunc("GET /v1/status", h.getStatus)
}

func (h HTTPHandler) postEvent(w http.ResponseWriter, r *http.Request) {
	req := eventRequest{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode event: "+err.Error())
		return
	}
	out, err := h.usecase.HandleEvent(r.Context(), dto.EventInput{
		Kind:     req.Kind,
		UnitID:   req.TabID,
		URL:      req.URL,
		Complete: req.Complete,
		Active:   req.Active,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	resp := eventResponse{Kind: out.Kind, Alert: out.Alert}
	if out.Flush != nil {
		resp.Flush = &flushResponse{
			UnitID:    out.Flush.UnitID,
			Category:  out.Flush.Category,
			ElapsedMS: out.Flush.ElapsedMS,
			Recorded:  out.Flush.Recorded,
			Fired:     out.Flush.Fired,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h HTTPHandler) getStatus(w http.ResponseWriter, r *http.Request) {
	snap, err := h.usecase.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := statusResponse{State: snap.State, ActiveID: snap.ActiveID, Totals: make([]totalResponse, 0, len(snap.Totals))}
	if !snap.StartedAt.IsZero() {
		resp.StartedAt = snap.StartedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	for _, item := range snap.Totals {
		resp.Totals = append(resp.Totals, totalResponse{Category: item.Category, TotalMS: item.TotalMS})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
