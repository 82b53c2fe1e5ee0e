package in

import (
	"encoding/json"
	"net/http"
	"time"

	notifyin "lifeagent/internal/modules/notify/port/in"
)

// HTTPHandler lets the extension collect queued notifications and show them
// through chrome.notifications.
type HTTPHandler struct {
	usecase notifyin.Usecase
}

func NewHTTPHandler(usecase notifyin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

type queuedResponse struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/notifications", h.drain)
}

func (h HTTPHandler) drain(w http.ResponseWriter, r *http.Request) {
	queued, err := h.usecase.Drain(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	resp := make([]queuedResponse, 0, len(queued))
	for _, item := range queued {
		resp = append(resp, queuedResponse{
			ID:        item.ID,
			Source:    item.Source,
			Title:     item.Title,
			Message:   item.Message,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
