package in

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifeagent/internal/modules/notes/dto"
	notesin "lifeagent/internal/modules/notes/port/in"
	apperrors "lifeagent/internal/platform/errors"
)

// HTTPHandler receives runtime messages forwarded from the content script.
type HTTPHandler struct {
	usecase notesin.Usecase
}

func NewHTTPHandler(usecase notesin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

type messageRequest struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/messages", h.postMessage)
	mux.HandleFunc("GET /v1/notes", h.listNotes)
}

func (h HTTPHandler) postMessage(w http.ResponseWriter, r *http.Request) {
	req := messageRequest{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 256<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode message: "+err.Error())
		return
	}
	if _, err := h.usecase.HandleMessage(r.Context(), dto.MessageInput{Type: req.Type, Text: req.Text}); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h HTTPHandler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.usecase.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"notes": notes})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
