package in

import (
	"errors"
	"net/http"
	"strconv"

	mobilein "lifeagent/internal/modules/mobile/port/in"
	apperrors "lifeagent/internal/platform/errors"
)

// HTTPHandler serves the mobile companion shell under /m/.
type HTTPHandler struct {
	usecase mobilein.Usecase
}

func NewHTTPHandler(usecase mobilein.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /m/{path...}", h.serve)
	mux.Handle("GET /m", http.RedirectHandler("/m/", http.StatusMovedPermanently))
}

func (h HTTPHandler) serve(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.Fetch(r.Context(), r.PathValue("path"))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, apperrors.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	source := "origin"
	if out.FromCache {
		source = "cache"
	}
	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Body)))
	w.Header().Set("X-Lifeagent-Source", source)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Body)
}
