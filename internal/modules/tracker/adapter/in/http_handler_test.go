package in_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	in "lifeagent/internal/modules/tracker/adapter/in"
	"lifeagent/internal/modules/tracker/dto"
	apperrors "lifeagent/internal/platform/errors"
)

type fakeUsecase struct {
	events []dto.EventInput
}

func (f *fakeUsecase) HandleEvent(_ context.Context, input dto.EventInput) (dto.EventOutput, error) {
	if input.Kind != "activated" && input.Kind != "removed" && input.Kind != "updated" {
		return dto.EventOutput{}, fmt.Errorf("%w: unsupported kind", apperrors.ErrInvalidInput)
	}
	f.events = append(f.events, input)
	out := dto.EventOutput{Kind: input.Kind}
	if input.Kind == "activated" {
		out.Flush = &dto.FlushOutput{UnitID: "1", Category: "reddit.com", ElapsedMS: 1200, Recorded: true}
	}
	return out, nil
}

func (f *fakeUsecase) Classify(_ context.Context, url string) (dto.ClassifyOutput, error) {
	return dto.ClassifyOutput{URL: url}, nil
}

func (f *fakeUsecase) Snapshot(context.Context) (dto.SnapshotOutput, error) {
	return dto.SnapshotOutput{
		State:     "tracking",
		ActiveID:  "7",
		StartedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		Totals:    []dto.CategoryTotal{{Category: "youtube.com", TotalMS: 60000}},
	}, nil
}

func (f *fakeUsecase) OpenUnits(context.Context) ([]dto.UnitOutput, error) { return nil, nil }

func TestPostEvent(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{}
	mux := http.NewServeMux()
	in.NewHTTPHandler(uc).Register(mux)

	rec := httptest.NewRecorder()
	body := `{"kind":"activated","tab_id":"2"}`
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Kind  string `json:"kind"`
		Flush struct {
			Category  string `json:"category"`
			ElapsedMS int64  `json:"elapsed_ms"`
		} `json:"flush"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Kind != "activated" || resp.Flush.Category != "reddit.com" || resp.Flush.ElapsedMS != 1200 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(uc.events) != 1 || uc.events[0].UnitID != "2" {
		t.Fatalf("tab_id must map to unit id, got %+v", uc.events)
	}
}

func TestPostEventRejectsBadInput(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	in.NewHTTPHandler(&fakeUsecase{}).Register(mux)

	for _, body := range []string{`{"kind":"focused","tab_id":"1"}`, `{`} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestGetStatus(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	in.NewHTTPHandler(&fakeUsecase{}).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"state":"tracking"`, `"active_tab_id":"7"`, `"started_at":"2026-10-18T09:00:00Z"`, `"total_ms":60000`} {
		if !strings.Contains(body, want) {
			t.Fatalf("status body %s missing %s", body, want)
		}
	}
}
