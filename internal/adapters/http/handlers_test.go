package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/madrury/sudoku-solver/internal/domain"
	"github.com/madrury/sudoku-solver/internal/ports"
	"github.com/madrury/sudoku-solver/internal/usecase"
)

type stubFetcher struct {
	puzzle *ports.SourcePuzzle
	err    error
}

func (s *stubFetcher) Fetch(ctx context.Context, level int) (*ports.SourcePuzzle, error) {
	return s.puzzle, s.err
}

func newEngine(f ports.Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	New(usecase.NewService(f), zerolog.Nop()).Register(e)
	return e
}

func do(t *testing.T, e *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func nearlyFullRow() (digits, mask string) {
	digits = "123456780" + strings.Repeat("0", 72)
	mask = "111111110" + strings.Repeat("0", 72)
	return
}

func TestMarkupEndpoint(t *testing.T) {
	e := newEngine(nil)
	digits, mask := nearlyFullRow()
	body, _ := json.Marshal(map[string]string{"puzzle": digits, "mask": mask})

	w := do(t, e, http.MethodPost, "/api/v1/markup", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Marks [9][9][]uint8 `json:"marks"`
		Moves []domain.Move `json:"moves"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if got := resp.Marks[0][8]; len(got) != 1 || got[0] != 9 {
		t.Errorf("marks[0][8] = %v, want [9]", got)
	}
	if got := resp.Marks[0][0]; len(got) != 0 {
		t.Errorf("marks for a solved cell = %v, want none", got)
	}
}

func TestMarkupEndpointBadBoard(t *testing.T) {
	e := newEngine(nil)
	body, _ := json.Marshal(map[string]string{"puzzle": "123", "mask": "111"})
	if w := do(t, e, http.MethodPost, "/api/v1/markup", string(body)); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if w := do(t, e, http.MethodPost, "/api/v1/markup", "{not json"); w.Code != http.StatusBadRequest {
		t.Fatalf("status for bad JSON = %d, want 400", w.Code)
	}
}

func TestRenderEndpoint(t *testing.T) {
	e := newEngine(nil)
	digits, mask := nearlyFullRow()
	body, _ := json.Marshal(map[string]string{"puzzle": digits, "mask": mask})
	w := do(t, e, http.MethodPost, "/api/v1/render", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "-------------\n|123|456|78 |") {
		t.Fatalf("unexpected render output:\n%s", w.Body.String())
	}
}

func TestHouseEndpoint(t *testing.T) {
	e := newEngine(nil)

	w := do(t, e, http.MethodGet, "/api/v1/houses/row/3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		House string        `json:"house"`
		Cells []domain.Cell `json:"cells"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.House != "row(3)" || len(resp.Cells) != 9 || resp.Cells[0] != (domain.Cell{Row: 3, Col: 1}) {
		t.Fatalf("unexpected house response: %+v", resp)
	}

	w = do(t, e, http.MethodGet, "/api/v1/houses/square/5", "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.House != "square(2,2)" || resp.Cells[0] != (domain.Cell{Row: 4, Col: 4}) {
		t.Fatalf("square 5 = %+v, want square(2,2) starting at (4,4)", resp)
	}

	for _, path := range []string{"/api/v1/houses/diagonal/1", "/api/v1/houses/row/0", "/api/v1/houses/row/ten"} {
		if w := do(t, e, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, w.Code)
		}
	}
}

func TestFetchEndpoint(t *testing.T) {
	p := &ports.SourcePuzzle{Digits: strings.Repeat("1", 81), Mask: strings.Repeat("0", 81), Level: 2, ID: "42"}
	e := newEngine(&stubFetcher{puzzle: p})

	w := do(t, e, http.MethodGet, "/api/v1/fetch?level=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got ports.SourcePuzzle
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if got.ID != "42" || got.Level != 2 {
		t.Fatalf("fetched puzzle = %+v", got)
	}

	if w := do(t, e, http.MethodGet, "/api/v1/fetch?level=9", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad level status = %d, want 400", w.Code)
	}

	down := newEngine(&stubFetcher{err: errors.New("source unreachable")})
	if w := do(t, down, http.MethodGet, "/api/v1/fetch", ""); w.Code != http.StatusBadGateway {
		t.Errorf("failing fetcher status = %d, want 502", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	e := newEngine(nil)
	if w := do(t, e, http.MethodGet, "/healthz", ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
