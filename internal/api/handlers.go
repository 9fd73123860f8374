package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/villert/popthings/internal/apperr"
	"github.com/villert/popthings/internal/convert"
	"github.com/villert/popthings/internal/history"
	"github.com/villert/popthings/internal/placeholder"
)

// Handler holds API route handlers. hist may be nil when no history
// database is configured.
type Handler struct {
	hist   *history.DB
	symbol string
}

// NewHandler creates a new Handler using the given placeholder symbol.
func NewHandler(hist *history.DB, symbol string) *Handler {
	if symbol == "" {
		symbol = placeholder.DefaultSymbol
	}
	return &Handler{hist: hist, symbol: symbol}
}

// Convert handles POST /convert. The template content is substituted with
// the provided placeholder values and converted to the Things JSON payload.
// A document whose placeholders are not all covered by the request is a 400;
// a structurally malformed document is a 422.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("content is required"))
		return
	}

	text, err := placeholder.Apply(req.Content, h.symbol, req.Placeholders)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	res, err := convert.Document(text)
	if err != nil {
		if errors.Is(err, apperr.ErrStructure) {
			writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
			return
		}
		slog.Error("convert failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	projects, todos := res.Counts()
	h.record("api", res)

	writeJSON(w, http.StatusOK, ConvertResponse{
		Items:    res.JSON,
		URL:      res.URL,
		Projects: projects,
		ToDos:    todos,
	})
}

// History handles GET /history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.hist == nil {
		writeJSON(w, http.StatusOK, HistoryResponse{Conversions: []history.Entry{}})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.hist.Recent(limit)
	if err != nil {
		slog.Error("history query failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Conversions: entries, Total: len(entries)})
}

func (h *Handler) record(source string, res *convert.Result) {
	if h.hist == nil {
		return
	}
	projects, todos := res.Counts()
	err := h.hist.Record(history.Entry{
		Source:    source,
		Projects:  projects,
		ToDos:     todos,
		URLLength: len(res.URL),
	})
	if err != nil {
		slog.Warn("history record failed", slog.String("error", err.Error()))
	}
}
