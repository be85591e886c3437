package server

import (
	"log/slog"
	"net/http"

	"github.com/Andyyyyyy/bats-stats/internal/storage"
)

// HighlightEntry is one grouped row on the read API: the date of the
// highlight plus its optional score and comment.
type HighlightEntry struct {
	Date    string `json:"date"`
	Value   *int   `json:"value"`
	Comment string `json:"comment"`
}

// GroupedHighlights maps player -> type -> entries, newest first.
type GroupedHighlights map[string]map[string][]HighlightEntry

// HighlightRecord is one row of the flat listing.
type HighlightRecord struct {
	ID        int64   `json:"id"`
	Player    string  `json:"player"`
	Type      string  `json:"type"`
	Value     *int    `json:"value"`
	Comment   *string `json:"comment"`
	CreatedAt string  `json:"created_at"`
}

// Dates are rendered the way the club reads them (de-DE).
const displayDateLayout = "02.01.2006"

// handleHighlights serves GET /api/highlights: grouped by player and type
// for the frontend, or the raw rows with ?flat=1.
func handleHighlights(logger *slog.Logger, store HighlightLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := store.ListHighlights(r.Context())
		if err != nil {
			logger.Error("listing highlights", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load highlights")
			return
		}

		if r.URL.Query().Get("flat") != "" {
			writeJSON(w, http.StatusOK, flatten(rows))
			return
		}
		writeJSON(w, http.StatusOK, group(rows))
	}
}

func flatten(rows []storage.Highlight) []HighlightRecord {
	out := make([]HighlightRecord, 0, len(rows))
	for _, h := range rows {
		out = append(out, HighlightRecord{
			ID:        h.ID,
			Player:    h.Player,
			Type:      string(h.Type),
			Value:     h.Value,
			Comment:   h.Comment,
			CreatedAt: h.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return out
}

func group(rows []storage.Highlight) GroupedHighlights {
	result := make(GroupedHighlights)
	for _, h := range rows {
		byType, ok := result[h.Player]
		if !ok {
			byType = make(map[string][]HighlightEntry)
			result[h.Player] = byType
		}

		comment := ""
		if h.Comment != nil {
			comment = *h.Comment
		}

		byType[string(h.Type)] = append(byType[string(h.Type)], HighlightEntry{
			Date:    h.CreatedAt.Format(displayDateLayout),
			Value:   h.Value,
			Comment: comment,
		})
	}
	return result
}
