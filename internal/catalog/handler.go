// internal/catalog/handler.go
package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"libracat/internal/logging"
)

// AddItemRequest is the body of POST /items. Type selects the variant;
// author/isbn apply to books, narrator/length_minutes to audio books.
type AddItemRequest struct {
	Type          string `json:"type"`
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	Narrator      string `json:"narrator,omitempty"`
	LengthMinutes int    `json:"length_minutes,omitempty"`
}

// StatsResponse is the body of GET /stats. Changes is the number of
// mutations recorded since the process started.
type StatsResponse struct {
	Total   int              `json:"total"`
	ByType  map[ItemType]int `json:"by_type"`
	Changes int              `json:"changes"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes registers the catalogue endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/items", h.handleAddItem)
	r.Get("/items", h.handleListItems)
	r.Delete("/items/{id}", h.handleRemoveItem)
	r.Get("/stats", h.handleStats)
	r.Get("/history", h.handleHistory)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	itemType, err := ParseItemType(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var item LibraryItem
	switch itemType {
	case TypeBook:
		item = NewBook(req.ID, req.Title, req.Author, req.ISBN)
	case TypeAudioBook:
		item = NewAudioBook(req.ID, req.Title, req.Narrator, req.LengthMinutes)
	}

	if err := h.service.AddItem(r.Context(), item); err != nil {
		logging.FromContext(r.Context()).Error("add item failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ViewOf(item))
}

// handleListItems serves GET /items. With ?title= it performs an exact
// case-insensitive lookup; with ?type= it filters by discriminator;
// otherwise it returns the full catalogue in insertion order.
func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	if title := r.URL.Query().Get("title"); title != "" {
		item, ok, err := h.service.FindByTitle(r.Context(), title)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		writeJSON(w, []ItemView{ViewOf(item)})
		return
	}

	var items []LibraryItem
	var err error
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		itemType, perr := ParseItemType(typeParam)
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		items, err = h.service.FindByType(r.Context(), itemType)
	} else {
		items, err = h.service.List(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ViewOf(item))
	}
	writeJSON(w, views)
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	removed, err := h.service.RemoveItem(r.Context(), id)
	if err != nil {
		logging.FromContext(r.Context()).Error("remove item failed", "error", err, "item_id", id)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	history, err := h.service.History(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, StatsResponse{
		Total:   stats.Total,
		ByType:  stats.ByType,
		Changes: len(history),
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.History(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, events)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
