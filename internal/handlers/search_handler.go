package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"arendaBack/internal/models"
	"arendaBack/internal/services"
)

type SearchHandler struct {
	Service *services.SearchService
}

// SearchListings runs a filtered, ranked search over the listing catalog.
func (h *SearchHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	var filters models.SearchFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	response, err := h.Service.Search(r.Context(), filters)
	if err != nil {
		log.Printf("search failed: %v", err)
		http.Error(w, "Failed to search listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("failed to encode search response: %v", err)
	}
}
