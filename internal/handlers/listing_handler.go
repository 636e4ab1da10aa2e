package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"arendaBack/internal/repositories"
	"arendaBack/internal/services"
	"arendaBack/utils"
)

type ListingHandler struct {
	Service *services.ListingService
	Tokens  *utils.Manager
}

// GetListingByID serves a listing detail view. The route is public; when the
// caller presents a valid token the view is recorded in their
// recently-viewed list.
func (h *ListingHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	userID := h.optionalUserID(r)

	listing, err := h.Service.GetListingByID(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load listing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		log.Printf("failed to encode listing: %v", err)
	}
}

// GetRecentlyViewed returns the caller's recently viewed listing ids.
func (h *ListingHandler) GetRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok || userID <= 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ids, err := h.Service.RecentlyViewed(r.Context(), userID)
	if err != nil {
		log.Printf("recently viewed for user %d: %v", userID, err)
		http.Error(w, "Failed to load recently viewed listings", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []int{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]int{"listing_ids": ids}); err != nil {
		log.Printf("failed to encode recently viewed: %v", err)
	}
}

func (h *ListingHandler) optionalUserID(r *http.Request) int {
	if h.Tokens == nil {
		return 0
	}
	tokenString := r.Header.Get("Authorization")
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return 0
	}
	claims, err := h.Tokens.Parse(strings.TrimPrefix(tokenString, "Bearer "))
	if err != nil {
		return 0
	}
	return int(claims.UserID)
}
