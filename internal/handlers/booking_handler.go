package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"arendaBack/internal/booking"
	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
	"arendaBack/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

type bookingRequest struct {
	ListingID         int       `json:"listing_id"`
	StartsAt          time.Time `json:"starts_at"`
	EndsAt            time.Time `json:"ends_at"`
	DeliveryRequested bool      `json:"delivery_requested"`
}

// QuoteBooking validates a proposed rental window and returns the itemized
// price breakdown without persisting anything.
func (h *BookingHandler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	window := models.RentalWindow{StartsAt: req.StartsAt, EndsAt: req.EndsAt}
	breakdown, err := h.Service.Quote(r.Context(), req.ListingID, window, req.DeliveryRequested)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(breakdown); err != nil {
		log.Printf("failed to encode quote: %v", err)
	}
}

// CreateBooking persists a validated quote as a pending booking for the
// authenticated renter.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	renterID, ok := r.Context().Value("user_id").(int)
	if !ok || renterID <= 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	window := models.RentalWindow{StartsAt: req.StartsAt, EndsAt: req.EndsAt}
	created, err := h.Service.Book(r.Context(), renterID, req.ListingID, window, req.DeliveryRequested)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Printf("failed to encode booking: %v", err)
	}
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	renterID, ok := r.Context().Value("user_id").(int)
	if !ok || renterID <= 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing booking ID", http.StatusBadRequest)
		return
	}

	b, err := h.Service.GetBookingByID(r.Context(), id, renterID)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load booking", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(b); err != nil {
		log.Printf("failed to encode booking: %v", err)
	}
}

// writeBookingError maps each rejection reason to its user-facing message.
func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrListingNotFound):
		http.Error(w, "Listing not found", http.StatusNotFound)
	case errors.Is(err, booking.ErrEndBeforeStart):
		http.Error(w, "The rental must end after it starts", http.StatusUnprocessableEntity)
	case errors.Is(err, booking.ErrStartsInPast):
		http.Error(w, "The rental cannot start in the past", http.StatusUnprocessableEntity)
	case errors.Is(err, booking.ErrBelowMinimumDuration):
		http.Error(w, "The rental is shorter than the listing's minimum duration", http.StatusUnprocessableEntity)
	case errors.Is(err, booking.ErrAboveMaximumDuration):
		http.Error(w, "The rental is longer than the listing's maximum duration", http.StatusUnprocessableEntity)
	case errors.Is(err, services.ErrWindowUnavailable):
		http.Error(w, "Those dates are already booked", http.StatusConflict)
	default:
		log.Printf("booking failed: %v", err)
		http.Error(w, "Failed to process booking", http.StatusInternalServerError)
	}
}
