package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	mux.Get("/ping", standardMiddleware.ThenFunc(app.ping))

	// Search
	mux.Post("/search/filtered", standardMiddleware.ThenFunc(app.searchHandler.SearchListings))

	// Listings
	mux.Get("/listing/:id", standardMiddleware.ThenFunc(app.listingHandler.GetListingByID))
	mux.Get("/recent", authMiddleware.ThenFunc(app.listingHandler.GetRecentlyViewed))

	// Bookings
	mux.Post("/booking/quote", authMiddleware.ThenFunc(app.bookingHandler.QuoteBooking))
	mux.Post("/booking", authMiddleware.ThenFunc(app.bookingHandler.CreateBooking))
	mux.Get("/booking/:id", authMiddleware.ThenFunc(app.bookingHandler.GetBookingByID))

	return standardMiddleware.Then(mux)
}

func (app *application) ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"status":"ok"}`))
}
