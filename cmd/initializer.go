package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"arendaBack/internal/config"
	"arendaBack/internal/geocode"
	"arendaBack/internal/handlers"
	"arendaBack/internal/repositories"
	"arendaBack/internal/services"
	"arendaBack/utils"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	cfg            config.Config
	db             *sql.DB
	rdb            *redis.Client
	tokens         *utils.Manager
	searchHandler  *handlers.SearchHandler
	listingHandler *handlers.ListingHandler
	bookingHandler *handlers.BookingHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	// Repositories
	listingRepo := repositories.ListingRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	recentRepo := repositories.RecentlyViewedRepository{RDB: rdb}

	geocoder := geocode.NewClient(
		&http.Client{Timeout: 5 * time.Second},
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.APIKey,
		rdb,
		time.Duration(cfg.Geocoder.CacheTTLHours)*time.Hour,
	)

	// Services
	searchService := &services.SearchService{ListingRepo: &listingRepo, Geocoder: geocoder}
	listingService := &services.ListingService{ListingRepo: &listingRepo, RecentRepo: &recentRepo}
	bookingService := &services.BookingService{ListingRepo: &listingRepo, BookingRepo: &bookingRepo}

	// Handlers
	searchHandler := &handlers.SearchHandler{Service: searchService}
	listingHandler := &handlers.ListingHandler{Service: listingService, Tokens: tokens}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		cfg:            cfg,
		db:             db,
		rdb:            rdb,
		tokens:         tokens,
		searchHandler:  searchHandler,
		listingHandler: listingHandler,
		bookingHandler: bookingHandler,
	}, nil
}
