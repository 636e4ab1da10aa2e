package services

import (
	"context"
	"log"

	"arendaBack/internal/models"
	"arendaBack/internal/repositories"
)

// ListingService serves listing detail views and the recently-viewed list.
type ListingService struct {
	ListingRepo *repositories.ListingRepository
	RecentRepo  *repositories.RecentlyViewedRepository
}

// GetListingByID loads a listing, bumps its view counter, and records it in
// the viewer's recently-viewed list when the viewer is known. Both side
// effects are best-effort: a failed counter or redis write never fails the
// detail view.
func (s *ListingService) GetListingByID(ctx context.Context, id, userID int) (models.Listing, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}

	if err := s.ListingRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("increment views for listing %d: %v", id, err)
	}
	if userID > 0 && s.RecentRepo != nil {
		if err := s.RecentRepo.Record(ctx, userID, id); err != nil {
			log.Printf("record recently viewed for user %d: %v", userID, err)
		}
	}
	return listing, nil
}

// RecentlyViewed returns the caller's recently viewed listing ids, most
// recent first.
func (s *ListingService) RecentlyViewed(ctx context.Context, userID int) ([]int, error) {
	if s.RecentRepo == nil {
		return nil, nil
	}
	return s.RecentRepo.List(ctx, userID)
}
