package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"arendaBack/internal/models"
)

var (
	ErrListingNotFound = errors.New("listing not found")
)

type ListingRepository struct {
	DB *sql.DB
}

const listingColumns = `
        l.id, l.title, l.description, l.category_id, c.name, l.condition, l.status,
        l.daily_rate, l.hourly_rate, l.security_deposit, l.delivery_available, l.delivery_fee,
        l.rating, l.reviews_count, l.views_count, l.favorites_count,
        l.min_rental_hours, l.max_rental_hours, l.latitude, l.longitude,
        u.id, u.name, u.rating, u.verification_status, u.avatar_path,
        l.created_at, l.updated_at`

// FetchAll returns every non-deleted listing with its owner, ordered by
// creation time descending. The search core filters and ranks in memory.
func (r *ListingRepository) FetchAll(ctx context.Context) ([]models.Listing, error) {
	query := fmt.Sprintf(`
    SELECT %s
    FROM listings l
    JOIN categories c ON c.id = l.category_id
    JOIN users u ON u.id = l.user_id
    WHERE l.deleted_at IS NULL
    ORDER BY l.created_at DESC
    `, listingColumns)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) GetListingByID(ctx context.Context, id int) (models.Listing, error) {
	query := fmt.Sprintf(`
    SELECT %s
    FROM listings l
    JOIN categories c ON c.id = l.category_id
    JOIN users u ON u.id = l.user_id
    WHERE l.id = $1 AND l.deleted_at IS NULL
    `, listingColumns)

	listing, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

func (r *ListingRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE listings SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var (
		listing   models.Listing
		maxHours  sql.NullInt64
		latitude  sql.NullFloat64
		longitude sql.NullFloat64
		avatar    sql.NullString
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&listing.ID,
		&listing.Title,
		&listing.Description,
		&listing.CategoryID,
		&listing.CategoryName,
		&listing.Condition,
		&listing.Status,
		&listing.DailyRate,
		&listing.HourlyRate,
		&listing.SecurityDeposit,
		&listing.DeliveryAvailable,
		&listing.DeliveryFee,
		&listing.Rating,
		&listing.ReviewsCount,
		&listing.ViewsCount,
		&listing.FavoritesCount,
		&listing.MinRentalHours,
		&maxHours,
		&latitude,
		&longitude,
		&listing.Owner.ID,
		&listing.Owner.Name,
		&listing.Owner.Rating,
		&listing.Owner.VerificationStatus,
		&avatar,
		&listing.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	if maxHours.Valid {
		v := int(maxHours.Int64)
		listing.MaxRentalHours = &v
	}
	if latitude.Valid && longitude.Valid {
		lat, lon := latitude.Float64, longitude.Float64
		listing.Latitude = &lat
		listing.Longitude = &lon
	}
	if avatar.Valid {
		listing.Owner.AvatarPath = &avatar.String
	}
	if updatedAt.Valid {
		listing.UpdatedAt = &updatedAt.Time
	}
	return listing, nil
}
