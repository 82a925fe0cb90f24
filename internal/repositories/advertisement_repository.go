package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"myHomeBack/internal/models"
)

type AdvertisementRepository struct {
	DB *sql.DB
}

const advertisementSelect = `
        SELECT a.id, a.title, a.description, a.price, a.quadrature,
               a.real_estate_type, a.advertisement_type, a.status,
               a.is_published, a.is_favourite, a.realise_date,
               COALESCE(a.created_by, ''), a.user_id,
               addr.id, addr.latitude, addr.longitude, addr.city, addr.street,
               a.created_at, a.updated_at
        FROM advertisements a
        JOIN addresses addr ON addr.advertisement_id = a.id
`

func scanAdvertisement(row interface{ Scan(...interface{}) error }) (models.Advertisement, error) {
	var a models.Advertisement
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Price, &a.Quadrature,
		&a.RealEstateType, &a.AdvertisementType, &a.Status,
		&a.IsPublished, &a.IsFavourite, &a.RealiseDate,
		&a.CreatedBy, &a.UserID,
		&a.Address.ID, &a.Address.Latitude, &a.Address.Longitude, &a.Address.City, &a.Address.Street,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return models.Advertisement{}, err
	}
	a.Address.AdvertisementID = a.ID
	return a, nil
}

func (r *AdvertisementRepository) CreateAdvertisement(ctx context.Context, adv models.Advertisement) (models.Advertisement, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Advertisement{}, err
	}
	defer tx.Rollback()

	now := time.Now()
	adv.CreatedAt = now
	if adv.RealiseDate.IsZero() {
		adv.RealiseDate = now
	}
	if adv.Status == "" {
		adv.Status = models.StatusStandard
	}

	result, err := tx.ExecContext(ctx, `
        INSERT INTO advertisements
            (title, description, price, quadrature, real_estate_type, advertisement_type,
             status, is_published, is_favourite, is_deleted, realise_date, user_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?)`,
		adv.Title, adv.Description, adv.Price, adv.Quadrature,
		adv.RealEstateType, adv.AdvertisementType, adv.Status,
		adv.IsPublished, adv.RealiseDate, adv.UserID, adv.CreatedAt,
	)
	if err != nil {
		if isMySQLError(err, mysqlErrForeignKey) {
			return models.Advertisement{}, models.ErrUnknownReference
		}
		return models.Advertisement{}, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Advertisement{}, err
	}
	adv.ID = int(lastID)

	addrResult, err := tx.ExecContext(ctx, `
        INSERT INTO addresses (advertisement_id, latitude, longitude, city, street)
        VALUES (?, ?, ?, ?, ?)`,
		adv.ID, adv.Address.Latitude, adv.Address.Longitude, adv.Address.City, adv.Address.Street,
	)
	if err != nil {
		return models.Advertisement{}, err
	}
	addrID, err := addrResult.LastInsertId()
	if err != nil {
		return models.Advertisement{}, err
	}
	adv.Address.ID = int(addrID)
	adv.Address.AdvertisementID = adv.ID

	if err := tx.Commit(); err != nil {
		return models.Advertisement{}, err
	}
	return adv, nil
}

func (r *AdvertisementRepository) GetPublishedAdvertisements(ctx context.Context) ([]models.Advertisement, error) {
	query := advertisementSelect + `
        WHERE a.is_published = 1 AND a.is_deleted = 0
        ORDER BY a.realise_date DESC`

	return r.queryAdvertisements(ctx, query)
}

func (r *AdvertisementRepository) GetAdvertisementByID(ctx context.Context, id int) (models.Advertisement, error) {
	query := advertisementSelect + `
        WHERE a.id = ? AND a.is_published = 1 AND a.is_deleted = 0`

	adv, err := scanAdvertisement(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Advertisement{}, models.ErrAdvertisementNotFound
	}
	if err != nil {
		return models.Advertisement{}, err
	}

	if err := r.attachImages(ctx, &adv); err != nil {
		return models.Advertisement{}, err
	}
	return adv, nil
}

// GetAdvertisementsByCreatedBy fetches the listings a user marked as chosen.
// The created_by column is the denormalized first name written by
// ChooseAdvertisement.
func (r *AdvertisementRepository) GetAdvertisementsByCreatedBy(ctx context.Context, createdBy string) ([]models.Advertisement, error) {
	query := advertisementSelect + `
        WHERE a.created_by = ? AND a.is_published = 1 AND a.is_deleted = 0
        ORDER BY a.realise_date DESC`

	return r.queryAdvertisements(ctx, query, createdBy)
}

func (r *AdvertisementRepository) GetAdvertisementsByUserID(ctx context.Context, userID int) ([]models.Advertisement, error) {
	query := advertisementSelect + `
        WHERE a.user_id = ? AND a.is_published = 1 AND a.is_deleted = 0
        ORDER BY a.realise_date DESC`

	return r.queryAdvertisements(ctx, query, userID)
}

// GetAdvertisementsOlderThan is the maintenance scan. It deliberately skips
// the publish and soft-delete filters so the status cleaner can reach every
// row with an expired promotion.
func (r *AdvertisementRepository) GetAdvertisementsOlderThan(ctx context.Context, cutoff time.Time) ([]models.Advertisement, error) {
	query := advertisementSelect + `
        WHERE a.realise_date < ?`

	return r.queryAdvertisements(ctx, query, cutoff)
}

// DowngradeStatuses resets the given advertisements to the standard tier in a
// single transaction.
func (r *AdvertisementRepository) DowngradeStatuses(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE advertisements SET status = ?, updated_at = ? WHERE id = ?`,
			models.StatusStandard, now, id,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SearchAdvertisements runs the general search. Supplied criteria are
// AND-combined; filter.MatchAny switches to the additive OR mode. Visibility
// rules stay outside the combination so OR mode can never leak deleted or
// unpublished rows.
func (r *AdvertisementRepository) SearchAdvertisements(ctx context.Context, filter models.AdvertisementFilter) ([]models.Advertisement, error) {
	conditions, params := buildFilterConditions(filter)

	query := advertisementSelect + `
        WHERE a.is_published = 1 AND a.is_deleted = 0`
	if clause := combineConditions(conditions, filter.MatchAny); clause != "" {
		query += " AND " + clause
	}
	query += " ORDER BY a.realise_date DESC"

	return r.queryAdvertisements(ctx, query, params...)
}

func (r *AdvertisementRepository) SearchAdvertisementsInRange(ctx context.Context, req models.RangeSearchRequest) ([]models.Advertisement, error) {
	conditions, params := buildRangeConditions(req)

	query := advertisementSelect + `
        WHERE a.is_published = 1 AND a.is_deleted = 0`
	if clause := combineConditions(conditions, false); clause != "" {
		query += " AND " + clause
	}
	query += " ORDER BY a.realise_date DESC"

	return r.queryAdvertisements(ctx, query, params...)
}

// FastSearch compares the stored city with internal whitespace removed against
// a caller-supplied key, case-sensitively, together with an exact type match.
func (r *AdvertisementRepository) FastSearch(ctx context.Context, cityKey, realEstateType string) ([]models.Advertisement, error) {
	query := advertisementSelect + `
        WHERE REPLACE(addr.city, ' ', '') = ? AND a.real_estate_type = ? AND a.is_deleted = 0
        ORDER BY a.realise_date DESC`

	return r.queryAdvertisements(ctx, query, normalizeCityKey(cityKey), realEstateType)
}

// LocationSearch pushes a bounding-box prefilter into the store query, then
// keeps only rows within the exact great-circle distance.
func (r *AdvertisementRepository) LocationSearch(ctx context.Context, req models.LocationSearchRequest) ([]models.Advertisement, error) {
	minLat, maxLat, minLon, maxLon := boundingBox(req.Latitude, req.Longitude, req.RadiusMeters)

	query := advertisementSelect + `
        WHERE a.is_deleted = 0
          AND addr.latitude BETWEEN ? AND ?
          AND addr.longitude BETWEEN ? AND ?`

	candidates, err := r.queryAdvertisements(ctx, query, minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, err
	}

	var within []models.Advertisement
	for _, adv := range candidates {
		distanceKm := haversineDistanceKm(req.Latitude, req.Longitude, adv.Address.Latitude, adv.Address.Longitude)
		if distanceKm*1000 <= req.RadiusMeters {
			within = append(within, adv)
		}
	}
	return within, nil
}

// ChooseAdvertisement marks a listing as the user's favourite and stamps the
// denormalized created_by field with the user's first name. Both fields are
// written by one UPDATE so a partial application cannot be observed.
func (r *AdvertisementRepository) ChooseAdvertisement(ctx context.Context, advertisementID, userID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var firstName string
	err = tx.QueryRowContext(ctx,
		`SELECT first_name FROM users WHERE id = ? AND is_deleted = 0`, userID,
	).Scan(&firstName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
        UPDATE advertisements
        SET is_favourite = 1, created_by = ?, updated_at = ?
        WHERE id = ? AND is_deleted = 0`,
		firstName, time.Now(), advertisementID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrAdvertisementNotFound
	}

	return tx.Commit()
}

// BuyPoints credits the owner of the user's unique published listing. More
// than one matching listing is an error rather than an arbitrary pick. The
// balance is incremented in place so concurrent requests cannot lose updates.
func (r *AdvertisementRepository) BuyPoints(ctx context.Context, points, userID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var matches int
	err = tx.QueryRowContext(ctx, `
        SELECT COUNT(*) FROM advertisements
        WHERE user_id = ? AND is_published = 1 AND is_deleted = 0`, userID,
	).Scan(&matches)
	if err != nil {
		return err
	}
	if matches == 0 {
		return models.ErrAdvertisementNotFound
	}
	if matches > 1 {
		return models.ErrMultipleAdvertisements
	}

	result, err := tx.ExecContext(ctx, `
        UPDATE users SET points = points + ?, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		points, time.Now(), userID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}

	return tx.Commit()
}

func (r *AdvertisementRepository) UpdateAdvertisement(ctx context.Context, adv models.Advertisement) (models.Advertisement, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Advertisement{}, err
	}
	defer tx.Rollback()

	updatedAt := time.Now()
	adv.UpdatedAt = &updatedAt

	result, err := tx.ExecContext(ctx, `
        UPDATE advertisements
        SET title = ?, description = ?, price = ?, quadrature = ?,
            real_estate_type = ?, advertisement_type = ?, status = ?,
            is_published = ?, updated_at = ?
        WHERE id = ? AND is_deleted = 0`,
		adv.Title, adv.Description, adv.Price, adv.Quadrature,
		adv.RealEstateType, adv.AdvertisementType, adv.Status,
		adv.IsPublished, adv.UpdatedAt, adv.ID,
	)
	if err != nil {
		return models.Advertisement{}, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return models.Advertisement{}, err
	}
	if rows == 0 {
		return models.Advertisement{}, models.ErrAdvertisementNotFound
	}

	if _, err := tx.ExecContext(ctx, `
        UPDATE addresses SET latitude = ?, longitude = ?, city = ?, street = ?
        WHERE advertisement_id = ?`,
		adv.Address.Latitude, adv.Address.Longitude, adv.Address.City, adv.Address.Street, adv.ID,
	); err != nil {
		return models.Advertisement{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Advertisement{}, err
	}

	// Re-read without the published filter; the update may have just
	// unpublished the listing.
	query := advertisementSelect + `
        WHERE a.id = ? AND a.is_deleted = 0`
	updated, err := scanAdvertisement(r.DB.QueryRowContext(ctx, query, adv.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Advertisement{}, models.ErrAdvertisementNotFound
	}
	if err != nil {
		return models.Advertisement{}, err
	}
	if err := r.attachImages(ctx, &updated); err != nil {
		return models.Advertisement{}, err
	}
	return updated, nil
}

func (r *AdvertisementRepository) DeleteAdvertisement(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE advertisements SET is_deleted = 1, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		time.Now(), id,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrAdvertisementNotFound
	}
	return nil
}

func (r *AdvertisementRepository) GetImagesByAdvertisementID(ctx context.Context, advertisementID int) ([]models.Image, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, advertisement_id, file_name, content_type, COALESCE(url, ''), created_at, updated_at
        FROM images
        WHERE advertisement_id = ? AND is_deleted = 0
        ORDER BY id`, advertisementID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.AdvertisementID, &img.FileName, &img.ContentType, &img.URL, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *AdvertisementRepository) GetImageByFileName(ctx context.Context, fileName string) (models.Image, error) {
	var img models.Image
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, advertisement_id, file_name, content_type, content, COALESCE(url, ''), created_at, updated_at
        FROM images
        WHERE file_name = ? AND is_deleted = 0`, fileName,
	).Scan(&img.ID, &img.AdvertisementID, &img.FileName, &img.ContentType, &img.Content, &img.URL, &img.CreatedAt, &img.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Image{}, models.ErrImageNotFound
	}
	if err != nil {
		return models.Image{}, err
	}
	return img, nil
}

// SaveImage stores an uploaded file for a listing. An empty payload is
// rejected before any row is written.
func (r *AdvertisementRepository) SaveImage(ctx context.Context, img models.Image) (models.Image, error) {
	if len(img.Content) == 0 {
		return models.Image{}, models.ErrEmptyImage
	}

	var exists int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM advertisements WHERE id = ? AND is_deleted = 0`, img.AdvertisementID,
	).Scan(&exists)
	if err != nil {
		return models.Image{}, err
	}
	if exists == 0 {
		return models.Image{}, models.ErrAdvertisementNotFound
	}

	img.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, `
        INSERT INTO images (advertisement_id, file_name, content_type, content, url, is_deleted, created_at)
        VALUES (?, ?, ?, ?, ?, 0, ?)`,
		img.AdvertisementID, img.FileName, img.ContentType, img.Content, img.URL, img.CreatedAt,
	)
	if err != nil {
		return models.Image{}, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Image{}, err
	}
	img.ID = int(lastID)
	return img, nil
}

func (r *AdvertisementRepository) queryAdvertisements(ctx context.Context, query string, params ...interface{}) ([]models.Advertisement, error) {
	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []models.Advertisement
	for rows.Next() {
		adv, err := scanAdvertisement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		ads = append(ads, adv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range ads {
		if err := r.attachImages(ctx, &ads[i]); err != nil {
			return nil, err
		}
	}
	return ads, nil
}

func (r *AdvertisementRepository) attachImages(ctx context.Context, adv *models.Advertisement) error {
	images, err := r.GetImagesByAdvertisementID(ctx, adv.ID)
	if err != nil {
		return err
	}
	adv.Images = images
	return nil
}
