package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gift-registry/internal/logger"
	"github.com/sbilibin2017/gift-registry/pkg/models"
)

// GiftIdeaReadRepository handles gift idea read operations
type GiftIdeaReadRepository struct {
	db *sqlx.DB
}

func NewGiftIdeaReadRepository(db *sqlx.DB) *GiftIdeaReadRepository {
	return &GiftIdeaReadRepository{db: db}
}

// GetByID returns the gift idea with the given id, or nil when no row matches.
func (r *GiftIdeaReadRepository) GetByID(ctx context.Context, id int64) (*models.GiftIdeaDB, error) {
	const query = `
		SELECT id, title, description, price, url,
		       date_added, date_last_modified, date_reserved,
		       owner_id, recipient_user_id, reserved_by_user_id
		FROM gift_ideas
		WHERE id = $1
	`

	var gift models.GiftIdeaDB
	err := r.db.GetContext(ctx, &gift, query, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gift, nil
}

// List returns all gift ideas. An empty table yields an empty slice.
func (r *GiftIdeaReadRepository) List(ctx context.Context) ([]models.GiftIdeaDB, error) {
	const query = `
		SELECT id, title, description, price, url,
		       date_added, date_last_modified, date_reserved,
		       owner_id, recipient_user_id, reserved_by_user_id
		FROM gift_ideas
		ORDER BY id
	`

	var gifts []models.GiftIdeaDB
	err := r.db.SelectContext(ctx, &gifts, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result_count", len(gifts),
		"error", err,
	)

	return gifts, err
}

// GiftIdeaWriteRepository handles gift idea write operations
type GiftIdeaWriteRepository struct {
	db *sqlx.DB
}

func NewGiftIdeaWriteRepository(db *sqlx.DB) *GiftIdeaWriteRepository {
	return &GiftIdeaWriteRepository{db: db}
}

// Save inserts a new gift idea with server-assigned timestamps, then
// re-reads the row by its title to pick up the assigned id.
func (r *GiftIdeaWriteRepository) Save(ctx context.Context, gift *models.GiftIdeaRequestBody) (*models.GiftIdeaDB, error) {
	const query = `
		INSERT INTO gift_ideas
			(title, description, price, url, date_added, date_last_modified,
			 owner_id, recipient_user_id)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), $5, $6)
	`
	args := []any{gift.Title, gift.Description, gift.Price, gift.URL, gift.OwnerID, gift.RecipientUserID}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{gift.Title, gift.OwnerID, gift.RecipientUserID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var created models.GiftIdeaDB
	const reread = `
		SELECT id, title, description, price, url,
		       date_added, date_last_modified, date_reserved,
		       owner_id, recipient_user_id, reserved_by_user_id
		FROM gift_ideas
		WHERE title = $1
	`
	if err := r.db.GetContext(ctx, &created, reread, gift.Title); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update performs a full-column replace keyed by id, bumping
// date_last_modified, and returns the updated row. Returns sql.ErrNoRows
// when no row matches the id.
func (r *GiftIdeaWriteRepository) Update(ctx context.Context, gift *models.GiftIdeaDB) (*models.GiftIdeaDB, error) {
	const query = `
		UPDATE gift_ideas
		SET title = $2, description = $3, price = $4, url = $5,
		    date_last_modified = NOW(), date_reserved = $6,
		    owner_id = $7, recipient_user_id = $8, reserved_by_user_id = $9
		WHERE id = $1
	`
	args := []any{
		gift.ID, gift.Title, gift.Description, gift.Price, gift.URL,
		gift.DateReserved, gift.OwnerID, gift.RecipientUserID, gift.ReservedByUserID,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{gift.ID, gift.Title},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	return r.reread(ctx, gift.ID)
}

// SetReservedBy sets or clears the reservation holder. A nil userID clears
// the reservation and its timestamp; a non-nil one records both. Returns
// sql.ErrNoRows when no row matches the id.
func (r *GiftIdeaWriteRepository) SetReservedBy(ctx context.Context, giftID int64, userID *int64) (*models.GiftIdeaDB, error) {
	const query = `
		UPDATE gift_ideas
		SET reserved_by_user_id = $2,
		    date_reserved = CASE WHEN $2::BIGINT IS NULL THEN NULL ELSE NOW() END
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, giftID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{giftID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	return r.reread(ctx, giftID)
}

// Delete removes the gift idea and reports whether exactly one row was
// removed. A missing id is not an error.
func (r *GiftIdeaWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `
		DELETE FROM gift_ideas
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *GiftIdeaWriteRepository) reread(ctx context.Context, id int64) (*models.GiftIdeaDB, error) {
	const query = `
		SELECT id, title, description, price, url,
		       date_added, date_last_modified, date_reserved,
		       owner_id, recipient_user_id, reserved_by_user_id
		FROM gift_ideas
		WHERE id = $1
	`
	var gift models.GiftIdeaDB
	if err := r.db.GetContext(ctx, &gift, query, id); err != nil {
		return nil, err
	}
	return &gift, nil
}
