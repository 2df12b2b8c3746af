package models

import "time"

// GiftIdeaDB represents a gift idea record in the database.
// A gift idea is owned by its creator, intended for a recipient and
// optionally reserved by a third user. Price is free text, not numeric.
type GiftIdeaDB struct {
	ID               int64      `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Description      *string    `json:"description" db:"description"`
	Price            *string    `json:"price" db:"price"`
	URL              *string    `json:"url" db:"url"`
	DateAdded        time.Time  `json:"date_added" db:"date_added"`
	DateLastModified time.Time  `json:"date_last_modified" db:"date_last_modified"`
	DateReserved     *time.Time `json:"date_reserved" db:"date_reserved"`
	OwnerID          int64      `json:"owner_id" db:"owner_id"`
	RecipientUserID  int64      `json:"recipient_user_id" db:"recipient_user_id"`
	ReservedByUserID *int64     `json:"reserved_by_user_id" db:"reserved_by_user_id"`
}

// GiftIdeaRequestBody is the add-gift body. The timestamps are assigned
// server-side.
// swagger:model GiftIdeaRequestBody
type GiftIdeaRequestBody struct {
	// Title
	// required: true
	// example: Headphones
	Title string `json:"title"`

	Description *string `json:"description"`
	Price       *string `json:"price"`
	URL         *string `json:"url"`

	// Creator of the entry
	// required: true
	OwnerID int64 `json:"owner_id"`

	// Who the gift is for
	// required: true
	RecipientUserID int64 `json:"recipient_user_id"`
}

// GiftIdeaResponseBody is the projection returned by reserve/unreserve:
// the entity without its date columns.
// swagger:model GiftIdeaResponseBody
type GiftIdeaResponseBody struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	Price            *string `json:"price"`
	URL              *string `json:"url"`
	OwnerID          int64   `json:"owner_id"`
	RecipientUserID  int64   `json:"recipient_user_id"`
	ReservedByUserID *int64  `json:"reserved_by_user_id"`
}

// ToResponseBody projects a database row to the reserve/unreserve
// response shape.
func (g *GiftIdeaDB) ToResponseBody() *GiftIdeaResponseBody {
	return &GiftIdeaResponseBody{
		ID:               g.ID,
		Title:            g.Title,
		Description:      g.Description,
		Price:            g.Price,
		URL:              g.URL,
		OwnerID:          g.OwnerID,
		RecipientUserID:  g.RecipientUserID,
		ReservedByUserID: g.ReservedByUserID,
	}
}
