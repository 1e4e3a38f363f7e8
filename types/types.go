// Package types defines the data structures used in the link shortener service.
package types

import "time"

// Link is the persisted record mapping a short code to its original URL.
// Records are immutable once committed: they are never updated and never
// deleted, so the struct carries no UpdatedAt or DeletedAt fields.
type Link struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	ShortCode   string    `gorm:"uniqueIndex;size:6;not null" json:"short_code"`
	OriginalURL string    `gorm:"not null" json:"original_url"`
	OwnerID     string    `gorm:"index;size:36;not null" json:"owner_id"`
	CreatedAt   time.Time `gorm:"index;not null" json:"created_at"`
}

// CreateLinkRequest is the inbound payload for link creation. The web form
// posts a single "url" field; JSON clients send the same shape.
type CreateLinkRequest struct {
	URL string `form:"url" json:"url" validate:"required"`
}

// LinkResponse is the outbound representation of a committed link.
type LinkResponse struct {
	ShortCode   string    `json:"short_code"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}
