package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsPost is an intranet announcement shown on the dashboard
type NewsPost struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	Published bool       `gorm:"not null;default:false;index" json:"published"`
	AuthorID  *uuid.UUID `gorm:"type:uuid" json:"author_id"`
	Author    *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
