package models

import "time"

// Post is a short text post ("tweet") created by a user. Posts are write-once:
// there is no update or delete path.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  uint      `gorm:"index;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
}
