package models

import "time"

// Post is an authored text post. PublicID is the only externally addressable
// identifier; the numeric primary key never leaves the repository layer.
// Slug is derived from the title at creation and is not guaranteed unique.
type Post struct {
	ID         uint        `gorm:"primaryKey" json:"-"`
	PublicID   string      `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	Slug       string      `gorm:"size:255;index;not null" json:"slug"`
	Title      string      `gorm:"size:255;not null" json:"title"`
	AuthorName string      `gorm:"size:64;not null" json:"author_name"`
	Content    string      `gorm:"type:text;not null" json:"content"`
	Images     []PostImage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images"`
	CreatedBy  uint        `gorm:"index;not null" json:"created_by"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PostImage is one attachment of a post. Position preserves the order the
// images were submitted in.
type PostImage struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PostID   uint   `gorm:"index;not null" json:"-"`
	Position int    `gorm:"not null" json:"-"`
	URL      string `gorm:"size:512;not null" json:"url"`
	AltText  string `gorm:"size:255" json:"alt_text,omitempty"`
	Caption  string `gorm:"size:255" json:"caption,omitempty"`
}
