package entities

import "time"

type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	AuthorID      uint      `gorm:"index;not null" json:"authorId"`
	Author        *Author   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	PublishedYear int       `gorm:"not null" json:"publishedYear"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
