package entities

import "time"

// Author is a catalog author. Deleting an author removes its books through the
// foreign key cascade declared on Books.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Bio       string    `gorm:"type:text;not null" json:"bio"`
	Books     []Book    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"books,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
