package entities

import (
	"Cocktail-Catalog/domain"
	"time"
)

type Entry struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	Recipe      string    `gorm:"type:text;not null" json:"recipe"`
	ImageRef    *string   `gorm:"type:text" json:"imageRef"`
	Comment     *string   `gorm:"type:text" json:"comment"`
	CreatedAt   time.Time `gorm:"not null;index" json:"createdAt"`
}

func (e *Entry) ToDomain() domain.Entry {
	return domain.Entry{
		ID:          e.ID,
		Name:        e.Name,
		Ingredients: e.Ingredients,
		Recipe:      e.Recipe,
		ImageRef:    e.ImageRef,
		Comment:     e.Comment,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}
