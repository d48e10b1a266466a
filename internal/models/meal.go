package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal is owned by exactly one user. UpdatedAt stays nil until the first update.
type Meal struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	IsOnDiet    bool       `gorm:"column:is_on_diet;not null" json:"isOnDiet"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Seq         int64      `gorm:"not null" json:"-"`
}

func (Meal) TableName() string {
	return "meals"
}
