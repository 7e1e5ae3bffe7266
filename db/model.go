package db

import (
	"time"

	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
)

type Model struct {
	ID        string    `gorm:"primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a random identifier unless the caller chose one.
func (m *Model) BeforeCreate(scope *gorm.Scope) error {
	if m.ID != "" {
		return nil
	}

	return scope.SetColumn("ID", uuid.NewV4().String())
}
