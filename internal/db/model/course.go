package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
)

// Course carries an explicit IsDeleted flag instead of gorm.DeletedAt so that
// every query states whether it wants visible rows or all rows. Soft-deleted
// courses stay addressable by id for administrative hard delete.
type Course struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string       `gorm:"type:varchar(255);not null" json:"title"`
	Status    CourseStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	IsDeleted bool         `gorm:"not null;default:false;index" json:"is_deleted"`
	Lessons   []Lesson     `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
