package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson belongs to exactly one course. Position is unique among the non-deleted
// lessons of a course; the partial unique index is the backstop for concurrent
// writers that both pass the service-level uniqueness check.
type Lesson struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index:idx_lessons_course_active_position,unique,where:is_deleted = false" json:"course_id"`
	Course    Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Position  int       `gorm:"not null;index:idx_lessons_course_active_position,unique,where:is_deleted = false" json:"order"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
