package domain

import (
	"time"

	authdomain "postbase-backend/internal/auth/domain"
)

type Post struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Category  string           `json:"category,omitempty"`
	Tags      []string         `json:"tags,omitempty" gorm:"serializer:json"`
	Published bool             `json:"published"`
	AuthorID  string           `json:"author_id" gorm:"index"`
	Author    *authdomain.User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
