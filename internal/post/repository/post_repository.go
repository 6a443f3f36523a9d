package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	postdomain "postbase-backend/internal/post/domain"
	"postbase-backend/pkg/paging"
)

// ListOptions narrows and pages a post listing. Search matches title/content
// case-insensitively; Category matches exactly.
type ListOptions struct {
	Paging   paging.Params
	Search   string
	Category string
}

// PostRepository defines the interface for post persistence.
type PostRepository interface {
	Create(post *postdomain.Post) error
	FindByID(id string) (*postdomain.Post, error)
	Update(post *postdomain.Post) error
	Delete(id string) error
	List(opts ListOptions) ([]postdomain.Post, int64, error)
}

// postRepository implements PostRepository on GORM.
type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Create(post *postdomain.Post) error {
	post.ID = uuid.New().String()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if err := r.db.Create(post).Error; err != nil {
		return err
	}
	// Reload with the author association for the response.
	return r.db.Preload("Author").First(post, "id = ?", post.ID).Error
}

func (r *postRepository) FindByID(id string) (*postdomain.Post, error) {
	var post postdomain.Post
	err := r.db.Preload("Author").Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(post *postdomain.Post) error {
	post.UpdatedAt = time.Now()
	if err := r.db.Save(post).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(post, "id = ?", post.ID).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&postdomain.Post{}).Error
}

func (r *postRepository) List(opts ListOptions) ([]postdomain.Post, int64, error) {
	query := r.db.Model(&postdomain.Post{})

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)",
			pattern, pattern,
		)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []postdomain.Post
	err := query.
		Preload("Author").
		Order("created_at DESC").
		Offset(opts.Paging.Offset()).
		Limit(opts.Paging.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
