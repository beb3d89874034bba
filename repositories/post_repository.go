package repositories

import (
	"gorm.io/gorm"

	"github.com/twtrd/twtrd/models"
)

// PostRepository wraps post persistence. All reads preload the author so
// callers can shape the reduced {id, username} author view.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a PostRepository backed by the given DB.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create persists a new post.
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID returns the post with its author populated, or gorm.ErrRecordNotFound.
func (r *PostRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAll returns every post, newest first. Ties on created_at fall back to
// storage order.
func (r *PostRepository) ListAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Preload("Author").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByAuthor returns the given user's posts, newest first.
func (r *PostRepository) ListByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("author_id = ?", authorID).Preload("Author").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
