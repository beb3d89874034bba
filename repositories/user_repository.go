package repositories

import (
	"gorm.io/gorm"

	"github.com/twtrd/twtrd/models"
)

// UserRepository wraps user persistence so handlers receive an explicit
// dependency instead of reaching for a global model registry.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by the given DB.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID returns the user with the given id, or gorm.ErrRecordNotFound.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user registered with the given email, or gorm.ErrRecordNotFound.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
