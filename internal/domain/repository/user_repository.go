package repository

import "github.com/karamansaglik/pharmacy-api/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
// GetByUsername returns (nil, nil) when the user does not exist.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
