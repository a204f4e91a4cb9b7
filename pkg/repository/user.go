package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gregj/bartenders-friend/pkg/model"
)

var ErrUserNotFound = errors.New("user not found")

func (r *Repository) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("uuid = ?", uuid).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, username string, email string) (*model.User, error) {
	user := model.User{
		UUID:     uuid.New(),
		Username: username,
		Email:    email,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) AddRating(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	if result := r.DB.WithContext(ctx).Create(&rating); result.Error != nil {
		return nil, result.Error
	}

	return &rating, nil
}

func (r *Repository) AddCocktailImage(ctx context.Context, image model.CocktailImage) (*model.CocktailImage, error) {
	if result := r.DB.WithContext(ctx).Create(&image); result.Error != nil {
		return nil, result.Error
	}

	return &image, nil
}
