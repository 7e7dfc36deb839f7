package auth

import (
	"context"
	"errors"
	"strings"

	"gamebuy/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// プロフィールの参照と更新
type ProfileUsecase struct {
	userRepo repository.UserRepository
	clock    Clock
}

func NewProfileUsecase(userRepo repository.UserRepository, clock Clock) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo, clock: clock}
}

// 空文字のフィールドは「変更しない」扱い
type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

func (u *ProfileUsecase) Get(ctx context.Context, userID int64) (UserDTO, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return UserDTO{}, err
	}
	if user == nil {
		return UserDTO{}, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (u *ProfileUsecase) Update(ctx context.Context, userID int64, in UpdateProfileInput) (UserDTO, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return UserDTO{}, err
	}
	if user == nil {
		return UserDTO{}, ErrUserNotFound
	}

	if v := strings.TrimSpace(in.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(in.LastName); v != "" {
		user.LastName = v
	}
	user.UpdatedAt = u.clock.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return UserDTO{}, err
	}

	return toUserDTO(user), nil
}
