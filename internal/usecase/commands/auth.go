package commands

import (
	"context"

	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/pkg/password"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *UserProfile
}

type UserProfile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Profile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}

type authCommandsImpl struct {
	users UserRepository
	jwt   *jwt.Service
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwt: jwtService}
}

func (u *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	entity, err := user.NewUser(in.Email, hash, in.Name, user.RoleUser)
	if err != nil {
		return nil, err
	}

	record := UserRecord{
		ID:           entity.ID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Name:         entity.Name(),
		Role:         entity.Role().String(),
		IsActive:     entity.IsActive(),
	}

	if err := u.users.Create(ctx, record); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.issueToken(record)
}

func (u *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	record, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !record.IsActive {
		return nil, errs.ErrInvalidCredentials
	}

	if err := password.ComparePassword(record.PasswordHash, in.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return u.issueToken(*record)
}

func (u *authCommandsImpl) Profile(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	record, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &UserProfile{
		ID:    record.ID,
		Email: record.Email,
		Name:  record.Name,
		Role:  record.Role,
	}, nil
}

func (u *authCommandsImpl) issueToken(record UserRecord) (*AuthResult, error) {
	token, err := u.jwt.GenerateToken(record.ID, user.Role(record.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token: token,
		User: &UserProfile{
			ID:    record.ID,
			Email: record.Email,
			Name:  record.Name,
			Role:  record.Role,
		},
	}, nil
}
