package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"uns-visa/internal/auth"
	autherrors "uns-visa/internal/auth/errors"
	authMock "uns-visa/internal/auth/mock"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(pw)
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	password := "password123"
	mockUser := &auth.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: hashOf(t, password),
		Role:     "admin",
		IsActive: true,
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		token, refreshToken, resp, err := service.Login(ctx, mockUser.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, mockUser.Email, resp.Email)
		assert.Equal(t, "admin", resp.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		_, _, _, err := service.Login(ctx, mockUser.Email, "wrongpass")
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "nobody@example.com").
			Return(nil, assert.AnError)

		_, _, _, err := service.Login(ctx, "nobody@example.com", password)
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})

	t.Run("Deactivated Account", func(t *testing.T) {
		inactive := *mockUser
		inactive.IsActive = false

		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(&inactive, nil)

		_, _, _, err := service.Login(ctx, mockUser.Email, password)
		assert.Equal(t, autherrors.ErrUserInactive, err)
	})
}

func TestService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	password := "password123"
	mockUser := &auth.User{
		ID:       uuid.New(),
		Email:    "staff@example.com",
		Name:     "Staff",
		Password: hashOf(t, password),
		Role:     "staff",
		IsActive: true,
	}

	t.Run("Success Refresh", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		_, refreshToken, _, err := service.Login(ctx, mockUser.Email, password)
		assert.NoError(t, err)

		mockRepo.EXPECT().
			GetByID(ctx, mockUser.ID).
			Return(mockUser, nil)

		newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, mockUser.Email, resp.Email)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, "not-a-jwt")
		assert.Equal(t, autherrors.ErrInvalidToken, err)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	mockUser := &auth.User{
		ID:       uuid.New(),
		Email:    "staff@example.com",
		Password: hashOf(t, "oldpassword"),
		Role:     "staff",
		IsActive: true,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByID(ctx, mockUser.ID).
			Return(mockUser, nil)
		mockRepo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpassword1"))
				assert.NoError(t, err, "stored password should be the new hash")
				return nil
			})

		err := service.ChangePassword(ctx, mockUser.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "oldpassword",
			NewPassword:     "newpassword1",
		})
		assert.NoError(t, err)
	})

	t.Run("Wrong Current Password", func(t *testing.T) {
		fresh := &auth.User{
			ID:       mockUser.ID,
			Email:    mockUser.Email,
			Password: hashOf(t, "oldpassword"),
			Role:     "staff",
			IsActive: true,
		}
		mockRepo.EXPECT().
			GetByID(ctx, mockUser.ID).
			Return(fresh, nil)

		err := service.ChangePassword(ctx, mockUser.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "nope",
			NewPassword:     "newpassword1",
		})
		assert.Equal(t, autherrors.ErrWrongPassword, err)
	})

	t.Run("Invalid User ID", func(t *testing.T) {
		err := service.ChangePassword(ctx, "not-a-uuid", auth.ChangePasswordRequest{
			CurrentPassword: "x",
			NewPassword:     "newpassword1",
		})
		assert.Equal(t, autherrors.ErrInvalidUserID, err)
	})
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success Register", func(t *testing.T) {
		req := auth.RegisterRequest{
			Name:     "New Staff",
			Email:    "staff2@example.com",
			Password: "password123",
			Role:     "staff",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				assert.Equal(t, req.Email, u.Email)
				assert.Equal(t, "staff", u.Role)
				assert.True(t, u.IsActive)
				assert.NotEqual(t, req.Password, u.Password, "password must be hashed")
				return nil
			})

		resp, err := service.Register(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, req.Email, resp.Email)
		assert.Equal(t, "staff", resp.Role)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		req := auth.RegisterRequest{
			Name:     "Dup",
			Email:    "dup@example.com",
			Password: "password123",
			Role:     "staff",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(assert.AnError)

		_, err := service.Register(ctx, req)
		assert.Error(t, err)
	})
}

func TestService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(&auth.User{ID: id}, nil)
		mockRepo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, service.DeleteUser(ctx, id.String()))
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, assert.AnError)

		err := service.DeleteUser(ctx, id.String())
		assert.Equal(t, autherrors.ErrUserNotFound, err)
	})
}
