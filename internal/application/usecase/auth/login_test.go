package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khoahotran/portfolio-api/internal/domain/user"
	userMocks "github.com/khoahotran/portfolio-api/internal/domain/user/mocks"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	owner := &user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash, Role: auth.RoleAdmin}
	jwtSvc := auth.NewJWTService("secret", time.Hour)

	tests := []struct {
		name     string
		password string
		arrange  func(repo *userMocks.MockRepository)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			password: "correct-horse",
			arrange: func(repo *userMocks.MockRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), owner.Email).Return(owner, nil)
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			arrange: func(repo *userMocks.MockRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), owner.Email).Return(owner, nil)
			},
			wantErr: apperror.ErrUnauthorized,
		},
		{
			name:     "unknown email",
			password: "correct-horse",
			arrange: func(repo *userMocks.MockRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), owner.Email).Return(nil, apperror.NewNotFound("user", "User not found"))
			},
			wantErr: apperror.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := userMocks.NewMockRepository(gomock.NewController(t))
			tt.arrange(repo)
			uc := NewLoginUseCase(repo, jwtSvc, logger.NewNopLogger())

			out, err := uc.Execute(context.Background(), LoginInput{Email: owner.Email, Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			claims, err := jwtSvc.ValidateToken(out.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, owner.ID, claims.OwnerID)
			assert.Equal(t, auth.RoleAdmin, claims.Role)
		})
	}
}
