package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, sql.ErrNoRows)
		writer.EXPECT().Save(ctx, "alice", gomock.Any(), "alice@example.com").Return(nil)

		svc := NewAuthService(reader, writer, nil)
		err := svc.Register(ctx, "alice", "secret123", "alice@example.com")

		assert.NoError(t, err)
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockUserReader(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(&models.UserDB{UserID: uuid.New()}, nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), nil)
		err := svc.Register(ctx, "alice", "secret123", "alice@example.com")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("save failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, sql.ErrNoRows)
		writer.EXPECT().Save(ctx, "alice", gomock.Any(), "alice@example.com").Return(assert.AnError)

		svc := NewAuthService(reader, writer, nil)
		err := svc.Register(ctx, "alice", "secret123", "alice@example.com")

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.UserDB{
		UserID:       userID,
		Username:     "alice",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockUserReader(ctrl)
		jwtGen := NewMockJWTGenerator(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Nil()).Return(user, nil)
		jwtGen.EXPECT().Generate(ctx, userID).Return("token", nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), jwtGen)
		token, err := svc.Login(ctx, "alice", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockUserReader(ctrl)
		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Nil()).Return(nil, sql.ErrNoRows)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockJWTGenerator(ctrl))
		_, err := svc.Login(ctx, "bob", "secret123")

		assert.ErrorIs(t, err, ErrUserDoesNotExist)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockUserReader(ctrl)
		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Nil()).Return(user, nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockJWTGenerator(ctrl))
		_, err := svc.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
