package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/crypto"
	"github.com/crowdwaveeu-gif/crowdwave-crm/pkg/utils"
)

func TestUserUsecase_Create_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	userRepo.On("GetByEmail", context.Background(), "new@mail.com").Return(nil, domainerrors.ErrNotFound).Once()
	userRepo.On("Create", context.Background(), mock.Anything).Return(nil).Once()

	user, err := uc.Create(context.Background(), &entities.CreateUserInput{
		FullName: "New Sender",
		Email:    "new@mail.com",
		Role:     string(entities.UserRoleSender),
		Password: "s3cret-pass",
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.UserRoleSender, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, crypto.CheckPassword("s3cret-pass", user.PasswordHash))
}

func TestUserUsecase_Create_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	existing := &entities.User{ID: uuid.New(), Email: "taken@mail.com"}
	userRepo.On("GetByEmail", context.Background(), "taken@mail.com").Return(existing, nil).Once()

	_, err := uc.Create(context.Background(), &entities.CreateUserInput{
		FullName: "Dup",
		Email:    "taken@mail.com",
		Role:     string(entities.UserRoleSender),
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUsecase_Create_UnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	_, err := uc.Create(context.Background(), &entities.CreateUserInput{
		FullName: "X",
		Email:    "x@mail.com",
		Role:     "superuser",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUserUsecase_List_RoleAllMeansNoFilter(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	p := utils.PaginationParams{Page: 1, Limit: 10}
	userRepo.On("List", context.Background(), entities.UserListFilter{}, p).
		Return([]*entities.User{}, int64(0), nil).Once()

	_, _, err := uc.List(context.Background(), entities.UserListFilter{Role: "all"}, p)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_List_UnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	_, _, err := uc.List(context.Background(), entities.UserListFilter{Role: "wizard"}, utils.PaginationParams{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUserUsecase_Update_PartialFields(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	id := uuid.New()
	name := "Renamed"
	city := "Berlin"

	var written map[string]interface{}
	userRepo.On("Update", context.Background(), id, mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(2).(map[string]interface{})
	}).Return(nil).Once()
	userRepo.On("GetByID", context.Background(), id).Return(&entities.User{ID: id, FullName: name}, nil).Once()

	_, err := uc.Update(context.Background(), id, &entities.UpdateUserInput{FullName: &name, City: &city})
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"full_name": "Renamed", "city": "Berlin"}, written)
}

func TestUserUsecase_Update_EmptyPayload(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	_, err := uc.Update(context.Background(), uuid.New(), &entities.UpdateUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUsecase_Update_UnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	role := "wizard"
	_, err := uc.Update(context.Background(), uuid.New(), &entities.UpdateUserInput{Role: &role})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUserUsecase_SetBlocked(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	id := uuid.New()
	userRepo.On("SetBlocked", context.Background(), id, true).Return(nil).Once()

	assert.NoError(t, uc.SetBlocked(context.Background(), id, true))
	userRepo.AssertExpectations(t)
}
