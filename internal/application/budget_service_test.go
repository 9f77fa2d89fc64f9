package application

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bnema/giftbox-cli/internal/adapters/session/memory"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedInStore() *memory.Store {
	store := memory.NewStore()
	store.SetSession(domain.Session{AccessToken: "access-1", User: &domain.User{Email: "ada@example.com", Spent: "0"}})
	return store
}

func TestUpdateBudgetStoresServerUser(t *testing.T) {
	users := mocks.NewMockUserBackend(t)
	store := signedInStore()
	service := NewBudgetService(users, store)

	users.EXPECT().UpdateBudget(mockAnyContext(), 250.0).Return(domain.User{
		Email:     "ada@example.com",
		Budget:    strPtr("250.00"),
		Spent:     "40.00",
		Remaining: strPtr("210.00"),
	}, nil)

	user, err := service.UpdateBudget(context.Background(), 250)
	require.NoError(t, err)
	assert.True(t, user.HasBudget())

	current := store.Session().User
	require.NotNil(t, current)
	require.NotNil(t, current.Remaining)
	assert.Equal(t, "210.00", *current.Remaining)
}

func TestUpdateBudgetRejectsNonFiniteAmount(t *testing.T) {
	service := NewBudgetService(mocks.NewMockUserBackend(t), signedInStore())

	_, err := service.UpdateBudget(context.Background(), math.Inf(1))
	require.Error(t, err)
	_, err = service.UpdateBudget(context.Background(), math.NaN())
	require.Error(t, err)
}

func TestDeleteBudgetClearsBudgetFields(t *testing.T) {
	users := mocks.NewMockUserBackend(t)
	store := signedInStore()
	store.UpdateUser(domain.User{Email: "ada@example.com", Budget: strPtr("100.00"), Remaining: strPtr("100.00")})
	service := NewBudgetService(users, store)

	users.EXPECT().DeleteBudget(mockAnyContext()).Return(domain.User{Email: "ada@example.com", Spent: "0"}, nil)

	_, err := service.DeleteBudget(context.Background())
	require.NoError(t, err)
	assert.False(t, store.Session().User.HasBudget())
}

func TestBudgetFailureKeepsSessionUser(t *testing.T) {
	users := mocks.NewMockUserBackend(t)
	store := signedInStore()
	service := NewBudgetService(users, store)

	users.EXPECT().UpdateName(mockAnyContext(), "Ada").Return(domain.User{}, errors.New("rejected"))

	_, err := service.UpdateName(context.Background(), "Ada")
	require.Error(t, err)
	assert.Equal(t, "ada@example.com", store.Session().User.Email)
	assert.Nil(t, store.Session().User.Name)
}

func TestDeleteAccountSignsOut(t *testing.T) {
	users := mocks.NewMockUserBackend(t)
	store := signedInStore()
	service := NewBudgetService(users, store)

	users.EXPECT().Delete(mockAnyContext()).Return(nil)

	require.NoError(t, service.DeleteAccount(context.Background()))
	assert.False(t, store.IsAuthenticated())
}

func TestDeleteAccountFailureKeepsSession(t *testing.T) {
	users := mocks.NewMockUserBackend(t)
	store := signedInStore()
	service := NewBudgetService(users, store)

	users.EXPECT().Delete(mockAnyContext()).Return(errors.New("rejected"))

	require.Error(t, service.DeleteAccount(context.Background()))
	assert.True(t, store.IsAuthenticated())
}
