package impl

import (
	"context"
	"testing"

	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_RequireRole(t *testing.T) {
	fx := newServiceFixtures(t)

	tests := []struct {
		name    string
		caller  *entity.Identity
		wantErr error
	}{
		{name: "no caller", caller: nil, wantErr: domainerrors.ErrUnauthenticated},
		{name: "client", caller: clientIdentity(), wantErr: domainerrors.ErrForbidden},
		{name: "admin", caller: adminIdentity()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.guard.RequireRole(tt.caller, entity.RoleAdmin)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGuard_RequireSelfOrAdmin(t *testing.T) {
	fx := newServiceFixtures(t)

	assert.ErrorIs(t, fx.guard.RequireSelfOrAdmin(nil, clientID), domainerrors.ErrUnauthenticated)
	assert.NoError(t, fx.guard.RequireSelfOrAdmin(clientIdentity(), clientID))
	assert.NoError(t, fx.guard.RequireSelfOrAdmin(adminIdentity(), clientID))
	assert.ErrorIs(t, fx.guard.RequireSelfOrAdmin(clientIdentity(), otherID), domainerrors.ErrForbidden)
}

func TestGuard_RequireHouseOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("owned house is returned", func(t *testing.T) {
		fx := newServiceFixtures(t)
		fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, clientID).Return(ownedHouse(), nil)

		house, err := fx.guard.RequireHouseOwnership(ctx, clientID, houseID)

		require.NoError(t, err)
		assert.Equal(t, houseID, house.ID)
	})

	t.Run("foreign and missing houses look the same", func(t *testing.T) {
		fx := newServiceFixtures(t)
		fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, otherID).Return(nil, repository.ErrHouseNotFound)

		_, err := fx.guard.RequireHouseOwnership(ctx, otherID, houseID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("malformed house id", func(t *testing.T) {
		fx := newServiceFixtures(t)
		fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, "nope", clientID).Return(nil, repository.ErrInvalidID)

		_, err := fx.guard.RequireHouseOwnership(ctx, clientID, "nope")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}
