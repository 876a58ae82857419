package impl

import (
	"context"
	"slices"

	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/usecase"

	"go.uber.org/fx"
)

const houseNotFoundDetail = "Casa no encontrada o no pertenece al usuario"

// guard implements the usecase.Guard interface.
type guard struct {
	houseRepo repository.HouseRepository
}

// GuardParams holds dependencies for Guard, injected by Fx.
type GuardParams struct {
	fx.In

	HouseRepo repository.HouseRepository
}

// NewGuard is the constructor for guard.
func NewGuard(params GuardParams) usecase.Guard {
	return &guard{houseRepo: params.HouseRepo}
}

func (g *guard) RequireRole(caller *entity.Identity, roles ...entity.Role) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !slices.Contains(roles, caller.Role) {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (g *guard) RequireSelfOrAdmin(caller *entity.Identity, targetUserID string) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}
	if caller.UserID == targetUserID || caller.IsAdmin() {
		return nil
	}

	return domainerrors.ErrForbidden
}

// RequireHouseOwnership reports a foreign house exactly like a missing one.
func (g *guard) RequireHouseOwnership(ctx context.Context, targetUserID, houseID string) (*entity.House, error) {
	house, err := g.houseRepo.FindByIDAndOwner(ctx, houseID, targetUserID)
	if err != nil {
		return nil, toAppError(err, houseNotFoundDetail)
	}

	return house, nil
}
