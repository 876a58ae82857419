package usecase

import (
	"context"

	"homesec/internal/domain/entity"
)

// Guard enforces role and ownership rules. Checks run before any store mutation
// and a failed check leaves the store untouched.
type Guard interface {
	// RequireRole fails with Forbidden unless the caller holds one of roles.
	RequireRole(caller *entity.Identity, roles ...entity.Role) error

	// RequireSelfOrAdmin fails with Forbidden unless the caller is targetUserID or an admin.
	RequireSelfOrAdmin(caller *entity.Identity, targetUserID string) error

	// RequireHouseOwnership loads the house and fails with NotFound when it is
	// absent or owned by someone other than targetUserID.
	RequireHouseOwnership(ctx context.Context, targetUserID, houseID string) (*entity.House, error)
}
