package usecase

import (
	"context"

	"homesec/internal/domain/entity"
)

// AttachHouseInput defines the fields of a new house.
type AttachHouseInput struct {
	Name    string
	Address string
}

// HouseUsecase defines house provisioning and listing operations.
type HouseUsecase interface {
	// AttachHouse creates a house for clientID and indexes it on the client.
	AttachHouse(ctx context.Context, caller *entity.Identity, clientID string, input *AttachHouseInput) (*entity.House, error)

	// ListClientHouses returns the full house documents of clientID. Admin only.
	ListClientHouses(ctx context.Context, caller *entity.Identity, clientID string) ([]*entity.House, error)

	// ListHouseSummaries returns the {id, nombre} index stored on userID.
	ListHouseSummaries(ctx context.Context, caller *entity.Identity, userID string) ([]entity.HouseSummary, error)

	// ListHousesWithSensors returns the houses of the caller, addressed by email, with sensors expanded.
	ListHousesWithSensors(ctx context.Context, caller *entity.Identity, email string) ([]*entity.HouseDetail, error)
}
