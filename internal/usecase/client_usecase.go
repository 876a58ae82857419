package usecase

import (
	"context"

	"homesec/internal/domain/entity"
)

// CreateClientInput defines the fields an admin supplies for a new client.
type CreateClientInput struct {
	Name  string
	Email string
}

// NewSensorInput describes a sensor to create alongside its house. Location is optional.
type NewSensorInput struct {
	Type     string
	Location string
}

// NewHouseInput describes a house to create alongside its owner.
type NewHouseInput struct {
	Name    string
	Address string
	Sensors []NewSensorInput
}

// CreateClientCompleteInput provisions a client with houses and sensors in one call.
type CreateClientCompleteInput struct {
	Client CreateClientInput
	Houses []NewHouseInput
}

// CreateClientOutput returns the created client. The password hash is never set.
type CreateClientOutput struct {
	User *entity.User
	// WelcomeMailSent is false when the best-effort welcome mail could not be delivered.
	WelcomeMailSent bool
}

// ClientUsecase defines admin provisioning and client lookup operations.
type ClientUsecase interface {
	CreateClient(ctx context.Context, caller *entity.Identity, input *CreateClientInput) (*CreateClientOutput, error)
	CreateClientComplete(ctx context.Context, caller *entity.Identity, input *CreateClientCompleteInput) (*CreateClientOutput, error)
	ListClients(ctx context.Context, caller *entity.Identity) ([]*entity.User, error)
	SearchClients(ctx context.Context, caller *entity.Identity, term string) ([]*entity.User, error)

	// GetProfile returns the caller's own account without its password hash.
	GetProfile(ctx context.Context, caller *entity.Identity) (*entity.User, error)
}
