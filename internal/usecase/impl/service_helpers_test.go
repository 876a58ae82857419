package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"homesec/config"
	"homesec/internal/domain/entity"
	mockRepo "homesec/internal/mocks/repository"
	mockSvc "homesec/internal/mocks/service"
	"homesec/internal/usecase"
)

const (
	adminID  = "650000000000000000000001"
	clientID = "650000000000000000000002"
	otherID  = "650000000000000000000003"
	houseID  = "660000000000000000000001"
	sensorID = "670000000000000000000001"
)

// serviceFixtures holds the mocked dependencies shared by the service tests.
type serviceFixtures struct {
	userRepo   *mockRepo.MockUserRepository
	houseRepo  *mockRepo.MockHouseRepository
	sensorRepo *mockRepo.MockSensorRepository
	hasher     *mockSvc.MockPasswordHasher
	tokens     *mockSvc.MockTokenService
	mailer     *mockSvc.MockMailer
	guard      usecase.Guard
	config     *config.Config
	logger     *slog.Logger
}

func newServiceFixtures(t *testing.T) serviceFixtures {
	t.Helper()

	houseRepo := mockRepo.NewMockHouseRepository(t)

	return serviceFixtures{
		userRepo:   mockRepo.NewMockUserRepository(t),
		houseRepo:  houseRepo,
		sensorRepo: mockRepo.NewMockSensorRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
		tokens:     mockSvc.NewMockTokenService(t),
		mailer:     mockSvc.NewMockMailer(t),
		guard:      NewGuard(GuardParams{HouseRepo: houseRepo}),
		config:     newTestConfig(),
		logger:     newDiscardLogger(),
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			MaxSensorsPerClient: 10,
			DualWriteRetries:    2,
			DualWriteBaseDelay:  time.Millisecond,
		},
	}
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{UserID: adminID, Email: "admin@skyzo.test", Role: entity.RoleAdmin}
}

func clientIdentity() *entity.Identity {
	return &entity.Identity{UserID: clientID, Email: "ana@example.com", Role: entity.RoleClient}
}

func ownedHouse(refs ...entity.SensorRef) *entity.House {
	if refs == nil {
		refs = []entity.SensorRef{}
	}

	return &entity.House{ID: houseID, Name: "Casa Centro", Address: "Av. Siempre Viva 742", OwnerID: clientID, Sensors: refs}
}
