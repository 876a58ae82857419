package mongo

import (
	"context"

	"homesec/config"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/errors"
	"homesec/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// houseRepository implements the repository.HouseRepository interface on the houses collection.
type houseRepository struct {
	coll *mongo.Collection
}

// NewHouseRepository is the constructor for houseRepository.
func NewHouseRepository(db *mongo.Database, cfg *config.Config) repository.HouseRepository {
	return &houseRepository{
		coll: db.Collection(cfg.Mongo.Collections.Houses),
	}
}

// Create persists a new house and assigns its ID.
func (repo *houseRepository) Create(ctx context.Context, house *entity.House) error {
	houseM, err := fromHouseDomain(house)
	if err != nil {
		return err
	}

	result, err := repo.coll.InsertOne(ctx, houseM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create house")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		house.ID = oid.Hex()
	}

	return nil
}

// FindByID retrieves a house by ID.
func (repo *houseRepository) FindByID(ctx context.Context, id string) (*entity.House, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

// FindByIDAndOwner retrieves a house only when it belongs to ownerID.
func (repo *houseRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.House, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{"_id": oid, "usuario_id": owner})
}

func (repo *houseRepository) findOne(ctx context.Context, filter bson.M) (*entity.House, error) {
	var houseM model.HouseModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&houseM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrHouseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find house")
	}

	return toHouseDomain(&houseM), nil
}

// FindByOwner returns every house owned by ownerID.
func (repo *houseRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.House, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"usuario_id": owner})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find houses by owner")
	}

	var housesM []model.HouseModel
	if err := cursor.All(ctx, &housesM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode houses")
	}

	houses := make([]*entity.House, 0, len(housesM))
	for i := range housesM {
		houses = append(houses, toHouseDomain(&housesM[i]))
	}

	return houses, nil
}

// PushSensor appends a sensor reference to the house.
func (repo *houseRepository) PushSensor(ctx context.Context, id string, ref entity.SensorRef) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	sensorID, err := parseID(ref.SensorID)
	if err != nil {
		return err
	}

	update := bson.M{"$push": bson.M{"sensores": model.SensorRefModel{SensorID: sensorID, Type: ref.Type.String()}}}
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push sensor")
	}
	if result.MatchedCount == 0 {
		return repository.ErrHouseNotFound
	}

	return nil
}

// Delete removes a house. Deleting an absent house is not an error.
func (repo *houseRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete house")
	}

	return nil
}

// toHouseDomain maps a persistence model to a domain entity.
func toHouseDomain(data *model.HouseModel) *entity.House {
	if data == nil {
		return nil
	}

	sensors := make([]entity.SensorRef, 0, len(data.Sensors))
	for _, s := range data.Sensors {
		sensors = append(sensors, entity.SensorRef{SensorID: s.SensorID.Hex(), Type: entity.SensorType(s.Type)})
	}

	return &entity.House{
		ID:      data.ID.Hex(),
		Name:    data.Name,
		Address: data.Address,
		OwnerID: data.OwnerID.Hex(),
		Sensors: sensors,
	}
}

// fromHouseDomain maps a domain entity to a persistence model. The ID is ignored.
func fromHouseDomain(data *entity.House) (*model.HouseModel, error) {
	owner, err := parseID(data.OwnerID)
	if err != nil {
		return nil, err
	}

	sensors := make([]model.SensorRefModel, 0, len(data.Sensors))
	for _, s := range data.Sensors {
		sensorID, err := parseID(s.SensorID)
		if err != nil {
			return nil, err
		}
		sensors = append(sensors, model.SensorRefModel{SensorID: sensorID, Type: s.Type.String()})
	}

	return &model.HouseModel{
		Name:    data.Name,
		Address: data.Address,
		OwnerID: owner,
		Sensors: sensors,
	}, nil
}
