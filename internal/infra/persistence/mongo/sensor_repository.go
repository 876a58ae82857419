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

// sensorRepository routes each sensor type to its own collection.
type sensorRepository struct {
	collections map[entity.SensorType]*mongo.Collection
}

// NewSensorRepository builds the type-to-collection registry from the configured collection names.
func NewSensorRepository(db *mongo.Database, cfg *config.Config) repository.SensorRepository {
	collections := make(map[entity.SensorType]*mongo.Collection, len(entity.SensorTypes))
	for _, sensorType := range entity.SensorTypes {
		name := cfg.Mongo.Sensors[sensorType.String()]
		if name == "" {
			name = "Sensores_" + sensorType.String()
		}
		collections[sensorType] = db.Collection(name)
	}

	return &sensorRepository{collections: collections}
}

func (repo *sensorRepository) collection(sensorType entity.SensorType) (*mongo.Collection, error) {
	coll, ok := repo.collections[sensorType]
	if !ok {
		return nil, repository.ErrUnknownSensorType
	}

	return coll, nil
}

// Create inserts the sensor into the collection of its type and assigns its ID.
func (repo *sensorRepository) Create(ctx context.Context, sensor *entity.Sensor) error {
	coll, err := repo.collection(sensor.Type)
	if err != nil {
		return err
	}

	result, err := coll.InsertOne(ctx, fromSensorDomain(sensor))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sensor")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		sensor.ID = oid.Hex()
	}

	return nil
}

// FindByID looks the sensor up in the collection of sensorType.
func (repo *sensorRepository) FindByID(ctx context.Context, sensorType entity.SensorType, id string) (*entity.Sensor, error) {
	coll, err := repo.collection(sensorType)
	if err != nil {
		return nil, err
	}
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var sensorM model.SensorModel
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&sensorM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSensorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find sensor")
	}

	return toSensorDomain(&sensorM, sensorType), nil
}

// Delete removes a sensor. Deleting an absent sensor is not an error.
func (repo *sensorRepository) Delete(ctx context.Context, sensorType entity.SensorType, id string) error {
	coll, err := repo.collection(sensorType)
	if err != nil {
		return err
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete sensor")
	}

	return nil
}

// toSensorDomain maps a persistence model to a domain entity. The type comes
// from the collection the document was read from.
func toSensorDomain(data *model.SensorModel, sensorType entity.SensorType) *entity.Sensor {
	return &entity.Sensor{
		ID:            data.ID.Hex(),
		Name:          data.Name,
		Type:          sensorType,
		Location:      data.Location,
		State:         data.State,
		LastReadingAt: data.LastReadingAt,
		Readings:      data.Readings,
	}
}

func fromSensorDomain(data *entity.Sensor) *model.SensorModel {
	return &model.SensorModel{
		Name:          data.Name,
		Type:          data.Type.String(),
		Location:      data.Location,
		State:         data.State,
		LastReadingAt: data.LastReadingAt,
		Readings:      data.Readings,
	}
}
