package model

import "go.mongodb.org/mongo-driver/v2/bson"

// HouseModel mirrors a document of the houses collection.
type HouseModel struct {
	ID      bson.ObjectID    `bson:"_id,omitempty"`
	Name    string           `bson:"nombre"`
	Address string           `bson:"direccion"`
	OwnerID bson.ObjectID    `bson:"usuario_id"`
	Sensors []SensorRefModel `bson:"sensores"`
}

// SensorRefModel points to a sensor document in the collection named by its type.
type SensorRefModel struct {
	SensorID bson.ObjectID `bson:"sensor_obj_id"`
	Type     string        `bson:"sensor_tipo"`
}
