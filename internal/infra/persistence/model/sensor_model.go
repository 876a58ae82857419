package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SensorModel mirrors a document of any per-type sensor collection.
type SensorModel struct {
	ID            bson.ObjectID  `bson:"_id,omitempty"`
	Name          string         `bson:"nombre"`
	Type          string         `bson:"tipo"`
	Location      string         `bson:"ubicacion"`
	State         string         `bson:"estado"`
	LastReadingAt time.Time      `bson:"ultima_actualizacion"`
	Readings      map[string]any `bson:"lecturas,omitempty"`
}
