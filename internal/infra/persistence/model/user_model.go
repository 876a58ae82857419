// Package model holds the BSON documents stored in the Hogar database.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserModel mirrors a document of the users collection. The email is stored lowercased.
type UserModel struct {
	ID           bson.ObjectID       `bson:"_id,omitempty"`
	Name         string              `bson:"nombre"`
	Email        string              `bson:"correo"`
	PasswordHash string              `bson:"contraseña"`
	Role         string              `bson:"rol"`
	Status       string              `bson:"estado,omitempty"`
	CreatedAt    time.Time           `bson:"fecha_creacion"`
	Houses       []HouseSummaryModel `bson:"casas"`
}

// HouseSummaryModel is the {id, nombre} pair pushed into UserModel.Houses.
// The id is kept as its hex string.
type HouseSummaryModel struct {
	ID   string `bson:"id"`
	Name string `bson:"nombre"`
}
