package mongo

import (
	"homesec/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// parseID converts an opaque entity ID to an ObjectID.
func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, repository.ErrInvalidID
	}

	return oid, nil
}
