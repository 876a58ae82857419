package mongo

import (
	"context"
	"regexp"

	"homesec/config"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/errors"
	"homesec/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// userRepository implements the repository.UserRepository interface on the users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(cfg.Mongo.Collections.Users),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// FindByEmail retrieves a single user by email. Legacy mixed-case documents
// still match through the case-insensitive collation.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"correo": entity.NormalizeEmail(email)}, "failed to find user by email",
		options.FindOne().SetCollation(emailCollation))
}

func (repo *userRepository) findOne(
	ctx context.Context,
	filter bson.M,
	msg string,
	opts ...options.Lister[options.FindOneOptions],
) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter, opts...).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, msg)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The email is stored lowercased and a duplicate,
// ignoring case, yields repository.ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.ID = bson.NilObjectID
	if userM.Houses == nil {
		userM.Houses = []model.HouseSummaryModel{}
	}

	result, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.Email = userM.Email

	return nil
}

// ListByRole returns every user with the given role.
func (repo *userRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	return repo.find(ctx, bson.M{"rol": role.String()}, "failed to list users")
}

// Search matches term against name and email without regard to case.
// The term is quoted so it is matched literally.
func (repo *userRepository) Search(ctx context.Context, role entity.Role, term string) ([]*entity.User, error) {
	pattern := bson.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{
		"rol": role.String(),
		"$or": bson.A{
			bson.M{"nombre": pattern},
			bson.M{"correo": pattern},
		},
	}

	return repo.find(ctx, filter, "failed to search users")
}

// listProjection keeps password hashes out of listings.
var listProjection = bson.M{"contraseña": 0}

func (repo *userRepository) find(ctx context.Context, filter bson.M, msg string) ([]*entity.User, error) {
	opts := options.Find().
		SetProjection(listProjection).
		SetSort(bson.D{{Key: "nombre", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, msg)
	}

	var usersM []model.UserModel
	if err := cursor.All(ctx, &usersM); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, msg)
	}

	users := make([]*entity.User, 0, len(usersM))
	for i := range usersM {
		users = append(users, toUserDomain(&usersM[i]))
	}

	return users, nil
}

// UpdatePassword overwrites the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return repo.updateOne(ctx, oid, bson.M{"$set": bson.M{"contraseña": passwordHash}}, "failed to update password")
}

// PushHouse appends a house summary to the user's house index.
func (repo *userRepository) PushHouse(ctx context.Context, id string, house entity.HouseSummary) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	update := bson.M{"$push": bson.M{"casas": model.HouseSummaryModel{ID: house.ID, Name: house.Name}}}

	return repo.updateOne(ctx, oid, update, "failed to push house")
}

func (repo *userRepository) updateOne(ctx context.Context, oid bson.ObjectID, update bson.M, msg string) error {
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain maps a persistence model to a domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	houses := make([]entity.HouseSummary, 0, len(data.Houses))
	for _, h := range data.Houses {
		houses = append(houses, entity.HouseSummary{ID: h.ID, Name: h.Name})
	}

	return &entity.User{
		ID:           data.ID.Hex(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Status:       entity.UserStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		Houses:       houses,
	}
}

// fromUserDomain maps a domain entity to a persistence model. The ID is ignored.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var houses []model.HouseSummaryModel
	for _, h := range data.Houses {
		houses = append(houses, model.HouseSummaryModel{ID: h.ID, Name: h.Name})
	}

	return &model.UserModel{
		Name:         data.Name,
		Email:        entity.NormalizeEmail(data.Email),
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		Houses:       houses,
	}
}
