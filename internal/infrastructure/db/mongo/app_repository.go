package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fancyapps/users-service/internal/core/domain"
	"github.com/fancyapps/users-service/internal/core/ports"
)

const appCollection = "applications"

// MongoAppRepository persists the applications catalog.
type MongoAppRepository struct {
	coll *mongo.Collection
}

func NewAppRepository(db *mongo.Database) *MongoAppRepository {
	return &MongoAppRepository{coll: db.Collection(appCollection)}
}

type mongoApp struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	URL         string             `bson:"url"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (ma *mongoApp) toDomain() *domain.Application {
	return &domain.Application{
		ID:          ma.ID.Hex(),
		Name:        ma.Name,
		Description: ma.Description,
		URL:         ma.URL,
		CreatedAt:   unixToTime(ma.CreatedAt),
		UpdatedAt:   unixToTime(ma.UpdatedAt),
	}
}

func (r *MongoAppRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	now := time.Now().UTC()
	doc := mongoApp{
		Name:        app.Name,
		Description: app.Description,
		URL:         app.URL,
		CreatedAt:   now.Unix(),
		UpdatedAt:   now.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.NewStorageError("insert application", err)
	}

	created := *app
	created.CreatedAt = now
	created.UpdatedAt = now
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoAppRepository) FindAll(ctx context.Context) ([]domain.Application, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.NewStorageError("list applications", err)
	}
	defer cur.Close(ctx)

	var apps []domain.Application
	for cur.Next(ctx) {
		var ma mongoApp
		if err := cur.Decode(&ma); err != nil {
			return nil, domain.NewStorageError("decode application", err)
		}
		apps = append(apps, *ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, domain.NewStorageError("iterate applications", err)
	}
	return apps, nil
}

func (r *MongoAppRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppNotFound
	}

	var ma mongoApp
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppNotFound
		}
		return nil, domain.NewStorageError("find application", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAppRepository) Update(ctx context.Context, id string, patch ports.AppPatch) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}

	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var ma mongoApp
	if err := res.Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppNotFound
		}
		return nil, domain.NewStorageError("update application", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAppRepository) Delete(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppNotFound
	}

	var ma mongoApp
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppNotFound
		}
		return nil, domain.NewStorageError("delete application", err)
	}
	return ma.toDomain(), nil
}
