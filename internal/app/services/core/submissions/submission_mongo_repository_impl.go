package submissions

import (
	"context"

	"forms-service/internal/app/contracts"
	"forms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionMongoRepository struct {
	Database *mongo.Database
}

func NewSubmissionMongoRepository(db *mongo.Client, dbName string) contracts.SubmissionRepository {
	return &SubmissionMongoRepository{
		Database: db.Database(dbName),
	}
}

func (repo *SubmissionMongoRepository) Insert(ctx context.Context, collection string, record map[string]interface{}) error {
	_, err := repo.Database.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *SubmissionMongoRepository) FindAll(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	// The store-assigned identifier never leaves the repository.
	findOptions := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := repo.Database.Collection(collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	records := make([]map[string]interface{}, 0)
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
