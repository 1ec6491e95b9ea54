package drafts

import (
	"context"

	"careform-service/internal/app/contracts"
	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DraftMongoRepository struct {
	Collection *mongo.Collection
}

func NewDraftMongoRepository(db *mongo.Client, dbName string) contracts.DraftRepository {
	return &DraftMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFormDrafts),
	}
}

func (r *DraftMongoRepository) Upsert(ctx context.Context, draft *models.PatientDraft) error {
	filter := bson.M{"key": draft.Key}
	opts := options.Replace().SetUpsert(true)
	_, err := r.Collection.ReplaceOne(ctx, filter, draft, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}

func (r *DraftMongoRepository) FindByKey(ctx context.Context, key string) (*models.PatientDraft, error) {
	var draft models.PatientDraft
	err := r.Collection.FindOne(ctx, bson.M{"key": key}).Decode(&draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &draft, nil
}

func (r *DraftMongoRepository) DeleteByKey(ctx context.Context, key string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
