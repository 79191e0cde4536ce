package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
)

// MongoProductRepository stores products as documents, the way the
// storefront's original backend did. IDs stay store-assigned UUID
// strings so the model is identical across stores.
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{coll: coll}
}

func (r *MongoProductRepository) Create(p models.Product) (models.Product, error) {
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}

	p.ID = uuid.New().String()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) GetAll(offset, limit int) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(bson.M{}, opts)
}

func (r *MongoProductRepository) GetByID(id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *MongoProductRepository) GetAllExcept(id string) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	return r.find(bson.M{"_id": bson.M{"$ne": id}}, opts)
}

func (r *MongoProductRepository) Update(p models.Product) (models.Product, error) {
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}
	p.UpdatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return models.Product{}, err
	}
	if res.MatchedCount == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *MongoProductRepository) Delete(id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *MongoProductRepository) find(filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
