package websites

import (
	"context"
	"fmt"

	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/models"
	"github.com/seoatlas/seoatlas/pkg/logger"
	"github.com/seoatlas/seoatlas/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements Repository against the websites collection.
type MongoRepository struct {
	col           *mongo.Collection
	projects      *mongo.Collection
	cascadeStrict bool
}

func NewMongoRepository(col, projects *mongo.Collection, cascadeStrict bool) *MongoRepository {
	return &MongoRepository{col: col, projects: projects, cascadeStrict: cascadeStrict}
}

func (r *MongoRepository) Create(ctx context.Context, w *Website) (*Website, error) {
	res, err := r.col.InsertOne(ctx, w)
	if err != nil {
		return nil, models.WrapStore("insert website", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, models.WrapStore("insert website", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	var stored Website
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&stored); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.WrapStore("insert website", fmt.Errorf("insert verification failed for %s", oid.Hex()))
		}
		return nil, models.WrapStore("read back website", err)
	}
	return &stored, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Website, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, models.WrapStore("list websites", err)
	}
	defer cur.Close(ctx)
	out := []Website{}
	for cur.Next(ctx) {
		var w Website
		if err := cur.Decode(&w); err != nil {
			return nil, models.WrapStore("decode website", err)
		}
		out = append(out, w)
	}
	if err := cur.Err(); err != nil {
		return nil, models.WrapStore("list websites", err)
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Website, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	var w Website
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&w); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: website %s", models.ErrNotFound, id)
		}
		return nil, models.WrapStore("get website", err)
	}
	return &w, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, upd Update) (*Website, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	if set := upd.set(); len(set) > 0 {
		res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, models.WrapStore("update website", err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("%w: website %s", models.ErrNotFound, id)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := ids.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.WrapStore("delete website", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: website %s", models.ErrNotFound, id)
	}
	dep, err := r.projects.DeleteMany(ctx, bson.M{"website_id": id})
	if err != nil {
		if r.cascadeStrict {
			return models.WrapStore("cascade delete projects", err)
		}
		logger.Warnf("website %s deleted but project cascade failed: %v", id, err)
		return nil
	}
	metrics.CascadeDeleted.WithLabelValues("website", "project").Add(float64(dep.DeletedCount))
	return nil
}
