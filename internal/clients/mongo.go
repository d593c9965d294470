package clients

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

// MongoRepository implements Repository against the clients collection.
// The projects collection is held for the delete cascade only.
type MongoRepository struct {
	col           *mongo.Collection
	projects      *mongo.Collection
	cascadeStrict bool
}

func NewMongoRepository(col, projects *mongo.Collection, cascadeStrict bool) *MongoRepository {
	return &MongoRepository{col: col, projects: projects, cascadeStrict: cascadeStrict}
}

func (r *MongoRepository) Create(ctx context.Context, c *Client) (*Client, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return nil, models.WrapStore("insert client", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, models.WrapStore("insert client", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	// Re-read what the store persisted; a miss here signals a consistency
	// problem, not caller error.
	var stored Client
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&stored); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.WrapStore("insert client", fmt.Errorf("insert verification failed for %s", oid.Hex()))
		}
		return nil, models.WrapStore("read back client", err)
	}
	return &stored, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Client, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, models.WrapStore("list clients", err)
	}
	defer cur.Close(ctx)
	out := []Client{}
	for cur.Next(ctx) {
		var c Client
		if err := cur.Decode(&c); err != nil {
			return nil, models.WrapStore("decode client", err)
		}
		out = append(out, c)
	}
	if err := cur.Err(); err != nil {
		return nil, models.WrapStore("list clients", err)
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Client, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	var c Client
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
		}
		return nil, models.WrapStore("get client", err)
	}
	return &c, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, upd Update) (*Client, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	if set := upd.set(); len(set) > 0 {
		res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, models.WrapStore("update client", err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
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
		return models.WrapStore("delete client", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	// Best-effort cascade; the primary delete above is already committed.
	// Projects store the parent reference as the hex string form.
	dep, err := r.projects.DeleteMany(ctx, bson.M{"client_id": id})
	if err != nil {
		if r.cascadeStrict {
			return models.WrapStore("cascade delete projects", err)
		}
		logger.Warnf("client %s deleted but project cascade failed: %v", id, err)
		return nil
	}
	metrics.CascadeDeleted.WithLabelValues("client", "project").Add(float64(dep.DeletedCount))
	return nil
}
