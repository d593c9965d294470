package projects

import (
	"context"
	"fmt"

	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements Repository against the projects collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, p *Project) (*Project, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, models.WrapStore("insert project", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, models.WrapStore("insert project", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	var stored Project
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&stored); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.WrapStore("insert project", fmt.Errorf("insert verification failed for %s", oid.Hex()))
		}
		return nil, models.WrapStore("read back project", err)
	}
	return &stored, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Project, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, models.WrapStore("list projects", err)
	}
	defer cur.Close(ctx)
	out := []Project{}
	for cur.Next(ctx) {
		var p Project
		if err := cur.Decode(&p); err != nil {
			return nil, models.WrapStore("decode project", err)
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, models.WrapStore("list projects", err)
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Project, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	var p Project
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, id)
		}
		return nil, models.WrapStore("get project", err)
	}
	return &p, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, upd Update) (*Project, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	if set := upd.set(); len(set) > 0 {
		res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, models.WrapStore("update project", err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, id)
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
		return models.WrapStore("delete project", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: project %s", models.ErrNotFound, id)
	}
	return nil
}
