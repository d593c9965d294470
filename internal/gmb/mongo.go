package gmb

import (
	"context"
	"fmt"

	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements Repository against the gmb collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, e *Entry) (*Entry, error) {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return nil, models.WrapStore("insert gmb entry", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, models.WrapStore("insert gmb entry", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	var stored Entry
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&stored); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.WrapStore("insert gmb entry", fmt.Errorf("insert verification failed for %s", oid.Hex()))
		}
		return nil, models.WrapStore("read back gmb entry", err)
	}
	return &stored, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Entry, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, models.WrapStore("list gmb entries", err)
	}
	defer cur.Close(ctx)
	out := []Entry{}
	for cur.Next(ctx) {
		var e Entry
		if err := cur.Decode(&e); err != nil {
			return nil, models.WrapStore("decode gmb entry", err)
		}
		out = append(out, e)
	}
	if err := cur.Err(); err != nil {
		return nil, models.WrapStore("list gmb entries", err)
	}
	return out, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Entry, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	var e Entry
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: gmb entry %s", models.ErrNotFound, id)
		}
		return nil, models.WrapStore("get gmb entry", err)
	}
	return &e, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, upd Update) (*Entry, error) {
	oid, err := ids.Parse(id)
	if err != nil {
		return nil, err
	}
	if set := upd.set(); len(set) > 0 {
		res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, models.WrapStore("update gmb entry", err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("%w: gmb entry %s", models.ErrNotFound, id)
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
		return models.WrapStore("delete gmb entry", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: gmb entry %s", models.ErrNotFound, id)
	}
	return nil
}
