package websites

import (
	"github.com/seoatlas/seoatlas/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Website is the stored form of a website record. The domain is persisted as
// its plain string form; the URL type only lives at the boundary.
type Website struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Domain models.URL         `bson:"domain" json:"domain" binding:"required"`

	Date           *string `bson:"date" json:"date"`
	LastUpdateDate *string `bson:"last_update_date" json:"last_update_date"`
	Status         *string `bson:"status" json:"status"`
}

// Update is the partial-update shape: only non-nil fields are written.
type Update struct {
	Domain         *models.URL `json:"domain"`
	Date           *string     `json:"date"`
	LastUpdateDate *string     `json:"last_update_date"`
	Status         *string     `json:"status"`
}

func (u *Update) set() bson.M {
	set := bson.M{}
	if u.Domain != nil {
		set["domain"] = u.Domain.String()
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.LastUpdateDate != nil {
		set["last_update_date"] = *u.LastUpdateDate
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	return set
}

func (u *Update) apply(w *Website) {
	if u.Domain != nil {
		w.Domain = *u.Domain
	}
	if u.Date != nil {
		w.Date = u.Date
	}
	if u.LastUpdateDate != nil {
		w.LastUpdateDate = u.LastUpdateDate
	}
	if u.Status != nil {
		w.Status = u.Status
	}
}
