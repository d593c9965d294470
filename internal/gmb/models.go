package gmb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is the stored form of a Google-My-Business listing entry. It belongs
// to a client by convention only: deleting the client does not remove its
// gmb entries.
type Entry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name     string             `bson:"name" json:"name" binding:"required"`
	ClientID string             `bson:"client_id" json:"client_id" binding:"required"`

	Date           *string `bson:"date" json:"date"`
	LastUpdateDate *string `bson:"last_update_date" json:"last_update_date"`
	Status         *string `bson:"status" json:"status"`
}

// Update is the partial-update shape: only non-nil fields are written.
type Update struct {
	Name           *string `json:"name"`
	ClientID       *string `json:"client_id"`
	Date           *string `json:"date"`
	LastUpdateDate *string `json:"last_update_date"`
	Status         *string `json:"status"`
}

func (u *Update) set() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.ClientID != nil {
		set["client_id"] = *u.ClientID
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

func (u *Update) apply(e *Entry) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.ClientID != nil {
		e.ClientID = *u.ClientID
	}
	if u.Date != nil {
		e.Date = u.Date
	}
	if u.LastUpdateDate != nil {
		e.LastUpdateDate = u.LastUpdateDate
	}
	if u.Status != nil {
		e.Status = u.Status
	}
}
