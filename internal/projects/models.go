package projects

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is the stored form of a project record. ClientID and WebsiteID are
// opaque hex-string references; nothing checks that the referenced record
// exists at create/update time. Referential cleanup only happens when the
// parent is deleted.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	ClientID    string             `bson:"client_id" json:"client_id" binding:"required"`
	ProjectType string             `bson:"project_type" json:"project_type" binding:"required"`
	Focus       string             `bson:"focus" json:"focus"`
	About       string             `bson:"about" json:"about"`
	Length      int                `bson:"length" json:"length"`
	Keywords    []string           `bson:"keywords" json:"keywords"`
	WebsiteID   *string            `bson:"website_id" json:"website_id"`

	Date           *string `bson:"date" json:"date"`
	LastUpdateDate *string `bson:"last_update_date" json:"last_update_date"`
	Status         *string `bson:"status" json:"status"`
}

// Update is the partial-update shape: only non-nil fields are written.
type Update struct {
	Name        *string   `json:"name"`
	ClientID    *string   `json:"client_id"`
	ProjectType *string   `json:"project_type"`
	Focus       *string   `json:"focus"`
	About       *string   `json:"about"`
	Length      *int      `json:"length"`
	Keywords    *[]string `json:"keywords"`
	WebsiteID   *string   `json:"website_id"`

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
	if u.ProjectType != nil {
		set["project_type"] = *u.ProjectType
	}
	if u.Focus != nil {
		set["focus"] = *u.Focus
	}
	if u.About != nil {
		set["about"] = *u.About
	}
	if u.Length != nil {
		set["length"] = *u.Length
	}
	if u.Keywords != nil {
		set["keywords"] = *u.Keywords
	}
	if u.WebsiteID != nil {
		set["website_id"] = *u.WebsiteID
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

func (u *Update) apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.ClientID != nil {
		p.ClientID = *u.ClientID
	}
	if u.ProjectType != nil {
		p.ProjectType = *u.ProjectType
	}
	if u.Focus != nil {
		p.Focus = *u.Focus
	}
	if u.About != nil {
		p.About = *u.About
	}
	if u.Length != nil {
		p.Length = *u.Length
	}
	if u.Keywords != nil {
		p.Keywords = *u.Keywords
	}
	if u.WebsiteID != nil {
		p.WebsiteID = u.WebsiteID
	}
	if u.Date != nil {
		p.Date = u.Date
	}
	if u.LastUpdateDate != nil {
		p.LastUpdateDate = u.LastUpdateDate
	}
	if u.Status != nil {
		p.Status = u.Status
	}
}
