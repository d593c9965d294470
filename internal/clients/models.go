package clients

import (
	"github.com/seoatlas/seoatlas/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is the stored form of a client record. The workflow-tracking fields
// are nullable; out-of-band processes fill them in after creation. The store
// identifier never leaves the repository as an ObjectID; handlers expose its
// hex form under "id".
type Client struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name                     string             `bson:"name" json:"name" binding:"required"`
	Link                     models.URL         `bson:"link" json:"link" binding:"required"`
	AboutDescriptions        string             `bson:"about_descriptions" json:"about_descriptions" binding:"required"`
	Services                 string             `bson:"services" json:"services" binding:"required"`
	GoogleMyBusinessIDs      string             `bson:"google_my_business_ids" json:"google_my_business_ids" binding:"required"`
	ClientRelatedInformation string             `bson:"client_related_information" json:"client_related_information" binding:"required"`
	ToneForBlogs             string             `bson:"tone_for_blogs" json:"tone_for_blogs" binding:"required"`
	ToneForArticles          string             `bson:"tone_for_articles" json:"tone_for_articles" binding:"required"`

	Date                               *string `bson:"date" json:"date"`
	LastUpdateDate                     *string `bson:"last_update_date" json:"last_update_date"`
	AmazonAboutID                      *string `bson:"amazon_about_id" json:"amazon_about_id"`
	AmazonServicesID                   *string `bson:"amazon_services_id" json:"amazon_services_id"`
	AmazonGoogleMyBusinessDescriptions *string `bson:"amazon_google_my_business_descriptions" json:"amazon_google_my_business_descriptions"`
	AmazonGoogleMyBusinessID           *string `bson:"amazon_google_my_business_id" json:"amazon_google_my_business_id"`
	AmazonToneForBlogs                 *string `bson:"amazon_tone_for_blogs" json:"amazon_tone_for_blogs"`
	AmazonToneForArticles              *string `bson:"amazon_tone_for_articles" json:"amazon_tone_for_articles"`
	AmazonProjectID                    *string `bson:"amazon_project_id" json:"amazon_project_id"`
	Status                             *string `bson:"status" json:"status"`
	Errors                             *string `bson:"errors" json:"errors"`
}

// Update is the partial-update shape: only non-nil fields are written, every
// other stored field keeps its value.
type Update struct {
	Name                     *string     `json:"name"`
	Link                     *models.URL `json:"link"`
	AboutDescriptions        *string     `json:"about_descriptions"`
	Services                 *string     `json:"services"`
	GoogleMyBusinessIDs      *string     `json:"google_my_business_ids"`
	ClientRelatedInformation *string     `json:"client_related_information"`
	ToneForBlogs             *string     `json:"tone_for_blogs"`
	ToneForArticles          *string     `json:"tone_for_articles"`

	Date                               *string `json:"date"`
	LastUpdateDate                     *string `json:"last_update_date"`
	AmazonAboutID                      *string `json:"amazon_about_id"`
	AmazonServicesID                   *string `json:"amazon_services_id"`
	AmazonGoogleMyBusinessDescriptions *string `json:"amazon_google_my_business_descriptions"`
	AmazonGoogleMyBusinessID           *string `json:"amazon_google_my_business_id"`
	AmazonToneForBlogs                 *string `json:"amazon_tone_for_blogs"`
	AmazonToneForArticles              *string `json:"amazon_tone_for_articles"`
	AmazonProjectID                    *string `json:"amazon_project_id"`
	Status                             *string `json:"status"`
	Errors                             *string `json:"errors"`
}

// set builds the $set document for the Mongo repository. URL-typed fields
// marshal to their plain string form on the way in.
func (u *Update) set() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Link != nil {
		set["link"] = u.Link.String()
	}
	if u.AboutDescriptions != nil {
		set["about_descriptions"] = *u.AboutDescriptions
	}
	if u.Services != nil {
		set["services"] = *u.Services
	}
	if u.GoogleMyBusinessIDs != nil {
		set["google_my_business_ids"] = *u.GoogleMyBusinessIDs
	}
	if u.ClientRelatedInformation != nil {
		set["client_related_information"] = *u.ClientRelatedInformation
	}
	if u.ToneForBlogs != nil {
		set["tone_for_blogs"] = *u.ToneForBlogs
	}
	if u.ToneForArticles != nil {
		set["tone_for_articles"] = *u.ToneForArticles
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.LastUpdateDate != nil {
		set["last_update_date"] = *u.LastUpdateDate
	}
	if u.AmazonAboutID != nil {
		set["amazon_about_id"] = *u.AmazonAboutID
	}
	if u.AmazonServicesID != nil {
		set["amazon_services_id"] = *u.AmazonServicesID
	}
	if u.AmazonGoogleMyBusinessDescriptions != nil {
		set["amazon_google_my_business_descriptions"] = *u.AmazonGoogleMyBusinessDescriptions
	}
	if u.AmazonGoogleMyBusinessID != nil {
		set["amazon_google_my_business_id"] = *u.AmazonGoogleMyBusinessID
	}
	if u.AmazonToneForBlogs != nil {
		set["amazon_tone_for_blogs"] = *u.AmazonToneForBlogs
	}
	if u.AmazonToneForArticles != nil {
		set["amazon_tone_for_articles"] = *u.AmazonToneForArticles
	}
	if u.AmazonProjectID != nil {
		set["amazon_project_id"] = *u.AmazonProjectID
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Errors != nil {
		set["errors"] = *u.Errors
	}
	return set
}

// apply merges the update into c; the memory repository's counterpart of set.
func (u *Update) apply(c *Client) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Link != nil {
		c.Link = *u.Link
	}
	if u.AboutDescriptions != nil {
		c.AboutDescriptions = *u.AboutDescriptions
	}
	if u.Services != nil {
		c.Services = *u.Services
	}
	if u.GoogleMyBusinessIDs != nil {
		c.GoogleMyBusinessIDs = *u.GoogleMyBusinessIDs
	}
	if u.ClientRelatedInformation != nil {
		c.ClientRelatedInformation = *u.ClientRelatedInformation
	}
	if u.ToneForBlogs != nil {
		c.ToneForBlogs = *u.ToneForBlogs
	}
	if u.ToneForArticles != nil {
		c.ToneForArticles = *u.ToneForArticles
	}
	if u.Date != nil {
		c.Date = u.Date
	}
	if u.LastUpdateDate != nil {
		c.LastUpdateDate = u.LastUpdateDate
	}
	if u.AmazonAboutID != nil {
		c.AmazonAboutID = u.AmazonAboutID
	}
	if u.AmazonServicesID != nil {
		c.AmazonServicesID = u.AmazonServicesID
	}
	if u.AmazonGoogleMyBusinessDescriptions != nil {
		c.AmazonGoogleMyBusinessDescriptions = u.AmazonGoogleMyBusinessDescriptions
	}
	if u.AmazonGoogleMyBusinessID != nil {
		c.AmazonGoogleMyBusinessID = u.AmazonGoogleMyBusinessID
	}
	if u.AmazonToneForBlogs != nil {
		c.AmazonToneForBlogs = u.AmazonToneForBlogs
	}
	if u.AmazonToneForArticles != nil {
		c.AmazonToneForArticles = u.AmazonToneForArticles
	}
	if u.AmazonProjectID != nil {
		c.AmazonProjectID = u.AmazonProjectID
	}
	if u.Status != nil {
		c.Status = u.Status
	}
	if u.Errors != nil {
		c.Errors = u.Errors
	}
}
