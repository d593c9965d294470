// Package ids converts between MongoDB ObjectIDs and the hex string form
// exposed at the API boundary. Every by-id repository operation validates
// through Parse before touching the store.
package ids

import (
	"fmt"

	"github.com/seoatlas/seoatlas/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parse validates the 24-hex-character ObjectID form. A malformed string
// fails here, before any store lookup is attempted.
func Parse(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidID, s)
	}
	return oid, nil
}

// Hex returns the canonical external string form of a store identifier.
func Hex(id primitive.ObjectID) string {
	return id.Hex()
}
