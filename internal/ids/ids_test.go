package ids

import (
	"testing"

	"github.com/seoatlas/seoatlas/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	parsed, err := Parse(Hex(oid))
	require.NoError(t, err)
	require.Equal(t, oid, parsed)
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"not-a-valid-id",
		"123",
		"zzzzzzzzzzzzzzzzzzzzzzzz",                // right length, not hex
		"507f1f77bcf86cd79943901",                 // 23 chars
		"507f1f77bcf86cd7994390111",               // 25 chars
	} {
		_, err := Parse(s)
		require.ErrorIs(t, err, models.ErrInvalidID, "input %q", s)
	}
}
