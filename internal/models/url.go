package models

import (
	"encoding/json"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// URL is an http(s) URL that travels as its plain string form in both JSON
// and BSON. Documents in the store only ever contain the string.
type URL struct {
	url.URL
}

// ParseURL validates and parses an absolute http(s) URL.
func ParseURL(s string) (URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return URL{}, fmt.Errorf("%w: not an absolute http(s) URL: %q", ErrInvalidInput, s)
	}
	return URL{URL: *u}, nil
}

func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.URL.String())
}

func (u *URL) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseURL(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u URL) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(u.URL.String())
}

func (u *URL) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return err
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("stored URL %q: %v", s, err)
	}
	// Stored values are strings; re-impose the type on the way out without
	// re-running boundary validation (old documents stay readable).
	u.URL = *parsed
	return nil
}
