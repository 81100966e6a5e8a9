package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageProfileKey is the attribute holding the profile image URL.
const ImageProfileKey = "imageProfile"

// User is a free-form document with an optional profile image hosted on
// the media store.
type User struct {
	ID           primitive.ObjectID
	Attributes   Attributes
	ImageProfile *string // Public URL on the media host, nil if none
}

// MarshalJSON flattens attributes and always emits imageProfile, null when
// the user has no image.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Attributes)+2)
	for k, v := range u.Attributes {
		out[k] = v
	}
	out["id"] = u.ID.Hex()
	out[ImageProfileKey] = u.ImageProfile
	return json.Marshal(out)
}
