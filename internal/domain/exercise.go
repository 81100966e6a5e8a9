// internal/domain/exercise.go
package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a free-form document in the exercise library. Only the
// identifier is fixed; every other key is carried in Attributes.
type Exercise struct {
	ID         primitive.ObjectID
	Attributes Attributes
}

// MarshalJSON flattens the attributes next to the identifier:
// {"id": "...", "name": "Squat", ...}.
func (e Exercise) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		out[k] = v
	}
	out["id"] = e.ID.Hex()
	return json.Marshal(out)
}
