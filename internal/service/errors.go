package service

import (
	"errors"
	"fmt"

	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/errs"
	"fitbuddy/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// classify turns a repository error into an errs.Error. ErrNotFound becomes
// NotFound with notFound as message; anything else is Internal.
func classify(err error, notFound, internal string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.New(errs.NotFound, notFound)
	}
	return errs.Wrap(errs.Internal, internal, err)
}

// cleanAttributes drops identifier keys and rejects keys the store would
// treat as operators or paths.
func cleanAttributes(attrs domain.Attributes) (domain.Attributes, error) {
	clean, err := attrs.Clean()
	if err != nil {
		var fields []errs.FieldError
		for k := range attrs {
			if !domain.IsReserved(k) && !domain.ValidKey(k) {
				fields = append(fields, errs.FieldError{Field: k, Error: "is not an allowed attribute name"})
			}
		}
		return nil, errs.Validation("Validation failed", fields...)
	}
	return clean, nil
}

// parseObjectIDs converts hex identifiers that have already passed
// validation.
func parseObjectIDs(field string, hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for i, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, errs.Validation("Validation failed", errs.FieldError{
				Field: fmt.Sprintf("%s[%d]", field, i),
				Error: "must be a valid identifier",
			})
		}
		ids = append(ids, id)
	}
	return ids, nil
}
