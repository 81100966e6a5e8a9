package mongo

import (
	"fitbuddy/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// versionKey is written by older clients of the same collections and is
// not part of any document's attributes.
const versionKey = "__v"

// attributesDocument builds the stored form of a free-form document.
func attributesDocument(id primitive.ObjectID, attrs domain.Attributes) bson.M {
	doc := bson.M{"_id": id}
	for k, v := range attrs {
		if domain.IsReserved(k) {
			continue
		}
		doc[k] = v
	}
	return doc
}

// splitDocument separates the identifier from the attributes of a stored
// free-form document.
func splitDocument(doc bson.M) (primitive.ObjectID, domain.Attributes) {
	id, _ := doc["_id"].(primitive.ObjectID)
	attrs := make(domain.Attributes, len(doc))
	for k, v := range doc {
		if k == "_id" || k == versionKey {
			continue
		}
		attrs[k] = v
	}
	return id, attrs
}

func exerciseFromDocument(doc bson.M) domain.Exercise {
	id, attrs := splitDocument(doc)
	return domain.Exercise{ID: id, Attributes: attrs}
}

func userFromDocument(doc bson.M) domain.User {
	id, attrs := splitDocument(doc)
	user := domain.User{ID: id, Attributes: attrs}
	if v, ok := attrs[domain.ImageProfileKey]; ok {
		delete(attrs, domain.ImageProfileKey)
		if url, ok := v.(string); ok && url != "" {
			user.ImageProfile = &url
		}
	}
	return user
}

func userDocument(user *domain.User) bson.M {
	doc := attributesDocument(user.ID, user.Attributes)
	delete(doc, domain.ImageProfileKey)
	if user.ImageProfile != nil {
		doc[domain.ImageProfileKey] = *user.ImageProfile
	}
	return doc
}
