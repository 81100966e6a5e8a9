package api

import (
	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/errs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathID parses the :id path parameter. A malformed id cannot name any
// document, so it is reported as notFound.
func pathID(c *gin.Context, notFound string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, errs.New(errs.NotFound, notFound))
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindAttributes decodes a JSON object body into free-form attributes.
func bindAttributes(c *gin.Context) (domain.Attributes, bool) {
	var attrs domain.Attributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		abortWithError(c, errs.Wrap(errs.ValidationFailure, "Invalid request body", err))
		return nil, false
	}
	if attrs == nil {
		attrs = domain.Attributes{}
	}
	return attrs, true
}

// bindJSON decodes a JSON body into a typed request.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, errs.Wrap(errs.ValidationFailure, "Invalid request body", err))
		return false
	}
	return true
}

// formAttributes turns multipart text fields into attributes. Repeated
// fields become lists.
func formAttributes(c *gin.Context) domain.Attributes {
	attrs := domain.Attributes{}
	if c.Request.MultipartForm == nil {
		return attrs
	}
	for k, values := range c.Request.MultipartForm.Value {
		switch len(values) {
		case 0:
		case 1:
			attrs[k] = values[0]
		default:
			list := make([]interface{}, len(values))
			for i, v := range values {
				list[i] = v
			}
			attrs[k] = list
		}
	}
	return attrs
}
