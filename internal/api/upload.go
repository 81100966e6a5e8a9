package api

import (
	"os"
	"path/filepath"

	"fitbuddy/backend/internal/errs"
	"fitbuddy/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUploadKey holds the *storage.UploadedObject of a successful upload.
	ContextUploadKey = "uploadedObject"
	// ProfileImageField is the multipart field carrying the profile image.
	ProfileImageField = "imageProfile"
)

// UploadProfileImage stages the multipart imageProfile file in stagingDir,
// sends it to the media host and exposes the result to the next handler.
// The staged file is removed whatever the outcome.
func UploadProfileImage(media storage.MediaHost, stagingDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile(ProfileImageField)
		if err != nil {
			abortWithError(c, errs.Wrap(errs.BadRequest, "No file uploaded", err))
			return
		}

		if err := os.MkdirAll(stagingDir, 0o755); err != nil {
			abortWithError(c, errs.Wrap(errs.Internal, "failed to prepare staging directory", err))
			return
		}
		staged := filepath.Join(stagingDir, uuid.NewString()+filepath.Ext(fileHeader.Filename))
		defer func() {
			if err := os.Remove(staged); err != nil && !os.IsNotExist(err) {
				log := GetLogger(c)
				log.Warn().Err(err).Str("path", staged).Msg("failed to remove staged upload")
			}
		}()

		if err := c.SaveUploadedFile(fileHeader, staged); err != nil {
			abortWithError(c, errs.Wrap(errs.Internal, "failed to stage upload", err))
			return
		}

		object, err := media.Upload(c.Request.Context(), staged)
		if err != nil {
			abortWithError(c, errs.Wrap(errs.UploadFailure, "Error uploading image", err))
			return
		}

		c.Set(ContextUploadKey, object)
		c.Next()
	}
}

// uploadedObject returns the object stored by UploadProfileImage, if any.
func uploadedObject(c *gin.Context) *storage.UploadedObject {
	v, ok := c.Get(ContextUploadKey)
	if !ok {
		return nil
	}
	object, _ := v.(*storage.UploadedObject)
	return object
}
