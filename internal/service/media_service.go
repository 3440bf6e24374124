package service

import (
	"context"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/storage"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MediaUploadInput asks for a presigned URL for one exercise image or video.
type MediaUploadInput struct {
	Kind        domain.MediaKind `json:"kind" validate:"required,oneof=image video"`
	ContentType string           `json:"contentType" validate:"required"`
}

// --- Service Interface ---
type MediaService interface {
	RequestUploadURL(ctx context.Context, uploaderID string, input MediaUploadInput) (*domain.MediaUpload, error)
}

// --- Service Implementation ---

type mediaService struct {
	fileStorage storage.FileStorage
	expiry      time.Duration
	log         logrus.FieldLogger
}

// NewMediaService creates a new instance of mediaService. A nil fileStorage disables
// uploads.
func NewMediaService(fileStorage storage.FileStorage, expiry time.Duration, log logrus.FieldLogger) MediaService {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return &mediaService{
		fileStorage: fileStorage,
		expiry:      expiry,
		log:         log,
	}
}

// RequestUploadURL generates a pre-signed URL for a client to upload exercise media.
func (s *mediaService) RequestUploadURL(ctx context.Context, uploaderID string, input MediaUploadInput) (*domain.MediaUpload, error) {
	if s.fileStorage == nil {
		return nil, ErrMediaUploadDisabled
	}

	input.ContentType = strings.TrimSpace(input.ContentType)
	if verr := validateStruct(input); verr != nil {
		return nil, verr
	}
	if !input.Kind.Accepts(input.ContentType) {
		return nil, invalid("contentType", fmt.Sprintf(`"contentType" must be an %s/* type`, input.Kind))
	}

	// exercises/<kind>s/<uploader>/<uuid>.<ext>
	fileExtension := "bin"
	if parts := strings.SplitN(input.ContentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		fileExtension = strings.SplitN(parts[1], ";", 2)[0]
	}
	objectKey := path.Join("exercises", string(input.Kind)+"s", uploaderID, fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, input.ContentType, s.expiry)
	if err != nil {
		s.log.WithError(err).WithField("object_key", objectKey).Error("Failed to presign exercise media upload")
		return nil, ErrUploadURLError
	}

	return &domain.MediaUpload{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		PublicURL: s.fileStorage.PublicURL(objectKey),
	}, nil
}
