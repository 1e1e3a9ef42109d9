package request

import (
	"fmt"
	"time"

	"supportal/internal/shared/biztime"
)

// Image records an uploaded attachment on a support request. Created at
// submission time and immutable thereafter.
type Image struct {
	id         uint
	requestID  uint
	imageURL   string
	filename   string
	size       int64
	uploadedAt time.Time
}

func NewImage(requestID uint, imageURL, filename string, size int64) (*Image, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if len(imageURL) == 0 {
		return nil, fmt.Errorf("image URL is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive")
	}

	return &Image{
		requestID:  requestID,
		imageURL:   imageURL,
		filename:   filename,
		size:       size,
		uploadedAt: biztime.NowUTC(),
	}, nil
}

func ReconstructImage(
	id uint,
	requestID uint,
	imageURL, filename string,
	size int64,
	uploadedAt time.Time,
) (*Image, error) {
	if id == 0 {
		return nil, fmt.Errorf("image ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}

	return &Image{
		id:         id,
		requestID:  requestID,
		imageURL:   imageURL,
		filename:   filename,
		size:       size,
		uploadedAt: uploadedAt,
	}, nil
}

func (i *Image) ID() uint {
	return i.id
}

func (i *Image) RequestID() uint {
	return i.requestID
}

func (i *Image) ImageURL() string {
	return i.imageURL
}

func (i *Image) Filename() string {
	return i.filename
}

func (i *Image) Size() int64 {
	return i.size
}

func (i *Image) UploadedAt() time.Time {
	return i.uploadedAt
}

func (i *Image) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("image ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("image ID cannot be zero")
	}
	i.id = id
	return nil
}
