package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/gameroom/backoffice/internal/core/port"
)

// Uploader stores product images in Cloudinary and returns the delivery URL.
type Uploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewUploader(cloudinaryURL, folder string) (port.UploaderPort, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &Uploader{
		client: client,
		folder: folder,
	}, nil
}

func (u *Uploader) Upload(ctx context.Context, name string, file io.Reader) (string, error) {
	result, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       name,
		Folder:         u.folder,
		Transformation: "c_limit,w_1000,h_1000,q_auto:good",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return result.SecureURL, nil
}
