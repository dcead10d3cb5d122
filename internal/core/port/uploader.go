package port

import (
	"context"
	"io"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// UploaderPort stores product images on an external asset host and returns
// the public URL.
type UploaderPort interface {
	Upload(ctx context.Context, name string, content io.Reader) (string, error)
}
