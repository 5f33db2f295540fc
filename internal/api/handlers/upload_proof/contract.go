package upload_proof

import (
	"context"
	"io"
)

type MediaStorage interface {
	UploadProof(ctx context.Context, file io.Reader, filename string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
