package mediastorage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client sube comprobantes de pago a Cloudinary y devuelve la URL pública.
// La URL se guarda como texto plano en la cita; el servicio no procesa pagos.
type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    Logger
}

// NewClient crea un cliente de almacenamiento de comprobantes
func NewClient(cloudName, apiKey, apiSecret, folder string, log Logger) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("mediastorage: failed to initialize cloudinary: %w", err)
	}
	return &Client{
		cld:    cld,
		folder: folder,
		log:    log,
	}, nil
}

// UploadProof sube un comprobante y devuelve su URL pública
func (c *Client) UploadProof(ctx context.Context, file io.Reader, filename string) (string, error) {
	if file == nil {
		return "", ErrInvalidFile
	}

	publicID := fmt.Sprintf("comprobante_%s_%s", time.Now().Format("20060102"), uuid.NewString())

	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   c.folder,
		PublicID: publicID,
	})
	if err != nil {
		c.log.Error("UploadProof: upload failed for file %q: %v", filename, err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("%w: empty URL in upload response", ErrUploadFailed)
	}

	c.log.Info("UploadProof: uploaded %q as %s", filename, result.PublicID)
	return url, nil
}
