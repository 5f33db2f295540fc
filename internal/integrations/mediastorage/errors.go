package mediastorage

import "errors"

var (
	// ErrUploadFailed se devuelve cuando el host de medios rechaza la subida
	ErrUploadFailed = errors.New("mediastorage client: upload failed")

	// ErrInvalidFile se devuelve cuando el archivo recibido no es válido
	ErrInvalidFile = errors.New("mediastorage client: invalid file")
)
