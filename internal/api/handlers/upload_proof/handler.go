package upload_proof

import (
	"errors"
	"net/http"

	"github.com/vibracionalta/VA-AgendaService/internal/api/handlers"
	"github.com/vibracionalta/VA-AgendaService/internal/integrations/mediastorage"
)

const (
	// maxUploadBytes límite del comprobante subido
	maxUploadBytes = 10 << 20

	formFieldName = "comprobante"

	msgMissingFile   = "falta el archivo del comprobante"
	msgFileTooLarge  = "el comprobante supera el tamaño máximo de 10MB"
	msgInvalidFile   = "el archivo del comprobante no es válido"
	msgUploadFailed  = "no se pudo guardar el comprobante"
	msgUploadSuccess = "Comprobante recibido"
)

// UploadProofResponse HTTP response model
type UploadProofResponse struct {
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje"`
	URL     string `json:"url"`
}

type Handler struct {
	storage MediaStorage
	logger  Logger
}

func NewHandler(storage MediaStorage, logger Logger) *Handler {
	return &Handler{
		storage: storage,
		logger:  logger,
	}
}

// Handle POST /api/v1/comprobantes
// Multipart form con el campo "comprobante"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /comprobantes - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgFileTooLarge)
		return
	}

	file, header, err := r.FormFile(formFieldName)
	if err != nil {
		h.logger.Warn("POST /comprobantes - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	url, err := h.storage.UploadProof(r.Context(), file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, mediastorage.ErrInvalidFile):
			h.logger.Warn("POST /comprobantes - Invalid file: filename=%s, error=%v", header.Filename, err)
			handlers.RespondBadRequest(w, msgInvalidFile)

		default:
			h.logger.Error("POST /comprobantes - Upload failed: filename=%s, error=%v", header.Filename, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)
		}
		return
	}

	h.logger.Info("POST /comprobantes - Proof uploaded successfully: filename=%s, size=%d", header.Filename, header.Size)
	handlers.RespondJSON(w, http.StatusOK, &UploadProofResponse{
		Success: true,
		Mensaje: msgUploadSuccess,
		URL:     url,
	})
}
