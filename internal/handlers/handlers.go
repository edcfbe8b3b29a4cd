package handlers

import (
	_ "embed"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Brownie44l1/skintone-api/internal/imageprep"
	"github.com/Brownie44l1/skintone-api/internal/logging"
	"github.com/Brownie44l1/skintone-api/internal/model"
	"github.com/Brownie44l1/skintone-api/internal/skintone"
	"github.com/Brownie44l1/skintone-api/internal/upload"
)

//go:embed templates/index.html
var indexHTML []byte

// Classifier predicts a skin-tone label for a preprocessed image.
type Classifier interface {
	Predict(input *imageprep.Tensor) (*model.Prediction, error)
}

type Handler struct {
	classifier    Classifier
	store         *upload.Store
	logger        *zap.Logger
	maxUploadSize int64
}

func NewHandler(classifier Classifier, store *upload.Store, maxUploadSize int64, logger *zap.Logger) *Handler {
	return &Handler{
		classifier:    classifier,
		store:         store,
		logger:        logger.Named("handlers"),
		maxUploadSize: maxUploadSize,
	}
}

// UploadResponse is the body of a successful POST /upload.
type UploadResponse struct {
	SkinTone             string                  `json:"skin_tone"`
	MakeupRecommendation skintone.Recommendation `json:"makeup_recommendation"`
	ImageURL             string                  `json:"image_url"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.Use(RequestID(), CORS())

	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.POST("/upload", h.Upload)
}

func (h *Handler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Upload validates and stores the "file" part, classifies it and answers
// with the matching makeup recommendation.
func (h *Handler) Upload(c *gin.Context) {
	reqID := requestID(c)
	opLogger := logging.WithOperation(h.logger, "handlers.upload", reqID)

	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)
	}

	part, err := uploadedFile(c)
	if err != nil {
		h.fail(c, opLogger, err)
		return
	}
	filename := part.FileName()

	name := upload.SecureFilename(filename)
	if !upload.AllowedFile(filename) || !upload.AllowedFile(name) {
		h.fail(c, opLogger.With(zap.String("filename", filename)), ErrDisallowedFileType)
		return
	}

	path, err := h.store.Save(part, name)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(c, opLogger, ErrFileTooLarge)
			return
		}
		h.fail(c, opLogger, processingError("upload.save", reqID, err))
		return
	}
	opLogger.Info("saved upload", zap.String("path", path))

	// The preview is not part of the response.
	preview, err := imageprep.EncodePreview(path)
	if err != nil {
		h.fail(c, opLogger, processingError("imageprep.encode_preview", reqID, err))
		return
	}
	opLogger.Debug("encoded preview", zap.Int("base64_len", len(preview)))

	tensor, err := imageprep.BuildTensor(path)
	if err != nil {
		h.fail(c, opLogger, processingError("imageprep.build_tensor", reqID, err))
		return
	}

	prediction, err := h.classifier.Predict(tensor)
	if err != nil {
		h.fail(c, opLogger, processingError("model.predict", reqID, err))
		return
	}

	if !skintone.IsCategory(prediction.Label) {
		opLogger.Warn("classifier returned unknown label", zap.String("label", prediction.Label))
	}
	opLogger.Info("predicted skin tone",
		zap.String("skin_tone", prediction.Label),
		zap.Float32("score", prediction.Score),
		zap.Any("distribution", prediction.Distribution),
	)

	c.JSON(http.StatusOK, UploadResponse{
		SkinTone:             prediction.Label,
		MakeupRecommendation: skintone.Lookup(prediction.Label),
		ImageURL:             upload.URL(name),
	})
}

// uploadedFile returns the first "file" part that carries a filename
// parameter, positioned at the start of its body. A "file" field without a
// filename parameter is an ordinary form value and is skipped.
func uploadedFile(c *gin.Context) (*multipart.Part, error) {
	reader, err := c.Request.MultipartReader()
	if err != nil {
		return nil, ErrNoFilePart
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return nil, ErrNoFilePart
		}
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, ErrFileTooLarge
			}
			return nil, ErrNoFilePart
		}
		if part.FormName() != "file" {
			continue
		}

		_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil {
			continue
		}
		filename, ok := params["filename"]
		if !ok {
			continue
		}
		if filename == "" {
			return nil, ErrNoSelectedFile
		}
		return part, nil
	}
}

func processingError(operation, requestID string, err error) error {
	return logging.NewOperationError(operation, requestID, errors.Join(ErrPreprocessing, err))
}

func (h *Handler) fail(c *gin.Context, logger *zap.Logger, err error) {
	resp := responseFor(err)
	if resp.status >= http.StatusInternalServerError {
		var opErr *logging.OperationError
		if errors.As(err, &opErr) {
			logger.Error("upload failed", opErr.Fields()...)
		} else {
			logger.Error("upload failed", zap.Error(err))
		}
	} else {
		logger.Info("upload rejected", zap.String("reason", resp.message))
	}
	c.JSON(resp.status, gin.H{"error": resp.message})
}
