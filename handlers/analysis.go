package handlers

import (
	"io"
	"net/http"
	"strings"

	"carelink/services/classifier"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageBytes caps symptom-photo uploads at 8 MB.
const maxImageBytes = 8 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// AnalysisHandler accepts a symptom photo and returns model predictions.
type AnalysisHandler struct {
	Classifier classifier.RemoteClassifier
}

func NewAnalysisHandler(cls classifier.RemoteClassifier) *AnalysisHandler {
	return &AnalysisHandler{Classifier: cls}
}

// AnalyzeImageHandler runs the uploaded image through the remote classifier
// and returns the ranked predictions plus the top label.
func (h *AnalysisHandler) AnalyzeImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image not provided", err.Error())
		return
	}
	if fileHeader.Size > maxImageBytes {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "image too large", "maximum size is 8MB")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(mimeType)] {
		utils.JSONError(c, http.StatusBadRequest, "unsupported image type", mimeType)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read image", err.Error())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read image", err.Error())
		return
	}

	preds, err := h.Classifier.Classify(c.Request.Context(), image, mimeType)
	if err != nil {
		getLogger(c).Error("image classification failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "image classification failed", err.Error())
		return
	}

	resp := gin.H{"predictions": preds}
	if top, ok := classifier.Top(preds); ok {
		resp["top"] = top
	}
	c.JSON(http.StatusOK, resp)
}
