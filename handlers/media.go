package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"carelink/services/media"
	"carelink/utils"

	"github.com/gin-gonic/gin"
)

// MediaHandler stores patient-uploaded reports and scans.
type MediaHandler struct {
	Storage media.StorageService
}

func NewMediaHandler(svc media.StorageService) *MediaHandler {
	return &MediaHandler{Storage: svc}
}

// allowedFolders defines permitted destinations for patient uploads.
var allowedFolders = map[string]bool{
	"reports": true,
	"scans":   true,
}

// UploadMediaHandler saves a report or scan image and returns a download URL.
func (h *MediaHandler) UploadMediaHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "invalid folder; allowed values are 'reports' and 'scans'", folder)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := "patients/" + c.GetString("patientID") + "/" + folder

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tempFilePath, destFolder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	downloadURL, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to construct download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"fileId":      publicID,
		"downloadURL": downloadURL,
	})
}

// GetMediaURLHandler generates a download URL for a previously uploaded file.
func (h *MediaHandler) GetMediaURLHandler(c *gin.Context) {
	folder := c.Param("folder")
	filename := c.Param("filename")
	if !allowedFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "invalid folder; allowed values are 'reports' and 'scans'", folder)
		return
	}

	destPath := "patients/" + c.GetString("patientID") + "/" + folder + "/" + filename

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), destPath, expiry)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteMediaHandler removes an uploaded file.
func (h *MediaHandler) DeleteMediaHandler(c *gin.Context) {
	folder := c.Param("folder")
	filename := c.Param("filename")
	if !allowedFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "invalid folder; allowed values are 'reports' and 'scans'", folder)
		return
	}

	destPath := "patients/" + c.GetString("patientID") + "/" + folder + "/" + filename
	if err := h.Storage.DeleteFile(c.Request.Context(), destPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete file", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
