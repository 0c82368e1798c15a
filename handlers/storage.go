package handlers

import (
	"net/http"
	"strings"

	"ard/services/storage"
	"ard/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler uploads ad images and hands back their public URLs.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadImageHandler accepts a multipart "image" file and uploads it to the
// configured bucket folder.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "image storage unavailable", "storage backend not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing image file", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unreadable image file", err.Error())
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "ads")
	url, err := h.Storage.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload image", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteImageHandler removes an uploaded image when its ad is deleted or the
// upload is abandoned. The wildcard keeps folder-qualified public IDs intact.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "image storage unavailable", "storage backend not configured")
		return
	}

	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing image id", "")
		return
	}
	if err := h.Storage.DeleteImage(c.Request.Context(), publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete image", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
