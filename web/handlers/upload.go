package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"attendo.app/attendo/infrastructure/filesystem"
	"attendo.app/attendo/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadRecordPhotosHandler accepts clock-in photos for a record and stores
// them in the photo bucket under records/<recordId>/. The attendance engine
// never blocks on this; photos are plain collaborator data.
func UploadRecordPhotosHandler(bucket string) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordID := c.Param("recordId")

		if err := c.Request.ParseMultipartForm(50 << 20); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		form := c.Request.MultipartForm
		files := form.File["files"]

		uploaded := []string{}

		for _, file := range files {
			ext := filepath.Ext(file.Filename)
			contentType, ok := photoContentTypes[ext]
			if !ok {
				continue
			}

			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			key := fmt.Sprintf("records/%s/%s%s", recordID, uuid.NewString(), ext)
			err = filesystem.WriteFile(bucket, key, c.Request.Context(), contentType, src)
			src.Close()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			uploaded = append(uploaded, key)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("%d files uploaded", len(uploaded)),
			"files":   uploaded,
		})
	}
}

// ListRecordPhotosHandler enumerates the photos attached to a record.
func ListRecordPhotosHandler(bucket string) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordID := c.Param("recordId")

		keys, err := filesystem.ListFiles(bucket, fmt.Sprintf("records/%s/", recordID), c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"files": utils.Filter(keys, func(k string) bool { return filepath.Ext(k) != "" }),
		})
	}
}
