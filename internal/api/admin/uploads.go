package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /admin/uploads (multipart field "image")
// Stores the file in the artworks bucket and returns its public URL for
// use as an artwork image_url.
func UploadImage(c *gin.Context) {
	if Uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Object storage not configured"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := Uploads.Upload(c.Request.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
