package uploads

import (
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// URLPrefix is where the upload directory is served statically.
const URLPrefix = "/uploads"

// unsafeChars matches everything that is stripped from uploaded filenames.
// Only alphanumerics, dots, and hyphens survive, which also rules out
// directory traversal.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Handler handles file upload requests
type Handler struct {
	dir string
}

// NewHandler creates an upload handler writing into dir
func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

// Upload stores an uploaded file under a collision-resistant name
// @Summary Upload a file
// @Description Store a file and get back its public URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} map[string]interface{} "success, url and originalName"
// @Failure 400 {object} map[string]interface{} "No file uploaded"
// @Security BearerAuth
// @Router /upload [post]
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	safeName := unsafeChars.ReplaceAllString(filepath.Base(file.Filename), "_")
	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), safeName)

	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"url":          path.Join(URLPrefix, filename),
		"originalName": file.Filename,
	})
}

// RegisterRoutes registers upload routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}
