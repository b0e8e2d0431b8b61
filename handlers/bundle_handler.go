package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lexbg-assistant/storage"

	"github.com/gin-gonic/gin"
)

// IndexDocument is the client bundle's entry document
const IndexDocument = "index.html"

// BundleHandler serves the built client bundle
type BundleHandler struct {
	storage storage.Storage
}

// NewBundleHandler creates a new bundle handler
func NewBundleHandler(storage storage.Storage) *BundleHandler {
	return &BundleHandler{
		storage: storage,
	}
}

// ServeBundle handles every unmatched route. Existing assets are served as
// is; anything else gets the entry document so the client can route it.
func (h *BundleHandler) ServeBundle(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Route not found",
			},
		})
		return
	}

	key := strings.TrimPrefix(c.Request.URL.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		key = IndexDocument
	}

	reader, servedKey, err := h.open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "BUNDLE_NOT_FOUND",
					"message": "Client bundle not found. Build the client or run publish-bundle first.",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DOWNLOAD_FAILED",
				"message": fmt.Sprintf("Failed to read bundle asset: %v", err),
			},
		})
		return
	}
	defer reader.Close()

	contentType := storage.ContentType(servedKey)
	if servedKey == IndexDocument {
		c.Header("Cache-Control", "no-cache")
	}
	c.DataFromReader(http.StatusOK, -1, contentType, reader, nil)
}

// open returns the asset for key, falling back to the entry document
func (h *BundleHandler) open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := h.storage.Open(ctx, key)
	if err == nil {
		return reader, key, nil
	}
	if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrInvalidKey) {
		return nil, "", err
	}
	if key == IndexDocument {
		return nil, "", err
	}

	reader, err = h.storage.Open(ctx, IndexDocument)
	if err != nil {
		return nil, "", err
	}
	return reader, IndexDocument, nil
}
