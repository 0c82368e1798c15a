package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploadedFolder string
	deletedID      string
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, folder string) (string, error) {
	f.uploadedFolder = folder
	return "https://cdn.example.com/" + folder + "/img.jpg", nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, publicID string) error {
	f.deletedID = publicID
	return nil
}

func newStorageRouter(h *StorageHandler) *gin.Engine {
	r := gin.New()
	api := r.Group("/api/storage")
	api.POST("/upload", h.UploadImageHandler)
	api.DELETE("/images/*publicId", h.DeleteImageHandler)
	return r
}

func multipartImage(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "photo.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadImageEndpoint(t *testing.T) {
	fake := &fakeStorage{}
	r := newStorageRouter(NewStorageHandler(fake))

	body, contentType := multipartImage(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ads", fake.uploadedFolder, "folder defaults to ads")
	assert.Contains(t, w.Body.String(), "https://cdn.example.com/")
}

func TestUploadImageMissingFile(t *testing.T) {
	r := newStorageRouter(NewStorageHandler(&fakeStorage{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/storage/upload", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorageUnavailable(t *testing.T) {
	r := newStorageRouter(NewStorageHandler(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/storage/upload", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/storage/images/ads/img", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDeleteImageEndpoint(t *testing.T) {
	fake := &fakeStorage{}
	r := newStorageRouter(NewStorageHandler(fake))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/storage/images/ads/img-123", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ads/img-123", fake.deletedID, "folder-qualified public id survives routing")
}
