package appwrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/rasan-admin-api/internal/domain/repository"
)

var _ repository.FileStorage = (*BucketStorage)(nil)

// File metadatos de un archivo del bucket.
type File struct {
	ID       string `json:"$id"`
	BucketID string `json:"bucketId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// BucketStorage implementa FileStorage sobre un bucket de Appwrite Storage.
type BucketStorage struct {
	client   *Client
	bucketID string
}

// NewBucketStorage construye el adaptador para el bucket indicado.
func NewBucketStorage(client *Client, bucketID string) *BucketStorage {
	return &BucketStorage{client: client, bucketID: bucketID}
}

func (s *BucketStorage) filesPath() string {
	return "/storage/buckets/" + url.PathEscape(s.bucketID) + "/files"
}

// Upload sube el contenido como un archivo nuevo con id único.
func (s *BucketStorage) Upload(ctx context.Context, filename string, r io.Reader) (*repository.StoredFile, error) {
	fileID := uuid.New().String()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("fileId", fileID); err != nil {
		return nil, fmt.Errorf("appwrite: multipart fileId: %w", err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("appwrite: multipart file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("appwrite: copiar archivo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("appwrite: cerrar multipart: %w", err)
	}

	var out File
	err = s.client.do(ctx, request{
		method:      http.MethodPost,
		path:        s.filesPath(),
		rawBody:     &buf,
		contentType: mw.FormDataContentType(),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("subir archivo: %w", err)
	}
	if out.ID == "" {
		out.ID = fileID
	}
	return &repository.StoredFile{ID: out.ID, ViewURL: s.ViewURL(out.ID)}, nil
}

// Delete elimina el archivo del bucket.
func (s *BucketStorage) Delete(ctx context.Context, fileID string) error {
	err := s.client.do(ctx, request{
		method: http.MethodDelete,
		path:   s.filesPath() + "/" + url.PathEscape(fileID),
	}, nil)
	if err != nil {
		return fmt.Errorf("eliminar archivo %s: %w", fileID, err)
	}
	return nil
}

// ViewURL URL pública de vista del archivo, igual a la que genera getFileView.
func (s *BucketStorage) ViewURL(fileID string) string {
	return fmt.Sprintf("%s%s/%s/view?project=%s",
		s.client.Endpoint(), s.filesPath(), url.PathEscape(fileID), url.QueryEscape(s.client.ProjectID()))
}

// FileIDFromURL extrae el id de ".../files/{id}/view?...".
func (s *BucketStorage) FileIDFromURL(u string) string {
	_, rest, ok := strings.Cut(u, "/files/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	id, _, _ = strings.Cut(id, "?")
	return id
}
