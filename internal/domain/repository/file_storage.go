package repository

import (
	"context"
	"io"
)

// StoredFile archivo ya subido al bucket.
type StoredFile struct {
	ID      string
	ViewURL string
}

// FileStorage puerto del almacenamiento de objetos (bucket de imágenes).
type FileStorage interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*StoredFile, error)
	Delete(ctx context.Context, fileID string) error
	// FileIDFromURL extrae el id de archivo de una URL de vista; vacío si no reconoce el formato.
	FileIDFromURL(url string) string
}
