package ingestion

import (
	"context"
	"errors"
	"fmt"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/helper"
	"go-storefront/internal/pkg/logger"
	"io"
	"mime/multipart"
	"net/http"
)

type bufferedPart struct {
	name      string
	mediaType string
	data      []byte
}

// Intake reads every `images` part of mr, enforces the file count and size
// ceilings and only then parks the parts on scratch storage. On error no
// temp file of the request is left behind.
func (s *Service) Intake(ctx context.Context, mr *multipart.Reader) ([]*types.UploadedFile, error) {
	parts, err := s.readParts(ctx, mr)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, ErrNoFiles
	}

	if err := s.scratch.EnsureDir(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	files := make([]*types.UploadedFile, 0, len(parts))
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			s.purge(files)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}

		name, err := helper.TempFileName(p.name, s.now())
		if err != nil {
			s.purge(files)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}

		path, err := s.scratch.Write(name, p.data)
		if err != nil {
			s.purge(files)
			return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, p.name, err)
		}

		files = append(files, &types.UploadedFile{
			FieldName:         ImageField,
			OriginalName:      p.name,
			DeclaredMediaType: p.mediaType,
			TemporaryPath:     path,
			SizeBytes:         int64(len(p.data)),
		})
	}

	return files, nil
}

func (s *Service) readParts(ctx context.Context, mr *multipart.Reader) ([]bufferedPart, error) {
	var parts []bufferedPart
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}

		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return parts, nil
		}
		if err != nil {
			return nil, bodyError(err)
		}

		if part.FormName() != ImageField || part.FileName() == "" {
			_, err := io.Copy(io.Discard, part)
			_ = part.Close()
			if err != nil {
				return nil, bodyError(err)
			}
			continue
		}

		name := helper.SafeBaseName(part.FileName())
		if len(parts) == s.limits.MaxFiles {
			_ = part.Close()
			return nil, fmt.Errorf("%w: at most %d files per request", ErrTooManyFiles, s.limits.MaxFiles)
		}

		data, err := io.ReadAll(io.LimitReader(part, s.limits.MaxFileSize+1))
		_ = part.Close()
		if err != nil {
			return nil, bodyError(err)
		}
		if int64(len(data)) > s.limits.MaxFileSize {
			return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, name, s.limits.MaxFileSize)
		}

		parts = append(parts, bufferedPart{
			name:      name,
			mediaType: part.Header.Get("Content-Type"),
			data:      data,
		})
	}
}

// bodyError classifies a failure reading the request body. A body over the
// request ceiling counts as an oversized file, anything else as a broken or
// abandoned upload.
func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: request body exceeds %d bytes", ErrFileTooLarge, maxErr.Limit)
	}
	logger.Warning.Printf("upload body read failed: %v", err)
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
