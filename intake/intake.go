// Package intake validates uploaded audio and stages it on disk for the
// duration of one request.
package intake

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voicenotes/backend/apierror"
)

// MaxFileSize caps uploads at 10MB; a 5 minute recording stays well under it.
const MaxFileSize = 10 << 20

var allowedMimes = map[string]struct{}{
	"audio/mpeg":  {},
	"audio/mp3":   {},
	"audio/wav":   {},
	"audio/m4a":   {},
	"audio/x-m4a": {},
	"audio/mp4":   {},
	"audio/webm":  {},
	"audio/ogg":   {},
}

// Upload is a validated audio file staged in transient storage.
type Upload struct {
	Path string
	Name string
	Size int64
}

// Allowed reports whether the declared MIME type passes the audio filter.
func Allowed(mime string) bool {
	if _, ok := allowedMimes[mime]; ok {
		return true
	}
	return strings.HasPrefix(mime, "audio/")
}

// Store validates the upload and writes it under dir using a nanosecond
// timestamp plus the original filename, so concurrent requests cannot
// collide. The returned cleanup removes the staged file and must be called
// exactly once after the consuming operation finishes, success or failure.
// When Store returns an error no file exists and there is nothing to clean.
func Store(fh *multipart.FileHeader, dir string) (*Upload, func() error, error) {
	if fh == nil {
		return nil, nil, apierror.NoAudioFile()
	}
	if fh.Size > MaxFileSize {
		return nil, nil, apierror.FileTooLarge()
	}
	if !Allowed(fh.Header.Get("Content-Type")) {
		return nil, nil, apierror.InvalidFileType()
	}

	name := filepath.Base(fh.Filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "audio"
	}

	src, err := fh.Open()
	if err != nil {
		return nil, nil, apierror.TranscriptionFailed(0, "Failed to read uploaded audio")
	}
	defer src.Close()

	path := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), name))
	dst, err := os.Create(path)
	if err != nil {
		return nil, nil, apierror.TranscriptionFailed(0, "Failed to store uploaded audio")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, nil, apierror.TranscriptionFailed(0, "Failed to store uploaded audio")
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, nil, apierror.TranscriptionFailed(0, "Failed to store uploaded audio")
	}

	cleanup := func() error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return &Upload{Path: path, Name: name, Size: fh.Size}, cleanup, nil
}
