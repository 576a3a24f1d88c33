package upload

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/internal/utils/storage"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

type (
	UploadService interface {
		UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error)
	}

	uploadService struct {
		storage storage.ImageStorage
		maxSize int64
		stamps  *stampSource
	}
)

func NewUploadService(imageStorage storage.ImageStorage) UploadService {
	return &uploadService{
		storage: imageStorage,
		maxSize: domain.MaxUploadSize,
		stamps:  newStampSource(time.Now),
	}
}

func (s *uploadService) UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error) {
	header := req.Image
	if header == nil {
		return domain.UploadImageResponse{}, domain.ErrNoFileUploaded
	}
	if header.Size > s.maxSize {
		return domain.UploadImageResponse{}, domain.ErrFileTooLarge
	}

	declared, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil || !storage.IsAllowed(declared, storage.AllowImage...) {
		return domain.UploadImageResponse{}, domain.ErrInvalidImageType
	}

	file, err := header.Open()
	if err != nil {
		return domain.UploadImageResponse{}, fmt.Errorf("opening upload: %w", err)
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return domain.UploadImageResponse{}, fmt.Errorf("reading upload: %w", err)
	}
	if !storage.IsAllowed(detected.String(), storage.AllowImage...) {
		return domain.UploadImageResponse{}, domain.ErrInvalidImageType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return domain.UploadImageResponse{}, fmt.Errorf("rewinding upload: %w", err)
	}

	fileName := GenerateFileName(header.Filename, s.stamps.Next())
	ref, err := s.storage.Save(ctx, fileName, declared, file)
	if err != nil {
		return domain.UploadImageResponse{}, err
	}
	return domain.UploadImageResponse{FilePath: ref}, nil
}

// GenerateFileName keeps the original extension, replaces every character
// of the base name outside [A-Za-z0-9_-] with '_' and appends token.
func GenerateFileName(original, token string) string {
	name := path.Base(strings.ReplaceAll(original, `\`, "/"))
	if name == "." || name == "/" {
		name = ""
	}
	ext := path.Ext(name)
	if ext == name {
		// ".hidden" is a name without an extension.
		ext = ""
	}
	base := name[:len(name)-len(ext)]
	return unsafeNameChars.ReplaceAllString(base, "_") + "-" + token + ext
}

// stampSource hands out millisecond timestamps that strictly increase, even
// when called several times within the same millisecond.
type stampSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func newStampSource(now func() time.Time) *stampSource {
	return &stampSource{now: now}
}

func (s *stampSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := s.now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return strconv.FormatInt(ms, 10)
}
