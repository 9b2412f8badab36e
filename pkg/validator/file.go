package validator

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// File is the minimal file-like contract the file validators consume:
// anything that can report its name. *os.File and fs.FileInfo satisfy it.
type File interface {
	Name() string
}

// FileExtension validates a file name's extension against an allowlist.
// Matching is case-insensitive; an empty allowlist accepts every extension.
type FileExtension struct {
	allowed []string
	lookup  map[string]struct{}
	message string
	code    string
}

// NewFileExtension builds a file extension validator. Allowed extensions are
// given without the leading dot ("png", not ".png").
// Honored options: WithMessage, WithCode.
func NewFileExtension(allowed []string, opts ...Option) *FileExtension {
	o := newOptions(opts)

	normalized := make([]string, 0, len(allowed))
	lookup := make(map[string]struct{}, len(allowed))
	for _, ext := range allowed {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		normalized = append(normalized, ext)
		lookup[ext] = struct{}{}
	}

	return &FileExtension{
		allowed: normalized,
		lookup:  lookup,
		message: o.messageOr("File extension %{extension} is not allowed. Allowed extensions are: %{allowed_extensions}."),
		code:    o.codeOr(CodeInvalidExtension),
	}
}

// Validate checks the extension of the given file name.
func (v *FileExtension) Validate(name string) error {
	if len(v.allowed) == 0 {
		return nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := v.lookup[ext]; !ok {
		return newError(v.code, v.message, map[string]any{
			"extension":          ext,
			"allowed_extensions": strings.Join(v.allowed, ", "),
			"value":              name,
		})
	}
	return nil
}

// ValidateFile checks the extension of a file-like object's name.
func (v *FileExtension) ValidateFile(f File) error {
	return v.Validate(f.Name())
}

// ImageExtensions returns the extensions of the raster formats the image
// validators recognize.
func ImageExtensions() []string {
	return []string{"bmp", "gif", "ico", "jpeg", "jpg", "png", "tif", "tiff", "webp"}
}

// NewImageExtension builds a file extension validator preconfigured with the
// common raster image extensions.
// Honored options: WithMessage, WithCode.
func NewImageExtension(opts ...Option) *FileExtension {
	return NewFileExtension(ImageExtensions(), opts...)
}

// sniffLen is the maximum number of leading bytes content sniffing reads.
const sniffLen = 512

// Image validates file content rather than the file name: the leading bytes
// must sniff as a known image format.
type Image struct {
	message string
	code    string
}

// NewImage builds an image content validator.
// Honored options: WithMessage, WithCode.
func NewImage(opts ...Option) *Image {
	o := newOptions(opts)
	return &Image{
		message: o.messageOr("Upload a valid image. The file you uploaded was either not an image or a corrupted image."),
		code:    o.codeOr(CodeInvalidImage),
	}
}

// Validate sniffs the content type of the leading bytes and fails unless it
// is an image format. Reads at most 512 bytes from r.
func (v *Image) Validate(r io.Reader) error {
	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return newError(v.code, v.message, nil)
	}

	contentType := http.DetectContentType(buffer[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return newError(v.code, v.message, map[string]any{
			"content_type": contentType,
		})
	}
	return nil
}
