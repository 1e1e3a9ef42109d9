package utils

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxUploadFileSize is the per-file limit for image attachments.
	MaxUploadFileSize = 5 * 1024 * 1024

	// MaxFilesPerRequest caps the number of attachments on one submission.
	// Exceeding it rejects the whole submission before any persistence.
	MaxFilesPerRequest = 5
)

var allowedImageMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

// executableHeaders are hex-encoded magic byte prefixes of common executable
// formats: MZ (Windows PE), ELF (Linux), Mach-O (macOS). Matching any of
// them rejects the file.
var executableHeaders = []string{"4d5a", "7f454c46", "cafebabe"}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
var repeatedDots = regexp.MustCompile(`\.{2,}`)

// ValidateImageUpload checks an uploaded file against the attachment rules:
// allowed image MIME type, size limit, and no executable magic bytes.
// It returns a client-facing error message, or "" when the file is acceptable.
func ValidateImageUpload(mimeType string, data []byte) string {
	if !allowedImageMIMETypes[strings.ToLower(mimeType)] {
		return fmt.Sprintf("File type not allowed: %s. Allowed types: PNG, JPEG, GIF, WebP", mimeType)
	}

	if len(data) > MaxUploadFileSize {
		return fmt.Sprintf("File too large: %.2fMB. Maximum size: 5MB", float64(len(data))/1024/1024)
	}

	header := data
	if len(header) > 4 {
		header = header[:4]
	}
	headerHex := hex.EncodeToString(header)
	for _, h := range executableHeaders {
		if strings.HasPrefix(headerHex, h) {
			return "File appears to be an executable and is not allowed"
		}
	}

	return ""
}

// SanitizeFilename strips characters that are unsafe in object keys and
// filesystem paths, collapses repeated dots, and caps the length at 100.
func SanitizeFilename(filename string) string {
	s := unsafeFilenameChars.ReplaceAllString(filename, "_")
	s = repeatedDots.ReplaceAllString(s, ".")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
