package helper

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const tempNameAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// TempFileName builds a collision resistant scratch name from the current
// time, a random suffix and the original extension, e.g.
// "1718000000000-k3j9x0a2mq1z.jpg".
func TempFileName(originalName string, now time.Time) (string, error) {
	suffix, err := gonanoid.Generate(tempNameAlphabet, 12)
	if err != nil {
		return "", fmt.Errorf("failed to generate temp name: %w", err)
	}
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, FileExtension(originalName)), nil
}

// FileExtension returns the lower-cased extension of a client supplied name.
// Directory components are stripped first so "../x.png" yields ".png".
func FileExtension(name string) string {
	return strings.ToLower(filepath.Ext(filepath.Base(strings.ReplaceAll(name, "\\", "/"))))
}

// SafeBaseName drops any path a client may have smuggled into a filename.
func SafeBaseName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	return base
}
