package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// audioContentTypes is the set of declared MIME types accepted for upload.
// The match is case-sensitive and the file bytes are never sniffed.
var audioContentTypes = []string{
	"audio/mpeg",
	"audio/mp3",
	"audio/ogg",
	"audio/wav",
	"audio/flac",
}

func IsSupportedContentType(contentType string) bool {
	for _, ct := range audioContentTypes {
		if ct == contentType {
			return true
		}
	}
	return false
}

// Library is the on-disk home of uploaded audio. Files live under
// <root>/audio and are served under the /audio URL prefix.
type Library struct {
	root string
}

// NewLibrary creates the audio directory under root if it is absent.
func NewLibrary(root string) (*Library, error) {
	if err := os.MkdirAll(filepath.Join(root, "audio"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &Library{root: root}, nil
}

// Allocate picks a fresh file name for a validated content type and returns
// both the filesystem path to write and the public URL to persist. Both are
// derived from the same name so they cannot diverge. The uuid makes
// collisions between concurrent uploads a non-issue.
func (l *Library) Allocate(contentType string) (path, url string) {
	parts := strings.Split(contentType, "/")
	name := fmt.Sprintf("%s.%s", uuid.New(), parts[len(parts)-1])
	return filepath.Join(l.root, "audio", name), "/audio/" + name
}

// FilePath translates a stored public URL back to its filesystem path.
func (l *Library) FilePath(url string) string {
	return filepath.Join(l.root, filepath.FromSlash(strings.TrimPrefix(url, "/")))
}

// AudioDir returns the directory holding the audio files.
func (l *Library) AudioDir() string {
	return filepath.Join(l.root, "audio")
}
