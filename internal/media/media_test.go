package media

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedContentType(t *testing.T) {
	supported := []string{"audio/mpeg", "audio/mp3", "audio/ogg", "audio/wav", "audio/flac"}
	for _, ct := range supported {
		assert.True(t, IsSupportedContentType(ct), ct)
	}

	unsupported := []string{"audio/aac", "video/mp4", "AUDIO/MPEG", "text/plain", ""}
	for _, ct := range unsupported {
		assert.False(t, IsSupportedContentType(ct), ct)
	}
}

func TestNewLibraryCreatesAudioDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "media")

	_, err := NewLibrary(root)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "audio"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAllocate(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)

	path, url := library.Allocate("audio/mpeg")

	assert.True(t, strings.HasSuffix(path, ".mpeg"))
	assert.True(t, strings.HasPrefix(url, "/audio/"))

	// Path and URL must name the same file.
	assert.Equal(t, filepath.Base(path), strings.TrimPrefix(url, "/audio/"))
	assert.Equal(t, path, library.FilePath(url))

	path2, url2 := library.Allocate("audio/mpeg")
	assert.NotEqual(t, path, path2)
	assert.NotEqual(t, url, url2)
}

func TestAllocateExtensionFollowsSubtype(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)

	for subtype, want := range map[string]string{
		"audio/mpeg": ".mpeg",
		"audio/mp3":  ".mp3",
		"audio/ogg":  ".ogg",
		"audio/wav":  ".wav",
		"audio/flac": ".flac",
	} {
		path, _ := library.Allocate(subtype)
		assert.Equal(t, want, filepath.Ext(path))
	}
}

func TestAllocateConcurrentUploadsNeverCollide(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)

	const n = 100
	urls := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, url := library.Allocate("audio/ogg")
			urls <- url
		}()
	}
	wg.Wait()
	close(urls)

	seen := make(map[string]bool, n)
	for url := range urls {
		assert.False(t, seen[url], "duplicate url %s", url)
		seen[url] = true
	}
	assert.Len(t, seen, n)
}
