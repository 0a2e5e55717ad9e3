package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/sirupsen/logrus"
)

// Asset describes a loaded media file. Duration is zero when the file's
// length could not be determined; callers may override it.
type Asset struct {
	Path     string
	Title    string
	Artist   string
	Duration time.Duration
}

// Loaded reports whether the asset has a usable duration.
func (a *Asset) Loaded() bool {
	return a != nil && a.Duration > 0
}

// mp3BytesPerFrame is the decoded PCM frame size: 16-bit stereo.
const mp3BytesPerFrame = 4

// Probe opens a media file and extracts title/artist tags plus the
// duration where the container allows it (currently mp3). Tag or duration
// failures degrade to defaults rather than failing the probe.
func Probe(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	a := &Asset{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	if m, err := tag.ReadFrom(f); err == nil {
		if t := m.Title(); t != "" {
			a.Title = t
		}
		a.Artist = m.Artist()
	} else {
		logrus.Debugf("no readable tags in %s: %v", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind media file: %w", err)
		}
		if dec, err := mp3.NewDecoder(f); err == nil {
			frames := dec.Length() / mp3BytesPerFrame
			a.Duration = time.Duration(frames) * time.Second / time.Duration(dec.SampleRate())
		} else {
			logrus.Debugf("mp3 decode failed for %s: %v", path, err)
		}
	}

	return a, nil
}
