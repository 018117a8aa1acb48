package audio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Extensions lists the file patterns Load can decode.
var Extensions = []string{"*.wav", "*.mp3", "*.flac", "*.ogg"}

// Track is a decoded audio file wired into the playback chain:
//
//	decoder -> loop -> analyzer -> ctrl
//
// Ctrl is what gets handed to the speaker.
type Track struct {
	Path     string
	Format   beep.Format
	Ctrl     *beep.Ctrl
	Analyzer *Analyzer

	streamer beep.StreamSeekCloser
	file     *os.File
}

// Load decodes path and builds the playback chain. The spectrum of everything
// played through Ctrl is published to feed. An unreadable, undecodable or
// empty file is an error.
func Load(path string, fftSize int, feed *Feed) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open audio")
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if streamer.Len() <= 0 {
		_ = streamer.Close()
		_ = f.Close()
		return nil, errors.Errorf("decode %s: no samples", path)
	}

	an, err := NewAnalyzer(beep.Loop(-1, streamer), fftSize, feed)
	if err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, err
	}

	return &Track{
		Path:     path,
		Format:   format,
		Ctrl:     &beep.Ctrl{Streamer: an},
		Analyzer: an,
		streamer: streamer,
		file:     f,
	}, nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
}

// Duration is the length of one pass through the file.
func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.streamer.Len())
}

// Position is the current play position within the file.
func (t *Track) Position() time.Duration {
	return t.Format.SampleRate.D(t.streamer.Position())
}

// Close releases the decoder and the file. Some decoders close the file
// themselves, so the second close is best effort.
func (t *Track) Close() error {
	err := t.streamer.Close()
	_ = t.file.Close()
	return err
}
