package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decoded(path)
	return err
}

// LoadSFX returns a new one-shot player each time
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	data, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

// LoadLoop returns a player that repeats the effect until paused
func (l *AudioLoader) LoadLoop(path string) (*audio.Player, error) {
	data, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	l.sfxCache[path] = decoded
	return decoded, nil
}
