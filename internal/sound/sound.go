//go:build !ci

// Package sound plays the advisor's alert cues, like the warning when
// a recommended hit carries a high bust risk.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Cue names looked up by the shell.
const (
	CueBustWarning = "bust_warning"
	CueDeviation   = "deviation"
)

type Manager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewManager() *Manager {
	return &Manager{
		buffers: make(map[string]*beep.Buffer),
	}
}

func (m *Manager) Init() error {
	sampleRate := beep.SampleRate(44100)
	// Small speaker buffer keeps the alert close to the key press
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	m.enabled = true

	return m.loadCueFiles(sampleRate)
}

// loadCueFiles loads every mp3/wav file in assets/sounds, keyed by
// base name. A missing directory just means no cues.
func (m *Manager) loadCueFiles(sampleRate beep.SampleRate) error {
	soundDir := "assets/sounds"
	files, err := os.ReadDir(soundDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		// Keep loading the other cues even if one file is broken
		if err := m.loadCueFile(soundDir, name, ext, sampleRate); err != nil {
			continue
		}
	}

	return nil
}

func (m *Manager) loadCueFile(soundDir, name, ext string, sampleRate beep.SampleRate) error {
	f, err := os.Open(filepath.Clean(filepath.Join(soundDir, name)))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	m.buffers[strings.TrimSuffix(name, filepath.Ext(name))] = buffer
	return nil
}

// Play plays a cue by name. Unknown cues are silently ignored.
func (m *Manager) Play(name string) {
	if !m.enabled {
		return
	}

	buffer, ok := m.buffers[name]
	if !ok {
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (m *Manager) Close() {
	m.enabled = false
}
