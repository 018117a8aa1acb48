package main

import (
	"log"
	"os"
	"time"

	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/warpdemo/internal/audio"
	"github.com/iburimskiy/warpdemo/internal/config"
	"github.com/iburimskiy/warpdemo/internal/game"
)

// chooseFile returns the audio path from the command line, or asks for one.
func chooseFile() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Extensions,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", errors.New("no audio file selected")
		}
		return "", errors.Wrap(err, "file dialog")
	}
	return filename, nil
}

func main() {
	path, err := chooseFile()
	if err != nil {
		log.Fatalf("warpdemo: %v", err)
	}

	feed := audio.NewFeed()
	track, err := audio.Load(path, config.FFTSize, feed)
	if err != nil {
		log.Fatalf("warpdemo: %v", err)
	}
	defer track.Close()
	log.Printf("loaded %s (%d Hz, %s)", path, track.Format.SampleRate, track.Duration().Round(time.Second))

	sr := track.Format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		log.Fatalf("warpdemo: init speaker: %v", err)
	}
	speaker.Play(track.Ctrl)

	g, err := game.New(track, feed)
	if err != nil {
		log.Fatalf("warpdemo: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("warpdemo - Space: pause, F: fullscreen, Esc/Q: quit")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("warpdemo: %v", err)
	}
}
