package game

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/warpdemo/internal/audio"
	"github.com/iburimskiy/warpdemo/internal/config"
	"github.com/iburimskiy/warpdemo/internal/scene"
)

// Game is the frame composer. Update advances the scene by exactly one fixed
// tick; Draw composes the layers in a fixed order into an offscreen frame,
// post-processes it and presents it.
type Game struct {
	// audio
	track *audio.Track
	feed  *audio.Feed

	// scene
	state *scene.State
	font  *bitmapFont
	face  *text.GoTextFace

	// frames
	offscreen *ebiten.Image
	post      *ebiten.Image
	srcPix    *image.RGBA
	dstPix    *image.RGBA

	// progress
	audioDuration time.Duration
	audioPosition time.Duration

	paused bool
}

// New builds the game for an already playing track.
func New(track *audio.Track, feed *audio.Feed) (*Game, error) {
	font, err := loadBitmapFont(config.FontAssetPath)
	if err != nil {
		return nil, err
	}
	face, err := newSineFace()
	if err != nil {
		return nil, err
	}

	advance := func(s string) float64 { return text.Advance(s, face) }
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	state := scene.NewState(config.WindowWidth, config.WindowHeight, advance, rng)
	state.Scroller.CharWidth = float64(font.grid.CellW * config.ScrollScale)

	bounds := image.Rect(0, 0, config.WindowWidth, config.WindowHeight)
	return &Game{
		track:         track,
		feed:          feed,
		state:         state,
		font:          font,
		face:          face,
		offscreen:     ebiten.NewImage(config.WindowWidth, config.WindowHeight),
		post:          ebiten.NewImage(config.WindowWidth, config.WindowHeight),
		srcPix:        image.NewRGBA(bounds),
		dstPix:        image.NewRGBA(bounds),
		audioDuration: track.Duration(),
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	g.state.Tick(g.feed.Latest())
	g.updateAudioPosition()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.state.Phase == scene.Idle {
		return
	}

	// Layer order matters: each layer is composited over the previous ones.
	off := g.offscreen
	off.Fill(color.Black)
	g.drawFlash(off)
	g.drawStarfield(off)
	g.drawRasterBars(off)
	g.drawScroller(off)
	g.draw3D(off)
	g.drawSineScroller(off)

	g.present(screen, off)
	g.drawStatus(screen)
}

// present applies the chromatic offset and camera shake to the composed
// frame and draws it to the screen.
func (g *Game) present(screen, frame *ebiten.Image) {
	out := frame
	if offset := g.state.Flash.ChromaticOffset(); offset > 0 {
		frame.ReadPixels(g.srcPix.Pix)
		scene.ChromaticAberration(g.dstPix, g.srcPix, offset)
		g.post.WritePixels(g.dstPix.Pix)
		out = g.post
	}

	dx, dy := g.state.Shake()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	screen.DrawImage(out, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("TPS %.0f  FPS %.0f  %s / %s  %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		formatDuration(g.audioPosition), formatDuration(g.audioDuration),
		filepath.Base(g.track.Path))
	if g.paused {
		status += "  [paused - Space to play]"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, config.WindowHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) togglePause() {
	speaker.Lock()
	g.paused = !g.paused
	g.track.Ctrl.Paused = g.paused
	speaker.Unlock()
}

// updateAudioPosition reads the decoder position. The decoder is advanced by
// the speaker goroutine, so it is only read under the speaker lock.
func (g *Game) updateAudioPosition() {
	speaker.Lock()
	g.audioPosition = g.track.Position()
	speaker.Unlock()
}
