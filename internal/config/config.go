package config

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Simulation runs at a fixed tick rate.
	TPS       = 60
	TimeStep  = 1.0 / TPS
	RotationX = 0.011
	RotationY = 0.017
	RotationZ = 0.007

	// Spectrum analysis
	FFTSize       = 1024
	MusicBarCount = 64
	SpringFreq    = 8.0
	SpringDamping = 0.6

	// Projection
	BaseScale      = 420.0
	PulseAmplitude = 60.0
	CameraDistance = 6.0
	CubeSize       = 1.0

	// Orbiters
	OrbiterCount     = 6
	OrbiterRadius    = 1.6
	OrbiterRadiusInc = 0.45
	OrbiterSpeed     = 0.55
	OrbiterSpeedInc  = 0.17
	TrailCapacity    = 25
	CollisionDistSq  = 100.0

	// Explosion particles
	ExplosionCount    = 20
	ExplosionMinSpeed = 1.0
	ExplosionMaxSpeed = 4.5
	ExplosionDecay    = 0.02
	ExplosionDrag     = 0.97

	// Warp particles
	WarpSpawnPerTick = 3
	WarpMinRadius    = 180.0
	WarpMaxRadius    = 320.0
	WarpMinSpeed     = 0.8
	WarpMaxSpeed     = 2.6
	WarpMinSpiral    = 0.015
	WarpMaxSpiral    = 0.045
	WarpDecay        = 0.008
	WarpCullRadius   = 5.0
	WarpHoleRadius   = 26.0

	// Backdrops
	StarCount      = 160
	StarSpeed      = 2.0
	RasterBarCount = 8
	RasterBarSize  = 14
	RasterBarAmp   = 110.0

	// Message scroller
	ScrollCharsPerSec = 12.0
	ScrollPxPerSec    = 90.0
	ScrollScale       = 2

	// Sine scroller
	SineFontSize    = 40.0
	SineAmplitude   = 22.0
	SineSpeed       = 2.5
	SineBaseline    = 520.0
	SineOutline     = 2.0
	SineShadow      = 4.0
	SineHueRate     = 90.0
	SineCharHueStep = 14.0

	// Post-processing
	ChromaticOffset = 2
	FlashDecay      = 0.10
	ShakeAmount     = 5.0

	// Bitmap font grid
	GlyphWidth    = 6
	GlyphHeight   = 8
	GlyphsPerRow  = 200
	FirstGlyph    = 32
	LastGlyph     = 126
	FontAssetPath = "assets/font.png"
)

const (
	ScrollMessage = "WARPDEMO ... SPECTRUM DRIVEN ORBITS, RASTER BARS AND A TUNNEL OF LIGHT ... GREETINGS TO EVERYONE STILL WRITING DEMOS ...   "
	SineMessage   = "*** THE MUSIC MOVES THE STARS ***   "
	Caption       = "WARP/DEMO"
)
