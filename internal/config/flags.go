package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
	flagFlipY    = flag.Bool("flip-y", false, "Mirror the model across the XZ plane")
	flagNoSynth  = flag.Bool("no-synth", false, "Do not synthesize missing normals and tangents")
	flagClip     = flag.String("clip", "", "Animation clip to play")
	flagSpeed    = flag.Float64("speed", 0, "Playback speed multiplier")
	flagFPS      = flag.Int("fps", 0, "Simulated frames per second")
	flagDuration = flag.Duration("duration", 0, "Length of a simulated run")
	flagFov      = flag.Float64("fov", 0, "Vertical field of view in degrees")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagFlipY {
		cfg.Import.FlipY = true
	}
	if *flagNoSynth {
		cfg.Import.GenerateNormals = false
		cfg.Import.GenerateTangents = false
	}
	if *flagClip != "" {
		cfg.Playback.Clip = *flagClip
	}
	if *flagSpeed > 0 {
		cfg.Playback.Speed = float32(*flagSpeed)
	}
	if *flagFPS > 0 {
		cfg.Playback.FPS = *flagFPS
	}
	if *flagDuration > 0 {
		cfg.Playback.Duration = *flagDuration
	}
	if *flagFov > 0 {
		cfg.Camera.FovYDegrees = float32(*flagFov)
	}
}
