// sceneinspect loads a glTF or GLB scene and reports what a viewer would
// animate and draw.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/logger"
)

type command func(w io.Writer, cfg *config.Config, args []string) error

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	name := args[0]
	args = args[1:]

	var run command
	switch name {
	case "info":
		run = cmdInfo
	case "play":
		run = cmdPlay
	case "draw":
		run = cmdDraw
	case "pick":
		run = cmdPick
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(os.Stdout, cfg, args); err != nil {
		logger.Error("command failed", zap.String("command", name), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`sceneinspect - glTF scene inspector

Usage:
  sceneinspect [flags] <command> [options] <file>

Commands:
  info <file>                  Show nodes, materials, skins, clips and bounds
  play [-every N] <file>       Run the selected clip and report the swept bounds
  draw [-t seconds] <file>     Pose the scene and list the draw buckets in order
  pick [-x X] [-y Y] <file>    Report the node under a viewport position (0..1)

Flags:
  -config path    Config file (default ./config.yaml, then the user config dir)
  -clip name      Animation clip to select
  -speed x        Playback speed multiplier
  -fps n          Simulated frames per second
  -duration d     Length of a play run, e.g. 5s
  -flip-y         Mirror the model across the XZ plane
  -no-synth       Keep missing normals and tangents empty
  -fov degrees    Vertical field of view for draw
  -debug          Enable debug logging
  -log-file path  Also write logs to this file

Examples:
  sceneinspect info CesiumMan.glb
  sceneinspect -clip Walk -duration 4s play -every 30 Fox.glb
  sceneinspect draw -t 0.5 FlightHelmet.gltf
  sceneinspect pick -x 0.25 -y 0.6 Sponza.gltf`)
}
