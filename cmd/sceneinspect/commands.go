package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/drawable"
	"github.com/Faultbox/sceneview/internal/engine/model"
	"github.com/Faultbox/sceneview/internal/engine/picking"
	"github.com/Faultbox/sceneview/internal/engine/scene"
)

var errNoBounds = errors.New("scene has no geometry to frame")

// importOptions maps the import section of cfg onto loader options.
func importOptions(cfg *config.Config) model.Options {
	opts := model.DefaultOptions()
	opts.FlipY = cfg.Import.FlipY
	opts.GenerateNormals = cfg.Import.GenerateNormals
	opts.GenerateTangents = cfg.Import.GenerateTangents
	opts.SphereBounds = cfg.Import.SphereBounds
	return opts
}

// newFraming builds the framing camera from the camera section of cfg.
func newFraming(cfg *config.Config) *camera.Framing {
	c := camera.NewFraming()
	c.FovY = mgl32.DegToRad(cfg.Camera.FovYDegrees)
	c.Aspect = cfg.Camera.Aspect
	c.NearPadding = cfg.Camera.NearPadding
	c.FarPadding = cfg.Camera.FarPadding
	return c
}

// loadModel loads path and applies the playback settings of cfg.
func loadModel(cfg *config.Config, path string) (*model.Model, error) {
	m, err := model.LoadFile(path, importOptions(cfg))
	if err != nil {
		return nil, err
	}
	m.Player.Speed = cfg.Playback.Speed
	if name := cfg.Playback.Clip; name != "" && !m.Player.SetClipByName(name) {
		return nil, fmt.Errorf("clip %q not found (available: %s)", name, strings.Join(m.Player.Names(), ", "))
	}
	return m, nil
}

func cmdInfo(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: sceneinspect info <file>")
	}
	m, err := loadModel(cfg, args[0])
	if err != nil {
		return err
	}
	s := m.Scene

	primitives := 0
	s.Walk(func(n *scene.Node) {
		if n.Mesh != nil {
			primitives += len(n.Mesh.Primitives)
		}
	})

	fmt.Fprintf(w, "Model:      %s\n", m.Name)
	fmt.Fprintf(w, "Nodes:      %d (%d roots)\n", s.NodeCount(), len(s.Roots))
	fmt.Fprintf(w, "Primitives: %d\n", primitives)
	fmt.Fprintf(w, "Vertices:   %d\n", len(s.Vertices))
	fmt.Fprintf(w, "Indices:    %d\n", len(s.Indices))
	fmt.Fprintf(w, "Bounds:     %s\n", formatBounds(m.Bounds()))

	fmt.Fprintf(w, "\nMaterials (%d):\n", len(s.Materials))
	for i, mat := range s.Materials {
		fmt.Fprintf(w, "  %3d  %-24s %-6s %s\n", i, mat.Name, mat.AlphaMode, drawable.BucketFor(mat))
	}

	fmt.Fprintf(w, "\nSkins (%d):\n", len(s.Skins))
	for i, sk := range s.Skins {
		fmt.Fprintf(w, "  %3d  %-24s %d joints\n", i, sk.Name, len(sk.Joints))
	}

	fmt.Fprintf(w, "\nClips (%d):\n", len(m.Clips))
	for i, c := range m.Clips {
		fmt.Fprintf(w, "  %3d  %-24s %.3fs %d tracks\n", i, c.Name, c.Duration, len(c.Tracks))
	}
	return nil
}

func cmdPlay(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(w)
	every := fs.Int("every", 0, "Print the pose every N frames (0 = summary only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: sceneinspect play [-every N] <file>")
	}

	m, err := loadModel(cfg, fs.Arg(0))
	if err != nil {
		return err
	}
	clip := m.Player.Clip()
	if clip == nil {
		return errors.New("model has no animation clips")
	}

	dt := float32(cfg.FrameStep().Seconds())
	frames := int(cfg.Playback.Duration.Seconds() * float64(cfg.Playback.FPS))
	swept := m.Bounds()

	fmt.Fprintf(w, "Clip:   %s (%.3fs)\n", clip.Name, clip.Duration)
	for f := 1; f <= frames; f++ {
		m.Update(dt)
		b := m.Bounds()
		swept = swept.Merge(b)
		if *every > 0 && f%*every == 0 {
			fmt.Fprintf(w, "  frame %5d  t=%7.3f  %s\n", f, m.Player.Time(), formatBounds(b))
		}
	}
	fmt.Fprintf(w, "Frames: %d at %d fps\n", frames, cfg.Playback.FPS)
	fmt.Fprintf(w, "Time:   %.3f\n", m.Player.Time())
	fmt.Fprintf(w, "Swept:  %s\n", formatBounds(swept))
	return nil
}

func cmdDraw(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(w)
	at := fs.Float64("t", 0, "Animation time in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: sceneinspect draw [-t seconds] <file>")
	}

	m, err := loadModel(cfg, fs.Arg(0))
	if err != nil {
		return err
	}
	m.Player.SetTime(float32(*at))

	cam := newFraming(cfg)
	if !cam.FitToBounds(m.Bounds()) {
		return errNoBounds
	}
	q := m.Drawables(cam.ViewProjection())

	fmt.Fprintf(w, "Camera: center %s distance %.3f near %.3f far %.3f\n",
		formatVec(cam.Center), cam.Distance, cam.Near, cam.Far)
	fmt.Fprintf(w, "Draws:  %d (opaque %d, transmission %d, transparent %d)\n",
		q.Len(), len(q.Opaque), len(q.Transmission), len(q.Transparent))
	for i, d := range q.Ordered() {
		fmt.Fprintf(w, "  %4d  %-12s %-20s %-20s first=%d count=%d depth=%.4f\n",
			i, d.Bucket, d.Node.Name, m.Scene.Material(d.Material).Name,
			d.FirstIndex, d.IndexCount, d.Depth)
	}
	return nil
}

func cmdPick(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(w)
	x := fs.Float64("x", 0.5, "Horizontal viewport position, 0 (left) to 1 (right)")
	y := fs.Float64("y", 0.5, "Vertical viewport position, 0 (top) to 1 (bottom)")
	at := fs.Float64("t", 0, "Animation time in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: sceneinspect pick [-x 0..1] [-y 0..1] [-t seconds] <file>")
	}

	m, err := loadModel(cfg, fs.Arg(0))
	if err != nil {
		return err
	}
	m.Player.SetTime(float32(*at))

	cam := newFraming(cfg)
	if !cam.FitToBounds(m.Bounds()) {
		return errNoBounds
	}

	ray := picking.ScreenToRay(float32(*x), float32(*y), 1, 1, cam.ViewProjection())
	hit, ok := picking.Pick(m.Scene, ray)
	if !ok {
		fmt.Fprintln(w, "No hit")
		return nil
	}
	fmt.Fprintf(w, "Hit: node %d %q at %s distance %.3f\n",
		hit.Node.Index, hit.Node.Name, formatVec(hit.Point), hit.Distance)
	return nil
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}

func formatBounds(b scene.BoundingBox) string {
	if !b.IsValid() {
		return "(empty)"
	}
	return formatVec(b.Min) + " - " + formatVec(b.Max)
}
