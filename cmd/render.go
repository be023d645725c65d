package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/ppm"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ErrVerifyFailed is returned when a written image does not read back identically.
var ErrVerifyFailed = errors.New("written image does not match the render")

// RenderFlags returns the flags accepted by the render command.
func RenderFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "default",
			Usage: "name of the built-in scene to render (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "image width in pixels (scene default when unset)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "image height in pixels (derived from the aspect ratio when unset)",
		},
		cli.Float64Flag{
			Name:  "aspect",
			Usage: "width over height, used when no height is given",
		},
		cli.IntFlag{
			Name:  "spp",
			Usage: "samples per pixel; 0 traces a single ray through each pixel center",
		},
		cli.IntFlag{
			Name:  "depth",
			Usage: "maximum number of bounces per path",
		},
		cli.Float64Flag{
			Name:  "vfov",
			Usage: "vertical field of view in degrees",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed; equal seeds render identical images",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "number of render goroutines (defaults to the cpu count)",
		},
		cli.Float64Flag{
			Name:  "exposure",
			Value: 1.0,
			Usage: "camera exposure for tone-mapping",
		},
		cli.BoolFlag{
			Name:  "no-gamma",
			Usage: "write linear values instead of gamma 2 encoded ones",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: "render.ppm",
			Usage: "output file; the extension selects the format (.ppm or .png)",
		},
		cli.BoolFlag{
			Name:  "verify",
			Usage: "read a written .ppm file back and compare it with the render",
		},
	}
}

// RenderScene renders a built-in scene and writes the image to disk.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	name := ctx.String("scene")
	if ctx.NArg() > 0 {
		name = ctx.Args().First()
	}

	out := ctx.String("out")
	format := strings.ToLower(filepath.Ext(out))
	if format != ".ppm" && format != ".png" {
		return fmt.Errorf("unsupported output format %q: use .ppm or .png", format)
	}

	s, err := scene.Lookup(name)
	if err != nil {
		return err
	}
	applyCameraFlags(ctx, &s.Camera)

	camera, err := s.NewCamera()
	if err != nil {
		return err
	}
	camera.SetColorMapper(ppm.ColorMapper{
		Exposure: float32(ctx.Float64("exposure")),
		Gamma:    !ctx.Bool("no-gamma"),
	})

	config := camera.Config()
	logger.Noticef("rendering scene %q at %dx%d, %d spp, depth %d, %d primitives",
		s.Name, camera.Width(), camera.Height(), config.SamplesPerPixel, config.MaxDepth, s.GetPrimitiveCount())

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := camera.RenderContext(renderCtx, s.World)
	if err != nil {
		return fmt.Errorf("render interrupted after %d of %d rows: %w", stats.Rows, camera.Height(), err)
	}

	if err := writeImage(img, out, format); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	if ctx.Bool("verify") {
		if err := verifyImage(img, out, format); err != nil {
			return err
		}
		logger.Noticef("verified %s", out)
	}

	displayRenderStats(s.Name, stats, renderer.AverageLuminance(img))
	return nil
}

// applyCameraFlags copies every flag given on the command line into config.
// Zero values are applied too, so --spp 0 selects the pixel-center mode.
func applyCameraFlags(ctx *cli.Context, config *renderer.CameraConfig) {
	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
		if !ctx.IsSet("height") {
			config.Height = 0
		}
	}
	if ctx.IsSet("height") {
		config.Height = ctx.Int("height")
	}
	if ctx.IsSet("aspect") {
		config.AspectRatio = float32(ctx.Float64("aspect"))
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("vfov") {
		config.VFov = float32(ctx.Float64("vfov"))
	}
	if ctx.IsSet("seed") {
		config.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("workers") {
		config.Workers = ctx.Int("workers")
	}
}

func writeImage(img *ppm.Image, path, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if format == ".ppm" {
		return img.Save(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding png file: %w", err)
	}
	return f.Close()
}

func verifyImage(img *ppm.Image, path, format string) error {
	if format != ".ppm" {
		logger.Warningf("skipping verification of %s: only .ppm output can be verified", path)
		return nil
	}

	written, err := ppm.Load(path)
	if err != nil {
		return err
	}
	if !img.Equal(written) {
		return fmt.Errorf("%s: %w", path, ErrVerifyFailed)
	}
	return nil
}

func displayRenderStats(name string, stats renderer.RenderStats, luminance float64) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Scene", name})
	table.Append([]string{"Rows", fmt.Sprintf("%d", stats.Rows)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)})
	table.Append([]string{"Samples", fmt.Sprintf("%d (%.1f per pixel)", stats.TotalSamples, stats.AverageSamples())})
	table.Append([]string{"Scatter evaluations", fmt.Sprintf("%d (%.2f per sample)", stats.ScatterEvaluations, stats.AverageBounces())})
	table.Append([]string{"Background hits", fmt.Sprintf("%d", stats.BackgroundHits)})
	table.Append([]string{"Absorbed paths", fmt.Sprintf("%d", stats.AbsorbedPaths)})
	table.Append([]string{"Depth exhausted", fmt.Sprintf("%d", stats.DepthExhausted)})
	table.Append([]string{"Non-finite samples", fmt.Sprintf("%d", stats.NonFiniteSamples)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", stats.Workers)})
	table.Append([]string{"Rays per second", fmt.Sprintf("%.0f", stats.RaysPerSecond())})
	table.Append([]string{"Average luminance", fmt.Sprintf("%.4f", luminance)})
	table.SetFooter([]string{"Render time", fmt.Sprintf("%s", stats.Duration)})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
