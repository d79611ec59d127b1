package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/rainbow/internal/app"
	"github.com/irfansharif/rainbow/internal/config"
	"github.com/irfansharif/rainbow/internal/palette"
	"github.com/irfansharif/rainbow/internal/strip"
)

const logFlags = log.Ltime | log.Lshortfile

// Version information - set by ldflags during build
var Version = "dev"

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

var (
	configPath  = flag.String("config", config.DefaultPath, "path to the optional YAML config file")
	stripPath   = flag.String("strip", "", "render the animation to this image file instead of opening a window")
	stripFrames = flag.Int("frames", 360, "frames to render with -strip")
	stripFPS    = flag.Float64("fps", 60, "frame rate assumed by -strip")
	stripHeight = flag.Int("strip-height", 64, "height of the -strip image")
	stripWidth  = flag.Int("strip-width", 0, "scale the -strip image to this width (0 keeps one pixel per frame)")
	wheel       = flag.Bool("wheel", false, "show the hue wheel overlay at startup")
	swatches    = flag.Int("swatches", 0, "append a row of this many palette swatches under the -strip image")
	shimmer     = flag.Float64("shimmer", 0, "value jitter applied to -swatches colors")
	showVersion = flag.Bool("version", false, "print version information")
)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("RAINBOW_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(fps float64, avgFrameTime float64, application *app.App) string {
	c := application.Animator.Color()
	state := ""
	if application.Paused {
		state = ", paused"
	}
	return fmt.Sprintf("Rainbow (%.1f FPS, %.2fms/frame, hue %.0f°, %.0f°/s, %s%s)",
		fps,
		avgFrameTime,
		c.Hue,
		application.Animator.Speed(),
		c.RGBA().Hex(),
		state,
	)
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("rainbow %s\n", Version)
		return
	}

	cfg, err := config.Resolve(*configPath, os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.Wheel = cfg.Wheel || *wheel
	runtimeLogger.Printf("Configuration: %+v (seed %v)", cfg.Animation, cfg.Seed)

	if *stripPath != "" {
		if err := writeStrip(cfg); err != nil {
			log.Fatalf("Failed to render strip: %v", err)
		}
		return
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, "Rainbow", nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	application := app.NewApp(window, cfg, time.Now())
	defer application.Cleanup()

	// Initialize event handlers.
	NewEventHandlers(application)

	frameCount, frameTimeSum := 0, 0.0
	lastFPSUpdate := time.Now()

	// Main loop.
	for !application.Window.ShouldClose() {
		frameStart := time.Now()

		w, h := application.Window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		application.Frame(frameStart)

		application.Window.SwapBuffers()
		glfw.PollEvents()

		frameTime := time.Since(frameStart).Seconds() * 1000.0 // ms
		frameTimeSum += frameTime

		frameCount++
		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			avgFrameTime := frameTimeSum / float64(frameCount)
			frameCount, frameTimeSum = 0, 0.0
			lastFPSUpdate = now

			application.Window.SetTitle(makeTitle(fps, avgFrameTime, application))

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS (%.2f ms/frame)", fps, avgFrameTime)
			runtimeLogger.Printf("Color:          %v (%v, %d turns)", application.Animator.Color(), application.Background.Color(), application.Animator.Revolutions())
			if application.Overlay != nil {
				stats := application.Overlay.Stats()
				runtimeLogger.Printf("Overlay:        %d vertices, %.2f µs (last draw)", stats.Vertices, stats.LastDrawTimeUs)
			}
			runtimeLogger.Println("==============================")
		}
	}
}

// writeStrip renders the configured animation headlessly to *stripPath.
func writeStrip(cfg *config.Resolved) error {
	if *stripFPS <= 0 {
		return fmt.Errorf("invalid -fps %v", *stripFPS)
	}

	img, err := strip.Render(cfg.Animation, cfg.Seed, *stripFrames, 1 / *stripFPS, *stripHeight)
	if err != nil {
		return err
	}
	if *stripWidth > 0 {
		img = strip.Scale(img, *stripWidth)
	}

	if *swatches > 0 {
		pal := palette.Rainbow(*swatches, cfg.Animation.Saturation, cfg.Animation.Value)
		pal = palette.Shimmered(pal, *shimmer, rand.New(rand.NewSource(seed())))
		size := img.Bounds().Dx() / *swatches
		if size < 1 {
			size = 1
		}
		row, err := strip.Swatches(pal, size)
		if err != nil {
			return err
		}
		img = strip.Stack(img, row)
	}

	if err := strip.Save(img, *stripPath); err != nil {
		return err
	}
	log.Printf("Wrote %dx%d strip to %s", img.Bounds().Dx(), img.Bounds().Dy(), *stripPath)
	return nil
}

func seed() int64 {
	seedStr := os.Getenv("RAINBOW_SEED")
	now := time.Now().Unix()
	if seedStr == "" {
		return now
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid RAINBOW_SEED value '%s': %v", seedStr, err)
	}
	return seed
}
