// Command gen renders dropdowns in their characteristic states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/backend/opengl"
)

var background = dropdown.RGBA(31, 31, 36, 255)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const fruit = "Apple\nBanana\nCherry\nDate\nElderberry\nFig\nGrape\nHoneydew"

// screenshot defines a single dropdown screenshot to capture.
type screenshot struct {
	name   string                           // filename without extension
	width  int                              // viewport width
	height int                              // viewport height
	base   dropdown.BaseDir                 // screen text direction
	setup  func(scr *dropdown.Screen) error // builds and drives the controls
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("dropdown renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at 800x600.
	renderer.Resize(s.width, s.height)

	// Fresh screen per screenshot to avoid state leaking between captures.
	scr := dropdown.NewScreen(
		dropdown.WithViewport(dropdown.Rect{W: float32(s.width), H: float32(s.height)}),
		dropdown.WithBaseDir(s.base),
	)
	if err := s.setup(scr); err != nil {
		return err
	}

	renderer.Clear(background)
	if err := scr.Render(renderer); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns every dropdown state to capture.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "closed", width: 200, height: 60,
			setup: func(scr *dropdown.Screen) error {
				dropdown.New(scr, dropdown.WithOptions(fruit), dropdown.WithPos(20, 20))
				return nil
			},
		},
		{
			name: "open_down", width: 200, height: 160,
			setup: func(scr *dropdown.Screen) error {
				c := dropdown.New(scr, dropdown.WithOptions("Low\nMedium\nHigh"), dropdown.WithPos(20, 20))
				if err := c.SetSelected(1); err != nil {
					return err
				}
				return c.Open()
			},
		},
		{
			name: "open_flipped_up", width: 200, height: 160,
			setup: func(scr *dropdown.Screen) error {
				c := dropdown.New(scr, dropdown.WithOptions("Low\nMedium\nHigh"), dropdown.WithPos(20, 120))
				return c.Open()
			},
		},
		{
			name: "open_scrolled", width: 200, height: 200,
			setup: func(scr *dropdown.Screen) error {
				c := dropdown.New(scr,
					dropdown.WithOptions(fruit),
					dropdown.WithPos(20, 20),
					dropdown.WithMaxHeight(80),
				)
				if err := c.SetSelected(5); err != nil {
					return err
				}
				return c.Open()
			},
		},
		{
			name: "open_right", width: 320, height: 120,
			setup: func(scr *dropdown.Screen) error {
				c := dropdown.New(scr,
					dropdown.WithStaticOptions("New\nOpen\nSave"),
					dropdown.WithText("File"),
					dropdown.WithNoSymbol(),
					dropdown.WithDirection(dropdown.DirRight),
					dropdown.WithWidth(80),
					dropdown.WithPos(20, 20),
				)
				return c.Open()
			},
		},
		{
			name: "open_rtl", width: 200, height: 160, base: dropdown.BaseDirRTL,
			setup: func(scr *dropdown.Screen) error {
				c := dropdown.New(scr,
					dropdown.WithOptions("One\nTwo\nThree"),
					dropdown.WithTextProcessor(dropdown.ProcessRTL),
					dropdown.WithPos(20, 20),
				)
				return c.Open()
			},
		},
	}
}
