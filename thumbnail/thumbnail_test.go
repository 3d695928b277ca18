package thumbnail

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/thumbgallery/model"
)

var red = color.NRGBA{R: 255, A: 255}

var box = model.Dimensions{Width: 600, Height: 600}

func TestResolveScaledSize(t *testing.T) {
	type tc struct {
		name     string
		source   model.Dimensions
		target   model.Dimensions
		expected model.Dimensions
	}

	tcs := []tc{
		{name: "width bound", source: model.Dimensions{Width: 1200, Height: 800}, target: box, expected: model.Dimensions{Width: 600, Height: 400}},
		{name: "height bound", source: model.Dimensions{Width: 800, Height: 1200}, target: box, expected: model.Dimensions{Width: 400, Height: 600}},
		{name: "smaller than target", source: model.Dimensions{Width: 300, Height: 300}, target: box, expected: model.Dimensions{Width: 300, Height: 300}},
		{name: "equal to target", source: box, target: box, expected: box},
		{name: "same aspect ratio", source: model.Dimensions{Width: 1800, Height: 1800}, target: box, expected: box},
		{name: "fraction rounds up", source: model.Dimensions{Width: 601, Height: 10}, target: box, expected: model.Dimensions{Width: 600, Height: 10}},
		{name: "one axis too large", source: model.Dimensions{Width: 100, Height: 1200}, target: box, expected: model.Dimensions{Width: 50, Height: 600}},
		{name: "non square target", source: model.Dimensions{Width: 1000, Height: 1000}, target: model.Dimensions{Width: 400, Height: 200}, expected: model.Dimensions{Width: 200, Height: 200}},
		{name: "ceil on height bound", source: model.Dimensions{Width: 1001, Height: 3000}, target: box, expected: model.Dimensions{Width: 201, Height: 600}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveScaledSize(tc.source, tc.target)
			if got != tc.expected {
				t.Fatalf("expected scaled size is: %+v but got: %+v", tc.expected, got)
			}
		})
	}
}

func TestResolveScaledSizeFitsTarget(t *testing.T) {
	targets := []model.Dimensions{box, {Width: 640, Height: 480}, {Width: 97, Height: 313}}
	for _, target := range targets {
		for sw := 1; sw <= 2000; sw += 37 {
			for sh := 1; sh <= 2000; sh += 41 {
				source := model.Dimensions{Width: sw, Height: sh}
				got := ResolveScaledSize(source, target)

				if sw <= target.Width && sh <= target.Height {
					if got != source {
						t.Fatalf("source %+v fits %+v but was scaled to %+v", source, target, got)
					}
					continue
				}
				if got.Width > target.Width || got.Height > target.Height || got.Width < 1 || got.Height < 1 {
					t.Fatalf("scaled %+v of source %+v doesn't fit %+v", got, source, target)
				}
				if got.Width != target.Width && got.Height != target.Height {
					t.Fatalf("scaled %+v of source %+v touches no side of %+v", got, source, target)
				}
			}
		}
	}
}

func TestOffset(t *testing.T) {
	type tc struct {
		scaled   model.Dimensions
		expected image.Point
	}

	tcs := []tc{
		{scaled: model.Dimensions{Width: 600, Height: 400}, expected: image.Pt(0, 100)},
		{scaled: model.Dimensions{Width: 300, Height: 300}, expected: image.Pt(150, 150)},
		{scaled: box, expected: image.Pt(0, 0)},
		{scaled: model.Dimensions{Width: 600, Height: 9}, expected: image.Pt(0, 295)},
	}

	for _, tc := range tcs {
		if got := offset(tc.scaled, box); got != tc.expected {
			t.Fatalf("expected offset for %+v is: %v but got: %v", tc.scaled, tc.expected, got)
		}
	}
}

func TestComposeDoesNotMutateSource(t *testing.T) {
	src := imaging.New(1200, 800, red)
	before := append([]uint8(nil), src.Pix...)

	out := Compose(src, box)

	if out.Bounds().Dx() != 600 || out.Bounds().Dy() != 600 {
		t.Fatalf("unexpected thumbnail bounds: %v", out.Bounds())
	}
	if src.Bounds().Dx() != 1200 || src.Bounds().Dy() != 800 {
		t.Fatalf("source bounds changed: %v", src.Bounds())
	}
	for i := range before {
		if before[i] != src.Pix[i] {
			t.Fatalf("source pixel data changed at %d", i)
		}
	}
	if c := out.NRGBAAt(300, 50); c != paddingColor {
		t.Fatalf("expected padding at top but got: %v", c)
	}
	if c := out.NRGBAAt(300, 300); c.R < 250 || c.G > 5 || c.B > 5 {
		t.Fatalf("expected image at center but got: %v", c)
	}
}

func TestGenerate(t *testing.T) {
	type sample struct {
		x, y  int
		white bool
	}

	type tc struct {
		name    string
		source  model.Dimensions
		file    string
		samples []sample
	}

	tcs := []tc{
		{
			name:   "width bound png",
			source: model.Dimensions{Width: 1200, Height: 800},
			file:   "wide.png",
			samples: []sample{
				{x: 300, y: 50, white: true},
				{x: 300, y: 550, white: true},
				{x: 300, y: 300},
				{x: 5, y: 300},
			},
		},
		{
			name:   "height bound jpeg",
			source: model.Dimensions{Width: 800, Height: 1200},
			file:   "tall.jpg",
			samples: []sample{
				{x: 50, y: 300, white: true},
				{x: 550, y: 300, white: true},
				{x: 300, y: 300},
			},
		},
		{
			name:   "small source is padded on all sides",
			source: model.Dimensions{Width: 300, Height: 300},
			file:   "small.png",
			samples: []sample{
				{x: 75, y: 75, white: true},
				{x: 525, y: 525, white: true},
				{x: 300, y: 75, white: true},
				{x: 300, y: 300},
				{x: 160, y: 160},
			},
		},
		{
			name:   "same aspect ratio has no padding",
			source: model.Dimensions{Width: 1500, Height: 1500},
			file:   "square.jpg",
			samples: []sample{
				{x: 4, y: 4},
				{x: 595, y: 595},
				{x: 300, y: 300},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			source := filepath.Join(dir, tc.file)
			if err := imaging.Save(imaging.New(tc.source.Width, tc.source.Height, red), source); err != nil {
				t.Fatal(err)
			}
			target := filepath.Join(dir, "thumb.jpg")

			if err := New().Generate(source, target, box, DefaultQuality); err != nil {
				t.Fatal(err)
			}

			img, err := imaging.Open(target)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != box.Width || img.Bounds().Dy() != box.Height {
				t.Fatalf("expected thumbnail size is: %+v but got: %v", box, img.Bounds())
			}
			for _, s := range tc.samples {
				r, g, b, _ := img.At(s.x, s.y).RGBA()
				r, g, b = r>>8, g>>8, b>>8
				isWhite := r > 230 && g > 230 && b > 230
				isRed := r > 200 && g < 60 && b < 60
				if s.white && !isWhite {
					t.Fatalf("expected white padding at (%d,%d) but got rgb(%d,%d,%d)", s.x, s.y, r, g, b)
				}
				if !s.white && !isRed {
					t.Fatalf("expected image pixel at (%d,%d) but got rgb(%d,%d,%d)", s.x, s.y, r, g, b)
				}
			}
			assertNoTempFiles(t, dir)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "ok.png")
	if err := imaging.Save(imaging.New(10, 10, red), pngPath); err != nil {
		t.Fatal(err)
	}

	gifPath := filepath.Join(dir, "anim.gif")
	f, err := os.Create(gifPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := gif.Encode(f, imaging.New(10, 10, red), nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	garbagePath := filepath.Join(dir, "garbage.jpg")
	if err := os.WriteFile(garbagePath, []byte("<html>not an image</html>"), 0644); err != nil {
		t.Fatal(err)
	}

	truncatedPath := filepath.Join(dir, "truncated.png")
	b, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(truncatedPath, b[:len(b)/2], 0644); err != nil {
		t.Fatal(err)
	}

	type tc struct {
		name     string
		source   string
		target   string
		size     model.Dimensions
		quality  int
		expected error
	}

	tcs := []tc{
		{name: "gif", source: gifPath, target: filepath.Join(dir, "anim.jpg"), size: box, quality: 100, expected: model.ErrUnsupportedOrInvalidImage},
		{name: "garbage", source: garbagePath, target: filepath.Join(dir, "garbage-thumb.jpg"), size: box, quality: 100, expected: model.ErrUnsupportedOrInvalidImage},
		{name: "truncated", source: truncatedPath, target: filepath.Join(dir, "truncated.jpg"), size: box, quality: 100, expected: model.ErrUnsupportedOrInvalidImage},
		{name: "missing source", source: filepath.Join(dir, "missing.png"), target: filepath.Join(dir, "missing.jpg"), size: box, quality: 100, expected: model.ErrUnsupportedOrInvalidImage},
		{name: "unwritable target", source: pngPath, target: filepath.Join(dir, "nope", "ok.jpg"), size: box, quality: 100, expected: model.ErrEncodeFailure},
		{name: "zero width", source: pngPath, target: filepath.Join(dir, "zero.jpg"), size: model.Dimensions{Height: 600}, quality: 100, expected: model.ErrInvalidTarget},
		{name: "quality out of range", source: pngPath, target: filepath.Join(dir, "q.jpg"), size: box, quality: 101, expected: model.ErrInvalidTarget},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := Generate(tc.source, tc.target, tc.size, tc.quality)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected error is: %v but got: %v", tc.expected, err)
			}
			if _, err := os.Stat(tc.target); !os.IsNotExist(err) {
				t.Fatalf("expected no file at %s", tc.target)
			}
		})
	}
	assertNoTempFiles(t, dir)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Fatalf("temporary files left behind: %v", matches)
	}
}
