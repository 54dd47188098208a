package landmask

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// gridPix returns a GridWidth x GridHeight RGBA buffer filled with c.
func gridPix(c color.RGBA) []byte {
	pix := make([]byte, GridWidth*GridHeight*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	return pix
}

// setPixel paints the scan-grid pixel for (lon, lat).
func setPixel(pix []byte, lon, lat int, c color.RGBA) {
	i := ((MaxLat-lat)*GridWidth + (lon - MinLon)) * 4
	pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
}

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestSamplerThreshold(t *testing.T) {
	s := NewSampler()

	tests := []struct {
		r, g, b uint8
		want    bool
	}{
		{255, 255, 255, true},
		{101, 101, 101, true},
		{100, 255, 255, false}, // threshold is exclusive
		{255, 100, 255, false},
		{255, 255, 100, false},
		{0, 0, 0, false},
	}

	for _, tt := range tests {
		if got := s.IsLand(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("IsLand(%d,%d,%d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestSampleAllWhite(t *testing.T) {
	m := NewSampler().Sample(gridPix(white))

	for lat := MinLat; lat <= MaxLat; lat++ {
		if got := len(m.Bucket(lat)); got != GridWidth {
			t.Fatalf("lat %d: %d land samples, want %d", lat, got, GridWidth)
		}
	}
	if m.LandCount() != GridWidth*GridHeight {
		t.Errorf("LandCount = %d, want %d", m.LandCount(), GridWidth*GridHeight)
	}
}

func TestSampleAllBlack(t *testing.T) {
	m := NewSampler().Sample(gridPix(black))

	if m.LandCount() != 0 {
		t.Errorf("LandCount = %d, want 0", m.LandCount())
	}
	if m.EmptyLatitudes() != GridHeight {
		t.Errorf("EmptyLatitudes = %d, want %d", m.EmptyLatitudes(), GridHeight)
	}
}

func TestSampleScanOrder(t *testing.T) {
	pix := gridPix(black)
	setPixel(pix, -180, 90, white)
	setPixel(pix, 180, 90, white)
	setPixel(pix, 0, 0, white)
	setPixel(pix, 37, -45, white)
	setPixel(pix, 12, -90, white)

	m := NewSampler().Sample(pix)

	tests := []struct {
		lat  int
		want []int16
	}{
		{90, []int16{-180, 180}},
		{0, []int16{0}},
		{-45, []int16{37}},
		{-90, []int16{12}},
		{1, nil},
	}
	for _, tt := range tests {
		got := m.Bucket(tt.lat)
		if len(got) != len(tt.want) {
			t.Fatalf("lat %d: bucket %v, want %v", tt.lat, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("lat %d: bucket %v, want %v", tt.lat, got, tt.want)
			}
		}
	}
}

func TestSampleIgnoresOverflowAndPartialPixels(t *testing.T) {
	pix := gridPix(black)
	// One extra row past -90 and three stray bytes.
	extra := bytes.Repeat([]byte{255, 255, 255, 255}, GridWidth)
	pix = append(pix, extra...)
	pix = append(pix, 255, 255, 255)

	m := NewSampler().Sample(pix)
	if m.LandCount() != 0 {
		t.Errorf("LandCount = %d, want 0", m.LandCount())
	}
}

func TestSampleShortBuffer(t *testing.T) {
	// Only the first row is present; every other bucket stays empty.
	pix := gridPix(white)[:GridWidth*4]
	m := NewSampler().Sample(pix)

	if len(m.Bucket(90)) != GridWidth {
		t.Errorf("lat 90 bucket = %d, want %d", len(m.Bucket(90)), GridWidth)
	}
	if m.EmptyLatitudes() != GridHeight-1 {
		t.Errorf("EmptyLatitudes = %d, want %d", m.EmptyLatitudes(), GridHeight-1)
	}
}

func TestSampleImageResamples(t *testing.T) {
	// 72x36 image: northern half white, southern half black.
	img := image.NewRGBA(image.Rect(0, 0, 72, 36))
	for y := 0; y < 36; y++ {
		for x := 0; x < 72; x++ {
			if y < 18 {
				img.SetRGBA(x, y, white)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}

	m := NewSampler().SampleImage(img)
	if len(m.Bucket(60)) != GridWidth {
		t.Errorf("lat 60 bucket = %d, want full row", len(m.Bucket(60)))
	}
	if len(m.Bucket(-60)) != 0 {
		t.Errorf("lat -60 bucket = %d, want empty", len(m.Bucket(-60)))
	}
}

func TestSampleImageWithoutResample(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 1))
	for x := 0; x < 10; x++ {
		img.SetRGBA(x, 0, white)
	}

	m := Sampler{Threshold: DefaultThreshold}.SampleImage(img)
	b := m.Bucket(90)
	if len(b) != 10 || b[0] != -180 || b[9] != -171 {
		t.Errorf("bucket = %v, want -180..-171", b)
	}
}

func TestIndexIsLand(t *testing.T) {
	pix := gridPix(black)
	setPixel(pix, 10, 20, white)
	setPixel(pix, 180, 0, white)
	idx := NewIndex(NewSampler().Sample(pix), DefaultTolerance)

	tests := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"exact", 10, 20, true},
		{"within tolerance", 10.49, 20, true},
		{"tolerance is exclusive", 10.5, 20, false},
		{"latitude rounds to bucket", 10, 19.6, true},
		{"latitude rounds away", 10, 19.4, false},
		{"empty bucket", 10, 45, false},
		{"out of range latitude", 10, 95, false},
		{"wrapped longitude", 370, 20, true},
		{"negative wrap", -350, 20, true},
		{"antimeridian from west", -179.8, 0, true},
		{"antimeridian from east", 179.8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.IsLand(tt.lon, tt.lat); got != tt.want {
				t.Errorf("IsLand(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestIndexWrapSymmetry(t *testing.T) {
	pix := gridPix(black)
	for lon := -180; lon <= 180; lon += 7 {
		setPixel(pix, lon, 33, white)
	}
	idx := NewIndex(NewSampler().Sample(pix), DefaultTolerance)

	for lon := -180.0; lon < 180; lon += 0.37 {
		a := idx.IsLand(lon, 33)
		if b := idx.IsLand(lon+360, 33); a != b {
			t.Fatalf("IsLand(%v) = %v but IsLand(%v) = %v", lon, a, lon+360, b)
		}
		if b := idx.IsLand(lon-360, 33); a != b {
			t.Fatalf("IsLand(%v) = %v but IsLand(%v) = %v", lon, a, lon-360, b)
		}
	}
}

func TestIndexIdempotent(t *testing.T) {
	pix := gridPix(black)
	setPixel(pix, -70, -10, white)
	m := NewSampler().Sample(pix)
	idx := NewIndex(m, 0)

	before := append([]int16(nil), m.Bucket(-10)...)
	first := idx.IsLand(-70.2, -10)
	second := idx.IsLand(-70.2, -10)

	if first != second || !first {
		t.Errorf("repeated query gave %v then %v, want true twice", first, second)
	}
	after := m.Bucket(-10)
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("query mutated bucket: %v -> %v", before, after)
	}
	if idx.Tolerance() != DefaultTolerance {
		t.Errorf("Tolerance = %v, want default", idx.Tolerance())
	}
}

func TestIndexNilMask(t *testing.T) {
	if NewIndex(nil, 1).IsLand(0, 0) {
		t.Error("nil mask should never report land")
	}
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mask.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, GridWidth, GridHeight))
	img.SetRGBA(180, 90, white) // lon 0, lat 0
	path := writePNG(t, img)

	m, err := LoadFile(path, NewSampler())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if b := m.Bucket(0); len(b) != 1 || b[0] != 0 {
		t.Errorf("bucket 0 = %v, want [0]", b)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestLoadAsync(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, GridWidth, GridHeight))
	img.SetRGBA(0, 0, white)
	path := writePNG(t, img)

	select {
	case m, ok := <-LoadAsync(path, NewSampler()):
		if !ok || m == nil {
			t.Fatal("expected a mask")
		}
		if m.LandCount() != 1 {
			t.Errorf("LandCount = %d, want 1", m.LandCount())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for mask")
	}
}

func TestLoadAsyncFailureClosesSilently(t *testing.T) {
	ch := LoadAsync(filepath.Join(t.TempDir(), "missing.png"), NewSampler())

	select {
	case m, ok := <-ch:
		if ok || m != nil {
			t.Errorf("expected closed channel, got %v", m)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for close")
	}
}
