package reproject

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestWarpArgs(t *testing.T) {
	got := DefaultOptions().WarpArgs("in.tif", "out.tif")
	want := []string{
		"-s_srs", "EPSG:4326",
		"-t_srs", "ESRI:54030",
		"-te", "-17000000", "-8500000", "17000000", "8500000",
		"-ts", "5000", "2500",
		"-r", "bilinear",
		"-dstnodata", "-9999",
		"-of", "GTiff",
		"in.tif", "out.tif",
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("WarpArgs() =\n%v\nwant\n%v", got, want)
	}
}

func TestMaskArgs(t *testing.T) {
	got := strings.Join(DefaultOptions().MaskArgs("tmp.tif", "mask.tif"), " ")
	want := "-A tmp.tif --outfile=mask.tif --calc=(A!=-9999)*255 --type=Byte --NoDataValue=0"
	if got != want {
		t.Errorf("MaskArgs() = %q, want %q", got, want)
	}
}

func TestToolNotFound(t *testing.T) {
	o := DefaultOptions()
	o.Warp = "gdalwarp-that-does-not-exist"
	r := NewRunner(o, nil)
	if _, err := r.Version(context.Background()); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Version() error = %v, want ErrToolNotFound", err)
	}
}

// fakeTool writes an executable shell script standing in for a GDAL tool.
// It writes the --outfile argument, or else its last argument, unless told
// to fail.
func fakeTool(t *testing.T, dir, name string, fail bool) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools need a POSIX shell")
	}
	body := "#!/bin/sh\n"
	if fail {
		body += "echo 'ERROR 1: bad projection' >&2\nexit 1\n"
	} else {
		body += `[ "$1" = --version ] && { echo 'GDAL 3.8.4, released 2024/02/08'; exit 0; }
out=""
for a; do
  case "$a" in --outfile=*) out="${a#--outfile=}";; esac
  last="$a"
done
[ -z "$out" ] && out="$last"
echo data > "$out"
`
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWarpAndMask(t *testing.T) {
	dir := t.TempDir()
	o := DefaultOptions()
	o.Warp = fakeTool(t, dir, "gdalwarp", false)
	o.Calc = fakeTool(t, dir, "gdal_calc.py", false)
	r := NewRunner(o, nil)
	ctx := context.Background()

	v, err := r.Version(ctx)
	if err != nil || !strings.HasPrefix(v, "GDAL") {
		t.Fatalf("Version() = %q, %v", v, err)
	}

	in := filepath.Join(dir, "input.tif")
	if err := os.WriteFile(in, []byte("raster"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out", "robinson.tif")
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		t.Fatal(err)
	}
	if err := r.Warp(ctx, in, out); err != nil {
		t.Fatalf("Warp() error: %v", err)
	}

	mask := filepath.Join(dir, MaskName)
	if err := r.Mask(ctx, in, mask); err != nil {
		t.Fatalf("Mask() error: %v", err)
	}
	if _, err := os.Stat(mask); err != nil {
		t.Errorf("mask not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "robinson_mask_temp_data.tif")); !os.IsNotExist(err) {
		t.Errorf("temporary raster not removed: %v", err)
	}
}

func TestWarpFailures(t *testing.T) {
	dir := t.TempDir()
	o := DefaultOptions()
	o.Warp = fakeTool(t, dir, "gdalwarp", true)
	r := NewRunner(o, nil)

	if err := r.Warp(context.Background(), filepath.Join(dir, "missing.tif"), "out.tif"); err == nil {
		t.Error("expected error for missing input")
	}

	in := filepath.Join(dir, "input.tif")
	if err := os.WriteFile(in, []byte("raster"), 0644); err != nil {
		t.Fatal(err)
	}
	err := r.Warp(context.Background(), in, filepath.Join(dir, "out.tif"))
	if !errors.Is(err, ErrCommand) || !strings.Contains(err.Error(), "bad projection") {
		t.Errorf("Warp() error = %v, want ErrCommand with stderr", err)
	}
}

func TestWarpTimeout(t *testing.T) {
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools need a POSIX shell")
	}
	slow := filepath.Join(dir, "gdalwarp")
	if err := os.WriteFile(slow, []byte("#!/bin/sh\nexec sleep 5\n"), 0755); err != nil {
		t.Fatal(err)
	}
	in := filepath.Join(dir, "input.tif")
	if err := os.WriteFile(in, []byte("raster"), 0644); err != nil {
		t.Fatal(err)
	}
	o := DefaultOptions()
	o.Warp = slow
	o.Timeout = 50 * time.Millisecond
	err := NewRunner(o, nil).Warp(context.Background(), in, filepath.Join(dir, "out.tif"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Warp() error = %v, want deadline exceeded", err)
	}
}

func TestLayout(t *testing.T) {
	root := t.TempDir()
	l := Layout{Root: root}
	created, err := l.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(created) != 6 {
		t.Errorf("Create() made %d folders, want 6", len(created))
	}
	again, err := l.Create()
	if err != nil || len(again) != 0 {
		t.Errorf("second Create() = %v, %v, want nothing new", again, err)
	}
	if got := l.OutputDir("robinson"); got != filepath.Join(root, "Output", "Robinson") {
		t.Errorf("OutputDir(robinson) = %s", got)
	}

	for _, name := range []string{"b.tif", "a.TIFF", "notes.txt", MaskName} {
		if err := os.WriteFile(filepath.Join(l.InputDir(Robinson), name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := l.GeoTIFFs(Robinson)
	if err != nil {
		t.Fatalf("GeoTIFFs() error: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.TIFF" || filepath.Base(files[1]) != "b.tif" {
		t.Errorf("GeoTIFFs() = %v", files)
	}
}
