// Command specinfo prints spectral and chromaticity information.
//
// Usage:
//
//	specinfo [flags] [source ...]
//
// Each source is resolved like spectrum.Load: as a path, as a path with
// ".dat" appended, in MVTB_DATA_PATH, then in the embedded data set.
//
// Examples:
//
//	specinfo -list
//	specinfo solar redbrick
//	specinfo -fwhm 10 solar
//	specinfo -blackbody 6500
//	specinfo -image photo.png -maxdim 256
//	specinfo -locus
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/tahe0203/machinevision-toolbox/color/blackbody"
	"github.com/tahe0203/machinevision-toolbox/color/chroma"
	"github.com/tahe0203/machinevision-toolbox/color/data"
	"github.com/tahe0203/machinevision-toolbox/color/spectrum"
	"github.com/tahe0203/machinevision-toolbox/internal/config"
)

const (
	nm = 1e-9

	// swatchY is the luminance used for hex swatches.
	swatchY = 0.4
)

// visible is the axis used for chromaticity: 380–780 nm in 1 nm steps.
var visible = spectrum.Linspace(380*nm, 780*nm, 401)

type options struct {
	list      bool
	locus     bool
	blackbody float64
	image     string
	maxDim    int
	fwhm      float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	fs := flag.NewFlagSet("specinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.BoolVar(&opts.list, "list", false, "list embedded spectral tables")
	fs.BoolVar(&opts.locus, "locus", false, "print the spectral locus from 400 to 700 nm")
	fs.Float64Var(&opts.blackbody, "blackbody", 0, "print the chromaticity of a blackbody at this temperature [K]")
	fs.StringVar(&opts.image, "image", "", "print the mean rg chromaticity of an image file")
	fs.IntVar(&opts.maxDim, "maxdim", 0, "downsample images so neither side exceeds this many pixels")
	fs.Float64Var(&opts.fwhm, "fwhm", 0, "smooth sources with a Gaussian band-pass of this width [nm]")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: specinfo [flags] [source ...]\n\n")
		fmt.Fprintf(stderr, "Prints range, channels and chromaticity of spectral tables.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log.Debug("configuration", "data_path", cfg.DataPath, "args", fs.Args())

	if opts.list {
		printList(stdout)
		return 0
	}

	status := 0
	ran := false
	if opts.blackbody != 0 {
		ran = true
		if err := printBlackbody(stdout, opts.blackbody); err != nil {
			log.Error("blackbody failed", "temperature", opts.blackbody, "err", err)
			status = 1
		}
	}
	if opts.image != "" {
		ran = true
		if err := printImage(stdout, opts.image, opts.maxDim); err != nil {
			log.Error("image failed", "path", opts.image, "err", err)
			status = 1
		}
	}
	if opts.locus {
		ran = true
		if err := printLocus(stdout); err != nil {
			log.Error("locus failed", "err", err)
			status = 1
		}
	}

	names := fs.Args()
	if len(names) == 0 && !ran {
		names = data.Names()
	}
	if len(names) > 0 {
		if err := printSources(stdout, log, names, cfg.DataPath, opts.fwhm*nm); err != nil {
			status = 1
		}
	}
	return status
}

func printList(w io.Writer) {
	for _, n := range data.Names() {
		fmt.Fprintln(w, n)
	}
}

func printSources(w io.Writer, log *slog.Logger, names, dirs []string, fwhm float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Source\tFrom [nm]\tTo [nm]\tSamples\tChannels\tx\ty\tSwatch\n")
	fmt.Fprintf(tw, "------\t---------\t-------\t-------\t--------\t-\t-\t------\n")

	var failed error
	for _, name := range names {
		s, err := spectrum.Read(name, dirs)
		if err != nil {
			log.Warn("skipping source", "name", name, "err", err)
			failed = err
			continue
		}
		if fwhm > 0 {
			if sm, err := s.Smooth(fwhm); err != nil {
				log.Warn("not smoothing source", "name", name, "err", err)
			} else {
				s = sm
			}
		}

		lo, hi := s.Range()
		rows, cols := s.Shape()
		xs, ys, swatch := "-", "-", "-"
		if cols == 1 {
			xy, err := sourceXY(s)
			if err != nil {
				log.Warn("no chromaticity", "name", name, "err", err)
			} else {
				xs, ys = fmt.Sprintf("%.4f", xy[0]), fmt.Sprintf("%.4f", xy[1])
				swatch = chroma.Hex(xy, swatchY)
			}
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%d\t%d\t%s\t%s\t%s\n", s.Name, lo/nm, hi/nm, rows, cols, xs, ys, swatch)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return failed
}

func sourceXY(s *spectrum.Spectrum) (chroma.Coord, error) {
	v, err := spectrum.Resample(s, visible)
	if err != nil {
		return chroma.Coord{}, err
	}
	return chroma.SpectrumXY(v)
}

func printBlackbody(w io.Writer, T float64) error {
	if !(T > 0) {
		return fmt.Errorf("temperature must be > 0: %g", T)
	}
	s, err := blackbody.Source(visible, T)
	if err != nil {
		return err
	}
	xy, err := chroma.SpectrumXY(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "blackbody %gK: peak %.1f nm, x=%.4f y=%.4f %s\n",
		T, blackbody.Peak(T)/nm, xy[0], xy[1], chroma.Hex(xy, swatchY))
	return err
}

func printImage(w io.Writer, path string, maxDim int) error {
	img, err := imgio.Open(path)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		scale := float64(maxDim) / float64(max(b.Dx(), b.Dy()))
		nw := max(1, int(float64(b.Dx())*scale))
		nh := max(1, int(float64(b.Dy())*scale))
		img = transform.Resize(img, nw, nh, transform.Linear)
	}

	tri := chroma.FromImage(clone.AsRGBA(img))
	cc, err := chroma.Tristim2CCImage(tri)
	if err != nil {
		return err
	}
	mean := cc.Mean()
	rgb := tri.Mean()
	_, err = fmt.Fprintf(w, "%s: %dx%d, mean r=%.4f g=%.4f, mean RGB=(%.3f, %.3f, %.3f)\n",
		path, tri.W, tri.H, mean[0], mean[1], rgb[0], rgb[1], rgb[2])
	return err
}

func printLocus(w io.Writer) error {
	lam := spectrum.Linspace(400*nm, 700*nm, 31)
	locus, err := chroma.Locus(lam)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Lambda [nm]\tx\ty\tSwatch\n")
	fmt.Fprintf(tw, "-----------\t-\t-\t------\n")
	for i, c := range locus {
		fmt.Fprintf(tw, "%.0f\t%.4f\t%.4f\t%s\n", lam[i]/nm, c[0], c[1], chroma.Hex(c, swatchY))
	}
	return tw.Flush()
}
