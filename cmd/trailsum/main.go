package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"trailviewer/internal/source"
	"trailviewer/internal/trail"

	"github.com/schollz/progressbar/v3"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("trailsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", ".", "root directory holding the trails")
	glob := fs.String("glob", "*.gpx", "glob of GPX files relative to -dir")
	asJSON := fs.Bool("json", false, "print a JSON array of summaries")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx := context.Background()
	src := source.NewLocal(*dir)
	names, err := src.List(ctx, *glob)
	if err != nil {
		fmt.Fprintf(stderr, "list %s: %v\n", *glob, err)
		return 1
	}

	bar := newBar(len(names), stderr)
	summaries := make([]trail.Summary, 0, len(names))
	for _, name := range names {
		data, err := source.ReadAll(ctx, src, name)
		if err != nil {
			fmt.Fprintf(stderr, "\n%v\n", err)
			return 1
		}
		t, err := trail.Parse(path.Base(name), data)
		if err != nil {
			fmt.Fprintf(stderr, "\n%v\n", err)
			return 1
		}
		summaries = append(summaries, t.Summary())
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(stderr)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summaries); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 1
		}
		return 0
	}
	for _, s := range summaries {
		fmt.Fprintf(stdout, "%s\t%s\t%.5f,%.5f\n", s.Name, s.LengthLabel, s.Centre.Lat, s.Centre.Lon)
	}
	return 0
}

func newBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionSetDescription("[GPX] summarize"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}
