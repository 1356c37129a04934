package cli

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"

	"github.com/gomagick/gomagick/pkg/magick"
)

// Version is the release version. Overridable at link time:
//
//	-ldflags "-X github.com/gomagick/gomagick/pkg/cli.Version=1.2.3"
var Version = "0.1.0"

const (
	projectURL    = "https://github.com/gomagick/gomagick"
	copyrightLine = "Copyright: (C) 2025-2026 GoMagick contributors"
	licenseLine   = "License: MIT"
	releaseDate   = "2026-08-23"
)

// versionString renders the ImageMagick-shaped banner line that legacy
// scripts grep for. The leading "6." pins the compatibility target.
func versionString() string {
	v, err := semver.Parse(Version)
	if err != nil {
		v = semver.Version{}
	}
	return fmt.Sprintf("GoMagick 6.%d.%d-%d Q16 %s %s %s",
		v.Major, v.Minor, v.Patch, runtime.GOARCH, releaseDate, projectURL)
}

func printVersion() {
	fmt.Println("Version: " + versionString())
	fmt.Println(copyrightLine)
	fmt.Println(licenseLine)
}

func printHelp(binName string) {
	printVersion()
	fmt.Printf("Usage: %s [options ...] file [options ...] file\n", binName)
	fmt.Println()
	fmt.Println("Image Operators:")
	for _, entry := range magick.HelpEntries() {
		fmt.Printf("  -%-19s %s\n", entry[0], entry[1])
	}
}
