// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/linkdash/internal/buildinfo.Version=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	Version = ""
	Date    = ""
	Commit  = ""
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(Date))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(Commit))
}

// Collector returns a linkdash_build_info gauge, constant 1, labelled with
// the build version and commit.
func Collector() prometheus.Collector {
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "linkdash",
		Name:      "build_info",
		Help:      "linkdash client build information.",
	}, []string{"version", "commit"})
	g.WithLabelValues(orNA(Version), orNA(Commit)).Set(1)
	return g
}
