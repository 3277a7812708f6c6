package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r3"

	"tsurf-renderer/internal/pick"
	"tsurf-renderer/internal/tsurf"
)

func main() {
	computeNormals := pflag.Bool("normals", false, "Compute point normals")
	noShare := pflag.Bool("duplicate-atoms", false, "Give ATOM records their own point")
	keepNoData := pflag.Bool("keep-nodata", false, "Keep NO_DATA_VALUES sentinels instead of NaN")
	asJSON := pflag.Bool("json", false, "Print properties and stats as JSON")
	pickKind := pflag.String("pick", "", "Cast a ray with a cell, point or world picker")
	rayArg := pflag.String("ray", "", "Ray as ox,oy,oz,dx,dy,dz (used with --pick)")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [flags] surface.ts")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	opts := tsurf.DefaultOptions()
	opts.ComputeNormals = *computeNormals
	opts.ShareAtomPoints = !*noShare
	opts.NoDataToNaN = !*keepNoData

	code := inspect(pflag.Arg(0), opts, *asJSON, *pickKind, *rayArg)
	glog.Flush()
	os.Exit(code)
}

func inspect(path string, opts tsurf.Options, asJSON bool, pickKind, rayArg string) int {
	res, err := tsurf.ParseFile(path, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	m := res.Mesh

	if asJSON {
		out, err := json.MarshalIndent(struct {
			Stats      tsurf.Stats          `json:"stats"`
			Properties []tsurf.PropertyInfo `json:"properties"`
		}{res.Stats, res.Properties}, "", "  ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("Points: %d, Triangles: %d, Skipped: %d\n",
			m.NumPoints(), m.NumTriangles(), res.Stats.SkippedTriangleCount)
		if m.NumPoints() != res.Stats.VertexCount {
			fmt.Printf("  (%d vertices before normal splitting)\n", res.Stats.VertexCount)
		}
		lo, hi := m.Bounds()
		fmt.Printf("BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo.X, hi.X, lo.Y, hi.Y, lo.Z, hi.Z)
		fmt.Printf("Normals: %v\n", m.Normals != nil)

		for _, p := range res.Properties {
			a := m.Array(p.Name)
			line := fmt.Sprintf("  %-20s size=%d", p.Name, p.Size)
			if p.Unit != "" {
				line += " unit=" + p.Unit
			}
			if p.Kind != "" {
				line += " kind=" + p.Kind
			}
			if p.NoData != nil {
				line += fmt.Sprintf(" nodata=%g", *p.NoData)
			}
			if a != nil {
				if lo, hi, ok := a.Range(); ok {
					line += fmt.Sprintf(" range=[%g, %g]", lo, hi)
				} else {
					line += " range=empty"
				}
			}
			if p.Name == m.ActiveScalars {
				line += " (active)"
			}
			fmt.Println(line)
		}
	}

	if pickKind == "" {
		return 0
	}
	kind, err := pick.ParseKind(pickKind)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	ray, err := parseRay(rayArg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	hit := pick.New(kind, m).Pick(ray)
	if !hit.Hit {
		fmt.Printf("Pick (%s): miss\n", kind)
		return 0
	}
	fmt.Printf("Pick (%s): position=(%.3f, %.3f, %.3f) distance=%.3f", kind,
		hit.Position.X, hit.Position.Y, hit.Position.Z, hit.Distance)
	switch kind {
	case pick.Cell:
		fmt.Printf(" cell=%d", hit.CellID)
	case pick.Point:
		fmt.Printf(" point=%d", hit.PointID)
	}
	fmt.Println()
	return 0
}

// parseRay reads "ox,oy,oz,dx,dy,dz"; the direction is normalized.
func parseRay(s string) (pick.Ray, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return pick.Ray{}, fmt.Errorf("ray: want 6 comma-separated numbers, got %q", s)
	}
	var v [6]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return pick.Ray{}, fmt.Errorf("ray: %w", err)
		}
		v[i] = f
	}
	dir := r3.Vec{X: v[3], Y: v[4], Z: v[5]}
	if r3.Norm(dir) == 0 {
		return pick.Ray{}, fmt.Errorf("ray: zero direction")
	}
	return pick.Ray{
		Origin: r3.Vec{X: v[0], Y: v[1], Z: v[2]},
		Dir:    r3.Unit(dir),
	}, nil
}
