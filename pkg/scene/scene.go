// Package scene is the top-level orchestration of the pipeline: it wires
// the overlay matcher, the planar analyzer, z-order assignment, and the
// name binder into a single pure function, (grid, texts) -> []Drawable.
//
// The Options/Result/Stats shape is an idempotent ValidateAndSetDefaults,
// a Logger that defaults to a discard sink, and a Stats struct the caller
// can inspect without re-walking the output.
package scene

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/stencilgraph/stencilgraph/pkg/config"
	"github.com/stencilgraph/stencilgraph/pkg/drawable"
	"github.com/stencilgraph/stencilgraph/pkg/geom"
	"github.com/stencilgraph/stencilgraph/pkg/names"
	"github.com/stencilgraph/stencilgraph/pkg/overlay"
	"github.com/stencilgraph/stencilgraph/pkg/planar"
	"github.com/stencilgraph/stencilgraph/pkg/zorder"
)

// TextInput is a label produced by an upstream tokenizer, supplied
// alongside the grid.
type TextInput struct {
	X, Y    int
	Content string
}

// Options configures a single Parse call.
type Options struct {
	// Config carries the matcher's tunable constants. Zero value is
	// replaced by config.Default() in ValidateAndSetDefaults.
	Config config.Config
	// Logger receives non-fatal diagnostics (ambiguous z-order
	// warnings). Defaults to a discard sink.
	Logger *log.Logger
	// NameBinding selects BindInnermost (default) or BindDirectOnly.
	NameBinding NameBindingMode

	validated bool
}

// NameBindingMode selects which of the two name-binder variants Parse uses.
type NameBindingMode int

const (
	// BindInnermost is the default contract: a text names the innermost
	// (greatest z-order) containing polygon.
	BindInnermost NameBindingMode = iota
	// BindDirectOnly is the alternate "only directly containing" rule.
	BindDirectOnly
)

// ValidateAndSetDefaults fills in Config and Logger when unset. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() {
	if o.validated {
		return
	}
	if o.Config == (config.Config{}) {
		o.Config = config.Default()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
}

// Stats reports sizes and timings for a single Parse call.
type Stats struct {
	PolygonCount   int
	OpenGraphCount int
	TextCount      int
	Duration       time.Duration
}

// Result is the output of Parse.
type Result struct {
	Drawables []drawable.Drawable
	Stats     Stats
}

// Parse runs the full pipeline: matcher -> planar analyzer -> z-order ->
// name binder. It is a pure function of its inputs: no I/O, no mutation
// of shared state (the stencil catalog is rebuilt per call against
// opts.Config.Matcher so concurrent Parse calls with different tunables
// never race).
func Parse(grid []string, texts []TextInput, opts Options) (Result, error) {
	opts.ValidateAndSetDefaults()
	start := time.Now()

	catalog, err := overlay.BuildCatalog(opts.Config.Matcher.CrossingLength, opts.Config.Matcher.CrossingHeight)
	if err != nil {
		return Result{}, err
	}
	g := overlay.Match(overlay.Grid(grid), catalog)
	components := g.Components()
	rawPolygons, rawOpenGraphs := planar.Analyze(components)

	polygons := make([]*drawable.Polygon, 0, len(rawPolygons))
	for _, rp := range rawPolygons {
		polygons = append(polygons, drawable.NewPolygon(rp.Graph, rp))
	}
	openGraphs := make([]*drawable.OpenGraph, 0, len(rawOpenGraphs))
	for _, ro := range rawOpenGraphs {
		openGraphs = append(openGraphs, drawable.NewOpenGraph(ro))
	}

	ordered := make([]drawable.Drawable, 0, len(polygons)+len(openGraphs))
	for _, p := range polygons {
		ordered = append(ordered, p)
	}
	for _, o := range openGraphs {
		ordered = append(ordered, o)
	}
	zorder.AssignZOrder(opts.Logger, ordered)

	textDrawables := make([]*drawable.Text, 0, len(texts))
	for _, t := range texts {
		textDrawables = append(textDrawables, drawable.NewText(geom.NewPoint(float64(t.X), float64(t.Y)), t.Content))
	}
	switch opts.NameBinding {
	case BindDirectOnly:
		err = names.BindDirectOnly(polygons, openGraphs, textDrawables)
	default:
		err = names.BindInnermost(polygons, openGraphs, textDrawables)
	}
	if err != nil {
		return Result{}, err
	}

	all := make([]drawable.Drawable, 0, len(ordered)+len(textDrawables))
	all = append(all, ordered...)
	for _, t := range textDrawables {
		all = append(all, t)
	}

	return Result{
		Drawables: all,
		Stats: Stats{
			PolygonCount:   len(polygons),
			OpenGraphCount: len(openGraphs),
			TextCount:      len(textDrawables),
			Duration:       time.Since(start),
		},
	}, nil
}
