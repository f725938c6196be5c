// Package render draws resampled commit tables as PNG charts.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is wrapped by a RenderError when no category has commits to draw.
var ErrNoData = errors.New("no commits to plot")

// Style holds everything a Renderer needs to lay out panels.
type Style struct {
	PanelWidth  int
	PanelHeight int
	Palettes    []schema.Palette // Assigned to categories in order, cycling
}

// NewStyle derives a Style from the validated config.
func NewStyle(cfg *contract.Config) Style {
	return Style{
		PanelWidth:  cfg.PanelWidth,
		PanelHeight: cfg.PanelHeight,
		Palettes:    slices.Clone(cfg.Palettes),
	}
}

// Renderer draws one panel per category and stacks the panels vertically.
type Renderer struct {
	style Style
}

var _ contract.ChartRenderer = &Renderer{} // Compile-time check

// NewRenderer creates a Renderer with the given style.
func NewRenderer(style Style) *Renderer {
	if style.PanelWidth <= 0 {
		style.PanelWidth = contract.DefaultPanelWidth
	}
	if style.PanelHeight <= 0 {
		style.PanelHeight = contract.DefaultPanelHeight
	}
	return &Renderer{style: style}
}

// panelFunc renders the i-th category table into PNG bytes.
type panelFunc func(i int, t *schema.ResampledTable, w io.Writer) error

// RenderArea draws a stacked-area panel per category, one layer per repository.
func (r *Renderer) RenderArea(w io.Writer, tables []*schema.ResampledTable) error {
	return r.compose(w, schema.AreaChart, tables, r.areaPanel)
}

// RenderPie draws a pie panel per category with each repository's share of the window.
func (r *Renderer) RenderPie(w io.Writer, tables []*schema.ResampledTable) error {
	return r.compose(w, schema.PieChart, tables, r.piePanel)
}

// compose renders each non-empty table and writes the panels as a single PNG.
// Categories without commits in the window are left out.
func (r *Renderer) compose(w io.Writer, kind schema.ChartKind, tables []*schema.ResampledTable, panel panelFunc) error {
	var panels []image.Image
	for i, t := range tables {
		if t == nil || t.Total() == 0 {
			continue
		}
		var buf bytes.Buffer
		if err := panel(i, t, &buf); err != nil {
			return &contract.RenderError{Chart: kind, Err: fmt.Errorf("%s: %w", t.Category, err)}
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return &contract.RenderError{Chart: kind, Err: err}
		}
		panels = append(panels, img)
	}
	if len(panels) == 0 {
		return &contract.RenderError{Chart: kind, Err: ErrNoData}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, r.style.PanelWidth, r.style.PanelHeight*len(panels)))
	for i, img := range panels {
		offset := image.Pt(0, i*r.style.PanelHeight)
		draw.Draw(canvas, img.Bounds().Sub(img.Bounds().Min).Add(offset), img, img.Bounds().Min, draw.Src)
	}
	if err := png.Encode(w, canvas); err != nil {
		return &contract.RenderError{Chart: kind, Err: err}
	}
	return nil
}

func (r *Renderer) areaPanel(i int, t *schema.ResampledTable, w io.Writer) error {
	palette := paletteFor(r.style.Palettes, i)
	xs := bucketTimes(t.Buckets)

	// Layer k is the running sum of repositories 0..k, drawn largest first so
	// each smaller layer paints over the one beneath it.
	running := make([]float64, len(t.Buckets))
	layers := make([]chart.Series, len(t.Repos))
	for k, repo := range t.Repos {
		ys := make([]float64, len(running))
		for b := range running {
			running[b] += float64(t.Values[k][b])
			ys[b] = running[b]
		}
		color := shade(palette, k, len(t.Repos))
		layers[len(t.Repos)-1-k] = chart.TimeSeries{
			Name:    repo,
			Style:   chart.Style{StrokeColor: color, FillColor: color},
			XValues: xs,
			YValues: padSingle(ys),
		}
	}

	maxY := slices.Max(running)
	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (%s)", t.Category, t.Width),
		Width:  r.style.PanelWidth,
		Height: r.style.PanelHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: dateFormatter(t.Width.Layout()),
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: layers,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

func (r *Renderer) piePanel(i int, t *schema.ResampledTable, w io.Writer) error {
	palette := paletteFor(r.style.Palettes, i)
	totals := t.RepoTotals()

	var values []chart.Value
	for k, repo := range t.Repos {
		if totals[k] == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", repo, totals[k]),
			Value: float64(totals[k]),
			Style: chart.Style{FillColor: shade(palette, k, len(t.Repos))},
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("%s (%s)", t.Category, t.Width),
		Width:  r.style.PanelWidth,
		Height: r.style.PanelHeight,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

// bucketTimes converts bucket starts into UTC midnights. A single bucket is
// widened to span one day since a chart needs two distinct x values.
func bucketTimes(buckets []civil.Date) []time.Time {
	xs := make([]time.Time, len(buckets))
	for i, d := range buckets {
		xs[i] = d.In(time.UTC)
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0].AddDate(0, 0, 1))
	}
	return xs
}

// padSingle repeats a lone y value to pair with the widened x range.
func padSingle(ys []float64) []float64 {
	if len(ys) == 1 {
		return []float64{ys[0], ys[0]}
	}
	return ys
}

// dateFormatter formats x-axis ticks in UTC so labels match bucket starts.
func dateFormatter(layout string) chart.ValueFormatter {
	return func(v any) string {
		switch typed := v.(type) {
		case time.Time:
			return typed.UTC().Format(layout)
		case float64:
			return time.Unix(0, int64(typed)).UTC().Format(layout)
		case int64:
			return time.Unix(0, typed).UTC().Format(layout)
		}
		return ""
	}
}
