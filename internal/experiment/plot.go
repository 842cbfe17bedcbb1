package experiment

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderChart writes a grouped bar chart of mean iterations per problem
// size, one bar group per configuration, to the given image path (the
// extension selects the format, typically .png).
func RenderChart(path, title string, means []Mean) error {
	if len(means) == 0 {
		return fmt.Errorf("no results to plot")
	}

	sizes := uniqueSizes(means)
	byConfig := map[string]plotter.Values{
		ConfigBaseline: make(plotter.Values, len(sizes)),
		ConfigEnhanced: make(plotter.Values, len(sizes)),
	}
	index := make(map[int]int, len(sizes))
	for i, size := range sizes {
		index[size] = i
	}
	for _, m := range means {
		if vals, ok := byConfig[m.Config]; ok {
			vals[index[m.NumBlocks]] = m.Iterations
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Number of Blocks"
	p.Y.Label.Text = "Average Iterations"

	w := vg.Points(20)

	baseline, err := plotter.NewBarChart(byConfig[ConfigBaseline], w)
	if err != nil {
		return fmt.Errorf("baseline bars: %w", err)
	}
	baseline.LineStyle.Width = vg.Length(0)
	baseline.Color = plotutil.Color(0)
	baseline.Offset = -w / 2

	enhanced, err := plotter.NewBarChart(byConfig[ConfigEnhanced], w)
	if err != nil {
		return fmt.Errorf("enhanced bars: %w", err)
	}
	enhanced.LineStyle.Width = vg.Length(0)
	enhanced.Color = plotutil.Color(1)
	enhanced.Offset = w / 2

	p.Add(baseline, enhanced)
	p.Legend.Add(ConfigBaseline, baseline)
	p.Legend.Add(ConfigEnhanced, enhanced)
	p.Legend.Top = true

	labels := make([]string, len(sizes))
	for i, size := range sizes {
		labels[i] = fmt.Sprintf("%d", size)
	}
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

func uniqueSizes(means []Mean) []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, m := range means {
		if !seen[m.NumBlocks] {
			seen[m.NumBlocks] = true
			sizes = append(sizes, m.NumBlocks)
		}
	}
	sort.Ints(sizes)
	return sizes
}
