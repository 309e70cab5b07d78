// Package catalog holds the static list of Charty chart pages.
package catalog

import "path"

// Entry describes one chart documentation page.
type Entry struct {
	Category    string // sub-directory and Kotlin package suffix, e.g. "bar"
	FileName    string
	Title       string
	Description string
}

// RelativePath returns the page location below the docs base directory.
func (e Entry) RelativePath() string {
	return path.Join(e.Category, e.FileName)
}

var entries = []Entry{
	{"bar", "stacked-bar-chart.md", "Stacked Bar Chart", "Display multiple data series stacked vertically"},
	{"bar", "comparison-bar-chart.md", "Comparison Bar Chart", "Compare multiple series side-by-side"},
	{"bar", "lollipop-bar-chart.md", "Lollipop Bar Chart", "Minimalist bar chart with lollipop-style markers"},
	{"bar", "waterfall-chart.md", "Waterfall Chart", "Show cumulative effect of sequential values"},
	{"bar", "wavy-chart.md", "Wavy Chart", "Bars with decorative wavy tops"},
	{"bar", "bubble-bar-chart.md", "Bubble Bar Chart", "Bars with bubble indicators"},
	{"bar", "mosaic-bar-chart.md", "Mosaic Bar Chart", "Bars with mosaic pattern styling"},
	{"bar", "span-chart.md", "Span Chart", "Visualize ranges or time spans"},

	{"line", "line-chart.md", "Line Chart", "Classic line chart connecting data points"},
	{"line", "area-chart.md", "Area Chart", "Line chart with filled area below"},
	{"line", "multiline-chart.md", "Multiline Chart", "Display multiple data series"},
	{"line", "stacked-area-chart.md", "Stacked Area Chart", "Multiple series stacked"},

	{"point", "point-chart.md", "Point Chart", "Scatter plot visualization"},
	{"point", "bubble-chart.md", "Bubble Chart", "Size-based data points"},

	{"pie", "pie-chart.md", "Pie Chart", "Circular sector representation"},

	{"radar", "radar-chart.md", "Radar Chart", "Multi-axis spider/web chart"},
	{"radar", "multiple-radar-chart.md", "Multiple Radar Chart", "Compare multiple datasets"},

	{"candlestick", "candlestick-chart.md", "Candlestick Chart", "Financial OHLC data visualization"},

	{"combo", "combo-chart.md", "Combo Chart", "Combine multiple chart types"},

	{"block", "block-bar.md", "Block Bar", "Block-style bar visualization"},

	{"circular", "circular-progress.md", "Circular Progress", "Animated circular progress indicator"},
}

// All returns a copy of the catalog in declaration order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}
