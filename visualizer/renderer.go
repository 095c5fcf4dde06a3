// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"html"
	"net/http"

	"github.com/0xsoniclabs/randgen/sampler"
	"github.com/0xsoniclabs/randgen/statistics/convergence"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTML references for the rendered pages.
const distributionRef = "distribution"
const cdfRef = "cdf"
const summaryRef = "summary"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>randgen: Weighted Sampler</title>
  </head>
  <body>
    <h1>randgen: Weighted Sampler</h1>
    <ul>
    <li> <h3> <a href="/` + distributionRef + `"> Assigned vs. Empirical Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + cdfRef + `"> Cumulative Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + summaryRef + `"> Goodness of Fit </a> </h3> </li>
    </ul>
</body>
</html>
`

var toolbox = charts.WithToolboxOpts(opts.Toolbox{
	Show: true,
	Feature: &opts.ToolBoxFeature{
		SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
			Show:  true,
			Title: "Save",
		},
		DataZoom: &opts.ToolBoxFeatureDataZoom{
			Show: true,
		},
	},
})

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertBarData produces a bar series.
func convertBarData(data []float64) []opts.BarData {
	items := []opts.BarData{}
	for _, x := range data {
		items = append(items, opts.BarData{Value: x})
	}
	return items
}

// convertCDFData converts CDF points to chart points.
func convertCDFData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newDistributionChart compares assigned probabilities with observed frequencies.
func newDistributionChart(view *viewState) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Distribution",
	}),
		toolbox,
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Distribution of " + view.title,
			Subtitle: fmt.Sprintf("%d draws", view.draws),
		}))
	bar.SetXAxis(view.labels).
		AddSeries("Assigned", convertBarData(view.assigned)).
		AddSeries("Empirical", convertBarData(view.empirical))
	return bar
}

// newCDFChart plots assigned and observed cumulative distribution over the
// relative table position.
func newCDFChart(view *viewState) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		toolbox,
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Cumulative Distribution of " + view.title,
		}))
	chart.AddSeries("Assigned", convertCDFData(view.cdf)).
		AddSeries("Empirical", convertCDFData(view.empiricalCDF))
	return chart
}

// renderDistribution renders assigned and empirical distribution.
func renderDistribution(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newDistributionChart(view).Render(w)
}

// renderCDF renders the cumulative distribution.
func renderCDF(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newCDFChart(view).Render(w)
}

// renderSummary renders the goodness of fit of the draws.
func renderSummary(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
  <body>
    <h1>Goodness of Fit: %s</h1>
    <p>draws: %d</p>
    <p>chi-square: %.4f</p>
    <p>p-value: %.4f</p>
  </body>
</html>
`, html.EscapeString(view.title), view.draws, view.chiSquare, view.pValue)
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", renderMain)
	mux.HandleFunc("/"+distributionRef, renderDistribution)
	mux.HandleFunc("/"+cdfRef, renderCDF)
	mux.HandleFunc("/"+summaryRef, renderSummary)
	return mux
}

// FireUpWeb serves the charts of a sampler and the histogram of its draws
// on the given port.
func FireUpWeb(title string, s *sampler.Sampler, hist *convergence.Histogram[sampler.Number], addr string) error {
	if err := setViewState(title, s, hist); err != nil {
		return err
	}
	return http.ListenAndServe(":"+addr, newMux())
}
