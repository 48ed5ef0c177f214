// Package charts renders descriptive plots over the extracted register data:
// a per-member scatter of donation count against total value, average totals
// per party, and the total-value distribution for the four largest parties.
package charts

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/acollard/mp-register/internal/register"
)

// partyColors is the fixed party → bar color lookup, keyed on the raw party
// labels the roster uses.
var partyColors = map[string]color.RGBA{
	"Independent":                        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"Social Democratic and Labour Party": {R: 0x99, G: 0xCC, B: 0x33, A: 0xff},
	"Plaid Cymru":                        {R: 0x00, G: 0x81, B: 0x42, A: 0xff},
	"Scottish National Party":            {R: 0xFF, G: 0xFF, B: 0x00, A: 0xff},
	"DUP":                                {R: 0xD4, G: 0x6A, B: 0x4C, A: 0xff},
	"Democratic Unionist Party":          {R: 0xD4, G: 0x6A, B: 0x4C, A: 0xff},
	"Speaker":                            {R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	"Alliance":                           {R: 0xF6, G: 0xCB, B: 0x2F, A: 0xff},
	"Green":                              {R: 0x6A, G: 0xB0, B: 0x23, A: 0xff},
	"Alba":                               {R: 0x80, G: 0xAE, B: 0xBD, A: 0xff},
	"Liberal Democrats":                  {R: 0xFD, G: 0xBB, B: 0x30, A: 0xff},
	"Labour":                             {R: 0xDC, G: 0x24, B: 0x1f, A: 0xff},
	"Labour/Co-operative":                {R: 0xDC, G: 0x24, B: 0x1f, A: 0xff},
	"Sinn Féin":                          {R: 0x00, G: 0x88, B: 0x00, A: 0xff},
	"Conservative":                       {R: 0x00, G: 0x87, B: 0xDC, A: 0xff},
}

var colorGray = color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xff}

// boxPlotParties are the four parties whose total-value distributions the
// box plot compares.
var boxPlotParties = []string{
	"Labour", "Conservative", "Liberal Democrats", "Scottish National Party",
}

// ScatterOptions control outlier labeling on the per-member scatter.
type ScatterOptions struct {
	// ValueThreshold labels members whose total value exceeds it.
	ValueThreshold float64
	// CountThreshold labels members with more donations than it.
	CountThreshold int
	// AlwaysLabel is a member name labeled regardless of thresholds.
	AlwaysLabel string
}

// DefaultScatterOptions mirror the thresholds used for the published charts.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		ValueThreshold: 200000,
		CountThreshold: 40,
		AlwaysLabel:    "Johnson, Boris ",
	}
}

// Scatter renders (donation count, total value) per member, colored by
// party, labeling outliers per opts, and saves the chart to path.
func Scatter(members []*register.Member, opts ScatterOptions, path string) error {
	pts := make(plotter.XYs, 0, len(members))
	colors := make([]color.Color, 0, len(members))

	labelPts := plotter.XYs{}
	labelTexts := []string{}

	for _, m := range members {
		count := float64(len(m.Donations))
		total := m.TotalValue()

		pts = append(pts, plotter.XY{X: count, Y: total})
		colors = append(colors, scatterColor(m.Party))

		if total > opts.ValueThreshold || len(m.Donations) > opts.CountThreshold || m.Name == opts.AlwaysLabel {
			labelPts = append(labelPts, plotter.XY{X: count + 0.2, Y: total + 1000})
			labelTexts = append(labelTexts, m.Name)
		}
	}

	p := plot.New()
	p.Title.Text = "Financial interests per member"
	p.X.Label.Text = "Number of interests"
	p.Y.Label.Text = "Total value of financial interests (£)"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("building scatter: %w", err)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colors[i],
			Radius: vg.Points(3),
			Shape:  draw.CrossGlyph{},
		}
	}
	p.Add(sc)

	if len(labelTexts) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: labelTexts})
		if err != nil {
			return fmt.Errorf("building labels: %w", err)
		}
		p.Add(labels)
	}

	if err := p.Save(10*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("saving scatter: %w", err)
	}
	return nil
}

// PartyAverage is one party's mean total donations across its members.
type PartyAverage struct {
	Party   string
	Average float64
	Members int
}

// AveragesByParty computes the mean total donations per party, with synonym
// labels folded together, sorted ascending by average.
func AveragesByParty(members []*register.Member) []PartyAverage {
	totals := make(map[string]float64)
	counts := make(map[string]int)

	for _, m := range members {
		party := register.NormalizeParty(m.Party)
		totals[party] += m.TotalValue()
		counts[party]++
	}

	averages := make([]PartyAverage, 0, len(totals))
	for party, total := range totals {
		averages = append(averages, PartyAverage{
			Party:   party,
			Average: total / float64(counts[party]),
			Members: counts[party],
		})
	}
	sort.Slice(averages, func(i, j int) bool { return averages[i].Average < averages[j].Average })

	return averages
}

// PartyBars renders a horizontal bar chart of average total donations per
// party, sorted ascending, and saves it to path.
func PartyBars(members []*register.Member, path string) error {
	averages := AveragesByParty(members)
	if len(averages) == 0 {
		return fmt.Errorf("no members to chart")
	}

	p := plot.New()
	p.Title.Text = "Average total donations by party"
	p.X.Label.Text = "Average total donations (£)"

	names := make([]string, len(averages))
	for i, avg := range averages {
		names[i] = avg.Party

		// One single-valued bar chart per party so each bar keeps its
		// party color.
		values := make(plotter.Values, len(averages))
		values[i] = avg.Average

		bars, err := plotter.NewBarChart(values, vg.Points(15))
		if err != nil {
			return fmt.Errorf("building bars: %w", err)
		}
		bars.Horizontal = true
		bars.Color = barColor(avg.Party)
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalY(names...)

	if err := p.Save(10*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("saving bar chart: %w", err)
	}
	return nil
}

// PartyBox renders box plots of the total-value distributions for the four
// largest parties and saves them to path.
func PartyBox(members []*register.Member, path string) error {
	byParty := make(map[string]plotter.Values)
	for _, m := range members {
		party := register.NormalizeParty(m.Party)
		for _, target := range boxPlotParties {
			if party == target {
				byParty[party] = append(byParty[party], m.TotalValue())
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Total value of financial interests by party"
	p.Y.Label.Text = "Total value of financial interests (£)"

	for i, party := range boxPlotParties {
		values := byParty[party]
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(20), float64(i), values)
		if err != nil {
			return fmt.Errorf("building box plot for %s: %w", party, err)
		}
		p.Add(box)
	}
	p.NominalX(boxPlotParties...)

	if err := p.Save(10*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("saving box plot: %w", err)
	}
	return nil
}

// scatterColor keeps the scatter readable by coloring only the three
// dominant parties and graying the rest.
func scatterColor(party string) color.Color {
	switch register.NormalizeParty(party) {
	case "Labour", "Conservative", "Scottish National Party":
		return barColor(party)
	default:
		return colorGray
	}
}

func barColor(party string) color.Color {
	if c, ok := partyColors[party]; ok {
		return c
	}
	return colorGray
}
