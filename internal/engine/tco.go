package engine

import "math"

// TCOYears is the fixed cost horizon.
const TCOYears = 5

// CostCategory splits cost items into direct and indirect spend.
type CostCategory string

const (
	CostDirect   CostCategory = "direct"
	CostIndirect CostCategory = "indirect"
)

// CostItem describes one line of the static cost-item table.
type CostItem struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Category CostCategory `json:"category"`
}

// YearCosts is one cost item's value per year. A missing entry in a
// solution's cost map reads as all zeros; sparse input never fails.
type YearCosts struct {
	Year1 float64 `json:"year1"`
	Year2 float64 `json:"year2"`
	Year3 float64 `json:"year3"`
	Year4 float64 `json:"year4"`
	Year5 float64 `json:"year5"`
}

func (y YearCosts) byYear() [TCOYears]float64 {
	return [TCOYears]float64{y.Year1, y.Year2, y.Year3, y.Year4, y.Year5}
}

// Solution is one user-defined competing option with its cost entries,
// keyed by cost-item id.
type Solution struct {
	ID    string               `json:"id"`
	Name  string               `json:"name"`
	Costs map[string]YearCosts `json:"costs"`
}

// TCOSummary is the per-solution rollup. FiveYearTotal always equals
// DirectTotal + IndirectTotal.
type TCOSummary struct {
	SolutionID    string            `json:"solution_id"`
	YearTotals    [TCOYears]float64 `json:"year_totals"`
	DirectTotal   float64           `json:"direct_costs_total"`
	IndirectTotal float64           `json:"indirect_costs_total"`
	FiveYearTotal float64           `json:"five_year_total"`
}

// ChartDataPoint is one year across all visible solutions, shaped for a
// charting surface: one numeric field per solution id.
type ChartDataPoint struct {
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

var costItems = []CostItem{
	{ID: "licensing", Title: "Licensing & subscriptions", Category: CostDirect},
	{ID: "implementation", Title: "Implementation & integration", Category: CostDirect},
	{ID: "infrastructure", Title: "Infrastructure & hosting", Category: CostDirect},
	{ID: "development", Title: "Development effort", Category: CostDirect},
	{ID: "maintenance", Title: "Maintenance & upgrades", Category: CostIndirect},
	{ID: "training", Title: "Training & enablement", Category: CostIndirect},
	{ID: "operations", Title: "Support & operations", Category: CostIndirect},
	{ID: "process_rework", Title: "Process rework & change management", Category: CostIndirect},
}

// CostItems returns the static cost-item table for the client.
func CostItems() []CostItem {
	return costItems
}

func costCategory(itemID string) (CostCategory, bool) {
	for _, item := range costItems {
		if item.ID == itemID {
			return item.Category, true
		}
	}
	return "", false
}

// SummarizeTCO rolls one solution's cost entries up into per-year totals,
// direct/indirect totals and the five-year total.
func SummarizeTCO(solution Solution) (*TCOSummary, error) {
	if solution.ID == "" {
		return nil, invalidInputf("solution id is empty")
	}

	summary := &TCOSummary{SolutionID: solution.ID}

	for itemID, costs := range solution.Costs {
		category, ok := costCategory(itemID)
		if !ok {
			return nil, invalidInputf("unknown cost item id %q", itemID)
		}

		for year, value := range costs.byYear() {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, invalidInputf("cost item %q year %d has a non-finite value", itemID, year+1)
			}
			summary.YearTotals[year] += value
			if category == CostDirect {
				summary.DirectTotal += value
			} else {
				summary.IndirectTotal += value
			}
		}
	}

	// Computed from the category totals so the equality with
	// direct + indirect holds exactly, not merely within float drift.
	summary.FiveYearTotal = summary.DirectTotal + summary.IndirectTotal

	return summary, nil
}

// BuildChartSeries produces one point per year with a value for each
// visible solution. Solutions toggled out of the visible set are omitted,
// not recomputed.
func BuildChartSeries(solutions []Solution, visibleIDs []string) ([]ChartDataPoint, error) {
	visible := make(map[string]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		visible[id] = struct{}{}
	}

	summaries := make([]*TCOSummary, 0, len(solutions))
	seen := make(map[string]struct{}, len(solutions))
	for _, solution := range solutions {
		if _, dup := seen[solution.ID]; dup {
			return nil, invalidInputf("duplicate solution id %q", solution.ID)
		}
		seen[solution.ID] = struct{}{}

		if _, ok := visible[solution.ID]; !ok {
			continue
		}
		summary, err := SummarizeTCO(solution)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	points := make([]ChartDataPoint, TCOYears)
	for year := 0; year < TCOYears; year++ {
		point := ChartDataPoint{
			Year:   year + 1,
			Values: make(map[string]float64, len(summaries)),
		}
		for _, summary := range summaries {
			point.Values[summary.SolutionID] = summary.YearTotals[year]
		}
		points[year] = point
	}

	return points, nil
}
