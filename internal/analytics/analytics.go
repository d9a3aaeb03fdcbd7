// Package analytics reduces a user's holdings into the aggregated report
// served by the analytics endpoint. All computation is pure: fetch, reduce,
// return, no persistence writes and no caching.
package analytics

import (
	"time"

	"github.com/tomazk/holdings/internal/model"
)

// Portfolio holds one user's complete set of holdings.
type Portfolio struct {
	Lands        []model.Land
	Labours      []model.Labour
	Capitals     []model.Capital
	Technologies []model.Technology
	Information  []model.Information
	Businesses   []model.Business
	Contents     []model.Content
}

// Report is the composed analytics payload.
type Report struct {
	TotalValue           float64              `json:"totalValue"`
	ResourceDistribution []CategoryValue      `json:"resourceDistribution"`
	CapitalByType        []CapitalTypeAmount  `json:"capitalByType"`
	MonthlyTrends        []MonthlyTrend       `json:"monthlyTrends"`
	BusinessPerformance  []BusinessPerf       `json:"businessPerformance"`
	LabourDistribution   []DepartmentGroup    `json:"labourDistribution"`
	TechnologyStatus     []StatusCount        `json:"technologyStatus"`
	Summary              Summary              `json:"summary"`
}

// CategoryValue is one valued resource category's share of the portfolio.
type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// CapitalTypeAmount is the summed amount of one capital type.
type CapitalTypeAmount struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// MonthlyTrend is the activity recorded in one calendar month.
type MonthlyTrend struct {
	Month      string  `json:"month"`
	Lands      int     `json:"lands"`
	Capital    float64 `json:"capital"`
	Businesses int     `json:"businesses"`
}

// BusinessPerf is one business's revenue, value, and return on investment.
type BusinessPerf struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Value   float64 `json:"value"`
	ROI     float64 `json:"roi"`
}

// DepartmentGroup is the headcount and payroll of one department.
type DepartmentGroup struct {
	Department  string  `json:"department"`
	Count       int     `json:"count"`
	TotalSalary float64 `json:"totalSalary"`
}

// StatusCount is the number of technology assets in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Summary holds the portfolio-wide totals.
type Summary struct {
	TotalResources int     `json:"totalResources"`
	TotalEmployees int     `json:"totalEmployees"`
	TotalPayroll   float64 `json:"totalPayroll"`
	AverageROI     float64 `json:"averageROI"`
}

// trendMonths is the size of the rolling monthly-trend window, including the
// current month.
const trendMonths = 6

// Compute reduces a portfolio into its report. The trend window ends at the
// calendar month of now, in now's location.
func Compute(p Portfolio, now time.Time) *Report {
	landValue := 0.0
	for _, l := range p.Lands {
		landValue += l.Value
	}
	capitalValue := 0.0
	for _, c := range p.Capitals {
		capitalValue += c.Amount
	}
	techValue := 0.0
	for _, t := range p.Technologies {
		techValue += t.PurchasePrice
	}
	businessValue := 0.0
	for _, b := range p.Businesses {
		businessValue += b.CurrentValue
	}

	// Zero-value categories are dropped so proportion displays don't show
	// empty slices.
	distribution := []CategoryValue{}
	for _, c := range []CategoryValue{
		{Name: "Land", Value: landValue, Count: len(p.Lands)},
		{Name: "Capital", Value: capitalValue, Count: len(p.Capitals)},
		{Name: "Technology", Value: techValue, Count: len(p.Technologies)},
		{Name: "Businesses", Value: businessValue, Count: len(p.Businesses)},
	} {
		if c.Value > 0 {
			distribution = append(distribution, c)
		}
	}

	performance := make([]BusinessPerf, 0, len(p.Businesses))
	roiSum := 0.0
	for _, b := range p.Businesses {
		roi := businessROI(b)
		roiSum += roi
		revenue := 0.0
		if b.AnnualRevenue != nil {
			revenue = *b.AnnualRevenue
		}
		performance = append(performance, BusinessPerf{
			Name:    b.Name,
			Revenue: revenue,
			Value:   b.CurrentValue,
			ROI:     roi,
		})
	}
	averageROI := 0.0
	if len(performance) > 0 {
		averageROI = roiSum / float64(len(performance))
	}

	totalPayroll := 0.0
	for _, l := range p.Labours {
		totalPayroll += l.Salary
	}

	return &Report{
		TotalValue:           landValue + capitalValue + techValue + businessValue,
		ResourceDistribution: distribution,
		CapitalByType:        capitalByType(p.Capitals),
		MonthlyTrends:        monthlyTrends(p, now),
		BusinessPerformance:  performance,
		LabourDistribution:   labourDistribution(p.Labours),
		TechnologyStatus:     technologyStatus(p.Technologies),
		Summary: Summary{
			TotalResources: len(p.Lands) + len(p.Labours) + len(p.Capitals) +
				len(p.Technologies) + len(p.Information) + len(p.Businesses) + len(p.Contents),
			TotalEmployees: len(p.Labours),
			TotalPayroll:   totalPayroll,
			AverageROI:     averageROI,
		},
	}
}

// businessROI computes a business's return on investment as a percentage.
// Businesses with no current value report 0. Zero-investment businesses also
// report 0: the percentage is undefined there, and clamping keeps the payload
// encodable (JSON has no Inf).
func businessROI(b model.Business) float64 {
	if b.CurrentValue <= 0 || b.InvestmentAmount == 0 {
		return 0
	}
	return (b.CurrentValue - b.InvestmentAmount) / b.InvestmentAmount * 100
}

// capitalByType groups capital amounts by type, preserving first-seen order.
func capitalByType(capitals []model.Capital) []CapitalTypeAmount {
	groups := []CapitalTypeAmount{}
	index := map[string]int{}
	for _, c := range capitals {
		i, ok := index[c.Type]
		if !ok {
			i = len(groups)
			index[c.Type] = i
			groups = append(groups, CapitalTypeAmount{Type: c.Type})
		}
		groups[i].Amount += c.Amount
	}
	return groups
}

// labourDistribution groups labour rows by department, preserving first-seen order.
func labourDistribution(labours []model.Labour) []DepartmentGroup {
	groups := []DepartmentGroup{}
	index := map[string]int{}
	for _, l := range labours {
		i, ok := index[l.Department]
		if !ok {
			i = len(groups)
			index[l.Department] = i
			groups = append(groups, DepartmentGroup{Department: l.Department})
		}
		groups[i].Count++
		groups[i].TotalSalary += l.Salary
	}
	return groups
}

// technologyStatus counts technology assets per status, preserving first-seen order.
func technologyStatus(techs []model.Technology) []StatusCount {
	groups := []StatusCount{}
	index := map[string]int{}
	for _, t := range techs {
		i, ok := index[t.Status]
		if !ok {
			i = len(groups)
			index[t.Status] = i
			groups = append(groups, StatusCount{Status: t.Status})
		}
		groups[i].Count++
	}
	return groups
}

// monthlyTrends buckets creation activity into the last trendMonths calendar
// months, oldest first. Bucketing compares YYYY-MM keys derived from each
// row's creation timestamp in now's location.
func monthlyTrends(p Portfolio, now time.Time) []MonthlyTrend {
	loc := now.Location()
	year, month, _ := now.Date()
	current := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	trends := make([]MonthlyTrend, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		key := current.AddDate(0, -i, 0).Format("2006-01")
		t := MonthlyTrend{Month: key}
		for _, l := range p.Lands {
			if monthKey(l.CreatedAt, loc) == key {
				t.Lands++
			}
		}
		for _, c := range p.Capitals {
			if monthKey(c.CreatedAt, loc) == key {
				t.Capital += c.Amount
			}
		}
		for _, b := range p.Businesses {
			if monthKey(b.CreatedAt, loc) == key {
				t.Businesses++
			}
		}
		trends = append(trends, t)
	}
	return trends
}

func monthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01")
}
