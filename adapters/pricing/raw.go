// Package pricing - Raw engine output types
// This is the authoritative engine's JSON shape, decoded as-is and
// normalized elsewhere. All cost fields arrive as decimal strings.
package pricing

// RawBreakdown is the engine's top-level breakdown output
type RawBreakdown struct {
	Currency         string       `json:"currency"`
	Projects         []RawProject `json:"projects"`
	TotalMonthlyCost *string      `json:"totalMonthlyCost"`
}

// RawProject is one priced project
type RawProject struct {
	Name      string              `json:"name"`
	Breakdown RawProjectBreakdown `json:"breakdown"`
}

// RawProjectBreakdown holds the per-resource costs of a project
type RawProjectBreakdown struct {
	Resources        []RawResource `json:"resources"`
	TotalMonthlyCost *string       `json:"totalMonthlyCost"`
}

// RawResource is one priced resource
type RawResource struct {
	Name           string             `json:"name"`
	MonthlyCost    *string            `json:"monthlyCost"`
	CostComponents []RawCostComponent `json:"costComponents"`
	SubResources   []RawResource      `json:"subresources"`
}

// RawCostComponent is one line item of a priced resource
type RawCostComponent struct {
	Name            string  `json:"name"`
	Unit            string  `json:"unit"`
	MonthlyQuantity *string `json:"monthlyQuantity"`
	MonthlyCost     *string `json:"monthlyCost"`
}
