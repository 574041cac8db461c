package selection

// FeeLine is one charged item in the monthly breakdown.
// Amounts are tax-included yen.
type FeeLine struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type FeeBreakdown struct {
	Plan          *FeeLine  `json:"plan,omitempty"`
	CallingOption *FeeLine  `json:"calling_option,omitempty"`
	AddOns        []FeeLine `json:"add_ons"`
	Total         int       `json:"total"`
}

// Fee sums the selected plan, calling option and add-ons.
// References that resolve to nothing contribute zero, so the total
// is always the exact non-negative integer sum of what exists.
func (r *Resolver) Fee(st State) FeeBreakdown {
	breakdown := FeeBreakdown{AddOns: []FeeLine{}}

	if plan, ok := r.catalog.PlanByID(st.PlanID); ok {
		breakdown.Plan = &FeeLine{ID: plan.ID, Name: plan.Name, Amount: plan.MonthlyFee}
		breakdown.Total += plan.MonthlyFee
	}

	if opt, ok := r.catalog.OptionByID(st.CallingOptionID); ok && opt.Calling {
		breakdown.CallingOption = &FeeLine{ID: opt.ID, Name: opt.Name, Amount: opt.MonthlyFee}
		breakdown.Total += opt.MonthlyFee
	}

	for _, id := range st.AddOnOptionIDs {
		opt, ok := r.catalog.OptionByID(id)
		if !ok {
			continue
		}
		breakdown.AddOns = append(breakdown.AddOns, FeeLine{ID: opt.ID, Name: opt.Name, Amount: opt.MonthlyFee})
		breakdown.Total += opt.MonthlyFee
	}

	return breakdown
}
