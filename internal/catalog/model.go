package catalog

// SimCardType partitions plans and add-on options between voice and
// data-only SIM cards.
type SimCardType string

const (
	SimCardVoice SimCardType = "voice"
	SimCardData  SimCardType = "data"
)

// Plan is one selectable rate plan. Fees are tax-included yen.
type Plan struct {
	ID                     string      `json:"id"`
	Name                   string      `json:"name"`
	MonthlyFee             int         `json:"monthly_fee"`
	SimCardType            SimCardType `json:"sim_card_type"`
	OffPeak                bool        `json:"off_peak"`
	BundledCallingOptionID string      `json:"bundled_calling_option_id,omitempty"`
}

// IsBundle reports whether the plan already includes a calling
// allowance. Bundle plans are voice-only and exclude a separate
// calling option.
func (p Plan) IsBundle() bool {
	return p.BundledCallingOptionID != ""
}

// Option is a monthly add-on. Calling options are mutually exclusive
// with each other; non-calling options are partitioned by
// RequiresVoiceSim.
type Option struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MonthlyFee       int    `json:"monthly_fee"`
	Calling          bool   `json:"calling"`
	RequiresVoiceSim bool   `json:"requires_voice_sim"`
}

// Catalog is the full plan/option listing for one signup session.
// Immutable after load; order is the display order.
type Catalog struct {
	Plans   []Plan   `json:"planInfos"`
	Options []Option `json:"optionInfos"`
}

func (c *Catalog) PlanByID(id string) (Plan, bool) {
	if c == nil || id == "" {
		return Plan{}, false
	}
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func (c *Catalog) OptionByID(id string) (Option, bool) {
	if c == nil || id == "" {
		return Option{}, false
	}
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
