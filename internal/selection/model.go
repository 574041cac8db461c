package selection

import "keiyaku/internal/catalog"

// SimType is the SIM delivery form: a physical card or an eSIM.
type SimType string

const (
	SimTypePhysical SimType = "physical"
	SimTypeEmbedded SimType = "embedded"
)

// PlanCategory selects between the normal and off-peak plan lineups.
// Off-peak is a voice-only variant.
type PlanCategory string

const (
	PlanCategoryNormal  PlanCategory = "normal"
	PlanCategoryOffPeak PlanCategory = "off_peak"
)

// ContractType comes from the preceding wizard step. Data SIM cards
// are only offered on new contracts, not number portability.
type ContractType string

const (
	ContractNew ContractType = "new"
	ContractMNP ContractType = "mnp"
)

// State is the user's in-progress product selection. Zero-value
// fields mean "not chosen yet"; the resolver tolerates any partial
// state.
type State struct {
	SimType         SimType             `json:"sim_type"`
	SimCardType     catalog.SimCardType `json:"sim_card_type"`
	PlanCategory    PlanCategory        `json:"plan_category"`
	PlanID          string              `json:"plan_id"`
	CallingOptionID string              `json:"calling_option_id"`
	AddOnOptionIDs  []string            `json:"add_on_option_ids"`
}

func NewState() State {
	return State{
		PlanCategory:   PlanCategoryNormal,
		AddOnOptionIDs: []string{},
	}
}

func (s State) HasAddOn(id string) bool {
	for _, v := range s.AddOnOptionIDs {
		if v == id {
			return true
		}
	}
	return false
}
