package selection

import "keiyaku/internal/catalog"

type EventKind string

const (
	EventSetSimType       EventKind = "set_sim_type"
	EventSetSimCardType   EventKind = "set_sim_card_type"
	EventSetPlanCategory  EventKind = "set_plan_category"
	EventSetPlan          EventKind = "set_plan"
	EventSetCallingOption EventKind = "set_calling_option"
	EventToggleAddOn      EventKind = "toggle_add_on"
)

// Event is one field edit from the product-selection form.
// Value carries the new enum value or the plan/option id;
// Selected is only read for toggle_add_on.
type Event struct {
	Kind     EventKind `json:"kind"`
	Value    string    `json:"value"`
	Selected bool      `json:"selected,omitempty"`
}

// Apply runs one event through the cascading-reset rules and returns
// the next state. The input state is not modified. Unknown event
// kinds are ignored.
//
// Reset cascade, highest priority first:
//  1. SIM card type change clears the plan and all add-ons; the data
//     SIM additionally forces the normal plan category.
//  2. Plan category change clears the plan.
//  3. A plan that is not a selectable single plan (bundle, unknown or
//     cleared) clears the calling option.
//  4. Add-on toggles are idempotent set membership changes and touch
//     nothing else.
func (r *Resolver) Apply(st State, ev Event) State {
	switch ev.Kind {
	case EventSetSimType:
		st.SimType = SimType(ev.Value)

	case EventSetSimCardType:
		st = r.applySimCardType(st, catalog.SimCardType(ev.Value))

	case EventSetPlanCategory:
		st = r.applyPlanCategory(st, PlanCategory(ev.Value))

	case EventSetPlan:
		st = r.applyPlan(st, ev.Value)

	case EventSetCallingOption:
		st.CallingOptionID = ev.Value

	case EventToggleAddOn:
		st = applyAddOnToggle(st, ev.Value, ev.Selected)
	}

	return st
}

func (r *Resolver) applySimCardType(st State, v catalog.SimCardType) State {
	if v == st.SimCardType {
		return st
	}
	st.SimCardType = v
	if v == catalog.SimCardData {
		st.PlanCategory = PlanCategoryNormal
	}
	return r.clearPlan(st)
}

func (r *Resolver) applyPlanCategory(st State, v PlanCategory) State {
	if v == st.PlanCategory {
		return st
	}
	// off-peak is a voice-only lineup
	if v == PlanCategoryOffPeak && st.SimCardType == catalog.SimCardData {
		return st
	}
	st.PlanCategory = v
	return r.clearPlan(st)
}

func (r *Resolver) applyPlan(st State, id string) State {
	st.PlanID = id
	if !r.singlePlan(id) {
		st.CallingOptionID = ""
	}
	return st
}

// clearPlan empties the plan reference and everything downstream of
// it that can no longer be valid.
func (r *Resolver) clearPlan(st State) State {
	st.AddOnOptionIDs = []string{}
	return r.applyPlan(st, "")
}

// singlePlan reports whether id references a plan that allows a
// separate calling option.
func (r *Resolver) singlePlan(id string) bool {
	plan, ok := r.catalog.PlanByID(id)
	return ok && !plan.IsBundle()
}

func applyAddOnToggle(st State, id string, selected bool) State {
	if id == "" {
		return st
	}

	if selected {
		if st.HasAddOn(id) {
			return st
		}
		ids := make([]string, 0, len(st.AddOnOptionIDs)+1)
		ids = append(ids, st.AddOnOptionIDs...)
		st.AddOnOptionIDs = append(ids, id)
		return st
	}

	ids := make([]string, 0, len(st.AddOnOptionIDs))
	for _, v := range st.AddOnOptionIDs {
		if v != id {
			ids = append(ids, v)
		}
	}
	st.AddOnOptionIDs = ids
	return st
}
