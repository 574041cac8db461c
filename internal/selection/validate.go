package selection

import "keiyaku/internal/catalog"

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Validate is the pre-submit gate. It reports per-field problems and
// never mutates state; an empty result means the selection may be
// submitted.
func (r *Resolver) Validate(ct ContractType, st State) FieldErrors {
	errs := FieldErrors{}

	switch st.SimType {
	case SimTypePhysical, SimTypeEmbedded:
	default:
		errs["sim_type"] = "sim type is required"
	}

	switch st.SimCardType {
	case catalog.SimCardVoice:
	case catalog.SimCardData:
		if ct != ContractNew {
			errs["sim_card_type"] = "data sim card requires a new contract"
		}
	default:
		errs["sim_card_type"] = "sim card type is required"
	}

	switch st.PlanCategory {
	case PlanCategoryNormal:
	case PlanCategoryOffPeak:
		if st.SimCardType == catalog.SimCardData {
			errs["plan_category"] = "off-peak plans are voice only"
		}
	default:
		errs["plan_category"] = "plan category is required"
	}

	r.validatePlan(st, errs)
	r.validateCallingOption(st, errs)
	r.validateAddOns(st, errs)

	return errs
}

func (r *Resolver) validatePlan(st State, errs FieldErrors) {
	if st.PlanID == "" {
		errs["plan_id"] = "plan is required"
		return
	}
	groups := r.EligiblePlans(st.SimCardType, st.PlanCategory)
	for _, p := range append(groups.Bundle, groups.Normal...) {
		if p.ID == st.PlanID {
			return
		}
	}
	errs["plan_id"] = "plan is not available for the current selection"
}

func (r *Resolver) validateCallingOption(st State, errs FieldErrors) {
	if st.CallingOptionID == "" {
		return
	}
	if !r.CallingOptionSelectable(st) {
		errs["calling_option_id"] = "calling option is not available for the current selection"
		return
	}
	if opt, ok := r.catalog.OptionByID(st.CallingOptionID); !ok || !opt.Calling {
		errs["calling_option_id"] = "unknown calling option"
	}
}

func (r *Resolver) validateAddOns(st State, errs FieldErrors) {
	voice := st.SimCardType == catalog.SimCardVoice
	for _, id := range st.AddOnOptionIDs {
		opt, ok := r.catalog.OptionByID(id)
		if !ok || opt.Calling {
			errs["add_on_option_ids"] = "unknown add-on option"
			return
		}
		if opt.RequiresVoiceSim != voice {
			errs["add_on_option_ids"] = "add-on does not match the sim card type"
			return
		}
	}
}
