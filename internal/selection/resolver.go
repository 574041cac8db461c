package selection

import "keiyaku/internal/catalog"

// Resolver derives eligibility lists and pricing from the immutable
// catalog and the current selection state. Pure derivation: no I/O,
// no mutation, and no errors — a nil catalog or a partial state
// yields empty lists and zero fees.
type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// PlanGroups are the two displayed plan sections. Bundle plans
// (voice-only, calling allowance included) precede normal plans.
type PlanGroups struct {
	Bundle []catalog.Plan `json:"bundle"`
	Normal []catalog.Plan `json:"normal"`
}

// EligiblePlans filters the catalog for the current SIM card type and
// plan category, preserving catalog order. Bundle plans are only
// offered for voice SIM cards.
func (r *Resolver) EligiblePlans(simCardType catalog.SimCardType, category PlanCategory) PlanGroups {
	var groups PlanGroups
	if r.catalog == nil || simCardType == "" {
		return groups
	}

	offPeak := category == PlanCategoryOffPeak

	for _, p := range r.catalog.Plans {
		if p.OffPeak != offPeak {
			continue
		}
		if p.IsBundle() {
			if simCardType == catalog.SimCardVoice {
				groups.Bundle = append(groups.Bundle, p)
			}
			continue
		}
		if p.SimCardType == simCardType {
			groups.Normal = append(groups.Normal, p)
		}
	}

	return groups
}

// CallingOptionSelectable reports whether a separate calling option
// may be chosen: voice SIM and a selected plan that is not a bundle.
func (r *Resolver) CallingOptionSelectable(st State) bool {
	if st.SimCardType != catalog.SimCardVoice {
		return false
	}
	plan, ok := r.catalog.PlanByID(st.PlanID)
	return ok && !plan.IsBundle()
}

// EligibleCallingOptions lists the calling options for the current
// state. The "none" choice is implicit (empty calling option id).
func (r *Resolver) EligibleCallingOptions(st State) []catalog.Option {
	if r.catalog == nil || !r.CallingOptionSelectable(st) {
		return nil
	}

	var options []catalog.Option
	for _, o := range r.catalog.Options {
		if o.Calling {
			options = append(options, o)
		}
	}
	return options
}

// EligibleAddOnOptions lists non-calling options matching the
// voice/data partition of the given SIM card type.
func (r *Resolver) EligibleAddOnOptions(simCardType catalog.SimCardType) []catalog.Option {
	if r.catalog == nil || simCardType == "" {
		return nil
	}

	voice := simCardType == catalog.SimCardVoice

	var options []catalog.Option
	for _, o := range r.catalog.Options {
		if !o.Calling && o.RequiresVoiceSim == voice {
			options = append(options, o)
		}
	}
	return options
}

// EligibleSimCardTypes gates the data SIM behind new contracts.
func (r *Resolver) EligibleSimCardTypes(ct ContractType) []catalog.SimCardType {
	if ct == ContractNew {
		return []catalog.SimCardType{catalog.SimCardVoice, catalog.SimCardData}
	}
	return []catalog.SimCardType{catalog.SimCardVoice}
}
