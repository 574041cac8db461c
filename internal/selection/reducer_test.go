package selection

import (
	"testing"

	"keiyaku/internal/catalog"
)

func voiceSelection() State {
	return State{
		SimType:         SimTypePhysical,
		SimCardType:     catalog.SimCardVoice,
		PlanCategory:    PlanCategoryNormal,
		PlanID:          "plan-v3",
		CallingOptionID: "opt-kakeho-5",
		AddOnOptionIDs:  []string{"opt-voicemail"},
	}
}

func TestSwitchToDataResetsDownstream(t *testing.T) {
	r := NewResolver(testCatalog())

	st := r.Apply(voiceSelection(), Event{Kind: EventSetSimCardType, Value: string(catalog.SimCardData)})

	if st.SimCardType != catalog.SimCardData {
		t.Fatalf("sim card type not applied")
	}
	if st.PlanCategory != PlanCategoryNormal {
		t.Fatalf("expected normal category, got %s", st.PlanCategory)
	}
	if st.PlanID != "" || st.CallingOptionID != "" || len(st.AddOnOptionIDs) != 0 {
		t.Fatalf("downstream fields not cleared: %+v", st)
	}
	if fee := r.Fee(st); fee.Total != 0 {
		t.Fatalf("expected zero fee after reset, got %d", fee.Total)
	}
}

func TestSwitchBackToVoiceAlsoClears(t *testing.T) {
	r := NewResolver(testCatalog())

	st := State{
		SimCardType:    catalog.SimCardData,
		PlanCategory:   PlanCategoryNormal,
		PlanID:         "plan-d3",
		AddOnOptionIDs: []string{"opt-security"},
	}
	st = r.Apply(st, Event{Kind: EventSetSimCardType, Value: string(catalog.SimCardVoice)})

	if st.PlanID != "" || len(st.AddOnOptionIDs) != 0 {
		t.Fatalf("downstream fields not cleared: %+v", st)
	}
}

func TestSameSimCardTypeIsNoOp(t *testing.T) {
	r := NewResolver(testCatalog())

	before := voiceSelection()
	after := r.Apply(before, Event{Kind: EventSetSimCardType, Value: string(catalog.SimCardVoice)})

	if after.PlanID != before.PlanID || len(after.AddOnOptionIDs) != 1 {
		t.Fatalf("re-selecting the same sim card type must not reset: %+v", after)
	}
}

func TestPlanCategoryChangeClearsPlan(t *testing.T) {
	r := NewResolver(testCatalog())

	st := r.Apply(voiceSelection(), Event{Kind: EventSetPlanCategory, Value: string(PlanCategoryOffPeak)})

	if st.PlanCategory != PlanCategoryOffPeak {
		t.Fatalf("plan category not applied")
	}
	if st.PlanID != "" {
		t.Fatalf("plan not cleared on category change")
	}
}

func TestOffPeakIgnoredForDataSim(t *testing.T) {
	r := NewResolver(testCatalog())

	st := State{SimCardType: catalog.SimCardData, PlanCategory: PlanCategoryNormal, PlanID: "plan-d3"}
	st = r.Apply(st, Event{Kind: EventSetPlanCategory, Value: string(PlanCategoryOffPeak)})

	if st.PlanCategory != PlanCategoryNormal || st.PlanID != "plan-d3" {
		t.Fatalf("off-peak must not apply to data sim: %+v", st)
	}
}

func TestBundlePlanClearsCallingOption(t *testing.T) {
	r := NewResolver(testCatalog())

	st := r.Apply(voiceSelection(), Event{Kind: EventSetPlan, Value: "plan-v10-k5"})

	if st.PlanID != "plan-v10-k5" {
		t.Fatalf("plan not applied")
	}
	if st.CallingOptionID != "" {
		t.Fatalf("calling option kept with bundle plan")
	}
}

func TestSinglePlanKeepsCallingOption(t *testing.T) {
	r := NewResolver(testCatalog())

	st := voiceSelection()
	st = r.Apply(st, Event{Kind: EventSetPlan, Value: "plan-v3"})

	if st.CallingOptionID != "opt-kakeho-5" {
		t.Fatalf("calling option dropped for single plan")
	}
}

func TestAddOnToggleIdempotent(t *testing.T) {
	r := NewResolver(testCatalog())

	st := voiceSelection()

	st = r.Apply(st, Event{Kind: EventToggleAddOn, Value: "opt-voicemail", Selected: true})
	if len(st.AddOnOptionIDs) != 1 {
		t.Fatalf("re-selecting duplicated the add-on: %v", st.AddOnOptionIDs)
	}

	st = r.Apply(st, Event{Kind: EventToggleAddOn, Value: "opt-security", Selected: false})
	if len(st.AddOnOptionIDs) != 1 {
		t.Fatalf("deselecting an absent id changed the set: %v", st.AddOnOptionIDs)
	}

	st = r.Apply(st, Event{Kind: EventToggleAddOn, Value: "opt-voicemail", Selected: false})
	if len(st.AddOnOptionIDs) != 0 {
		t.Fatalf("deselect did not remove the add-on: %v", st.AddOnOptionIDs)
	}
}

func TestAddOnToggleDoesNotTouchOtherFields(t *testing.T) {
	r := NewResolver(testCatalog())

	before := voiceSelection()
	after := r.Apply(before, Event{Kind: EventToggleAddOn, Value: "opt-security", Selected: true})

	if after.PlanID != before.PlanID || after.CallingOptionID != before.CallingOptionID {
		t.Fatalf("toggle changed unrelated fields: %+v", after)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	r := NewResolver(testCatalog())

	before := voiceSelection()
	_ = r.Apply(before, Event{Kind: EventToggleAddOn, Value: "opt-security", Selected: true})

	if len(before.AddOnOptionIDs) != 1 || before.AddOnOptionIDs[0] != "opt-voicemail" {
		t.Fatalf("input state mutated: %v", before.AddOnOptionIDs)
	}
}

func TestUnknownEventIgnored(t *testing.T) {
	r := NewResolver(testCatalog())

	before := voiceSelection()
	after := r.Apply(before, Event{Kind: "set_color", Value: "red"})

	if after.PlanID != before.PlanID || after.SimCardType != before.SimCardType {
		t.Fatalf("unknown event changed state: %+v", after)
	}
}
