package selection

import (
	"testing"

	"keiyaku/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Plans: []catalog.Plan{
			{ID: "plan-v10-k5", Name: "音声10GB+5分かけ放題セット", MonthlyFee: 2398, SimCardType: catalog.SimCardVoice, BundledCallingOptionID: "opt-kakeho-5"},
			{ID: "plan-v10-op-k5", Name: "音声10GBオフピーク+5分かけ放題セット", MonthlyFee: 2002, SimCardType: catalog.SimCardVoice, OffPeak: true, BundledCallingOptionID: "opt-kakeho-5"},
			{ID: "plan-v3", Name: "音声3GB", MonthlyFee: 1078, SimCardType: catalog.SimCardVoice},
			{ID: "plan-v10-op", Name: "音声10GBオフピーク", MonthlyFee: 1562, SimCardType: catalog.SimCardVoice, OffPeak: true},
			{ID: "plan-d3", Name: "データ3GB", MonthlyFee: 858, SimCardType: catalog.SimCardData},
		},
		Options: []catalog.Option{
			{ID: "opt-kakeho-5", Name: "5分かけ放題", MonthlyFee: 550, Calling: true, RequiresVoiceSim: true},
			{ID: "opt-kakeho-full", Name: "完全かけ放題", MonthlyFee: 1870, Calling: true, RequiresVoiceSim: true},
			{ID: "opt-voicemail", Name: "留守番電話", MonthlyFee: 330, RequiresVoiceSim: true},
			{ID: "opt-security", Name: "データセキュリティ", MonthlyFee: 440},
		},
	}
}

func TestEligiblePlansVoiceNormal(t *testing.T) {
	r := NewResolver(testCatalog())

	groups := r.EligiblePlans(catalog.SimCardVoice, PlanCategoryNormal)

	if len(groups.Bundle) != 1 || groups.Bundle[0].ID != "plan-v10-k5" {
		t.Fatalf("unexpected bundle group: %+v", groups.Bundle)
	}
	if len(groups.Normal) != 1 || groups.Normal[0].ID != "plan-v3" {
		t.Fatalf("unexpected normal group: %+v", groups.Normal)
	}
}

func TestEligiblePlansVoiceOffPeak(t *testing.T) {
	r := NewResolver(testCatalog())

	groups := r.EligiblePlans(catalog.SimCardVoice, PlanCategoryOffPeak)

	if len(groups.Bundle) != 1 || groups.Bundle[0].ID != "plan-v10-op-k5" {
		t.Fatalf("unexpected bundle group: %+v", groups.Bundle)
	}
	if len(groups.Normal) != 1 || groups.Normal[0].ID != "plan-v10-op" {
		t.Fatalf("unexpected normal group: %+v", groups.Normal)
	}
}

func TestEligiblePlansDataHasNoBundles(t *testing.T) {
	r := NewResolver(testCatalog())

	groups := r.EligiblePlans(catalog.SimCardData, PlanCategoryNormal)

	if len(groups.Bundle) != 0 {
		t.Fatalf("bundle plans offered for data sim: %+v", groups.Bundle)
	}
	if len(groups.Normal) != 1 || groups.Normal[0].ID != "plan-d3" {
		t.Fatalf("unexpected normal group: %+v", groups.Normal)
	}
}

func TestEligiblePlansNeverMismatch(t *testing.T) {
	r := NewResolver(testCatalog())

	for _, sct := range []catalog.SimCardType{catalog.SimCardVoice, catalog.SimCardData} {
		for _, cat := range []PlanCategory{PlanCategoryNormal, PlanCategoryOffPeak} {
			groups := r.EligiblePlans(sct, cat)
			offPeak := cat == PlanCategoryOffPeak

			for _, p := range groups.Bundle {
				if p.OffPeak != offPeak || !p.IsBundle() {
					t.Fatalf("%s/%s: bad bundle plan %+v", sct, cat, p)
				}
			}
			for _, p := range groups.Normal {
				if p.OffPeak != offPeak || p.SimCardType != sct || p.IsBundle() {
					t.Fatalf("%s/%s: bad normal plan %+v", sct, cat, p)
				}
			}
		}
	}
}

func TestEligiblePlansWithoutSimCardType(t *testing.T) {
	r := NewResolver(testCatalog())

	groups := r.EligiblePlans("", PlanCategoryNormal)
	if len(groups.Bundle) != 0 || len(groups.Normal) != 0 {
		t.Fatalf("expected empty groups, got %+v", groups)
	}
}

func TestEligibleCallingOptions(t *testing.T) {
	r := NewResolver(testCatalog())

	st := State{SimCardType: catalog.SimCardVoice, PlanID: "plan-v3"}
	options := r.EligibleCallingOptions(st)
	if len(options) != 2 {
		t.Fatalf("expected 2 calling options, got %d", len(options))
	}

	// bundle plan already includes calling minutes
	st.PlanID = "plan-v10-k5"
	if got := r.EligibleCallingOptions(st); got != nil {
		t.Fatalf("calling options offered for bundle plan: %+v", got)
	}

	// data sim has no voice calling
	st = State{SimCardType: catalog.SimCardData, PlanID: "plan-d3"}
	if got := r.EligibleCallingOptions(st); got != nil {
		t.Fatalf("calling options offered for data sim: %+v", got)
	}
}

func TestEligibleAddOnOptions(t *testing.T) {
	r := NewResolver(testCatalog())

	voice := r.EligibleAddOnOptions(catalog.SimCardVoice)
	if len(voice) != 1 || voice[0].ID != "opt-voicemail" {
		t.Fatalf("unexpected voice add-ons: %+v", voice)
	}

	data := r.EligibleAddOnOptions(catalog.SimCardData)
	if len(data) != 1 || data[0].ID != "opt-security" {
		t.Fatalf("unexpected data add-ons: %+v", data)
	}
}

func TestEligibleSimCardTypes(t *testing.T) {
	r := NewResolver(testCatalog())

	if got := r.EligibleSimCardTypes(ContractNew); len(got) != 2 {
		t.Fatalf("expected voice and data for new contracts, got %+v", got)
	}
	if got := r.EligibleSimCardTypes(ContractMNP); len(got) != 1 || got[0] != catalog.SimCardVoice {
		t.Fatalf("expected voice only for mnp, got %+v", got)
	}
}

func TestNilCatalogDegradesToEmpty(t *testing.T) {
	r := NewResolver(nil)

	if groups := r.EligiblePlans(catalog.SimCardVoice, PlanCategoryNormal); len(groups.Bundle)+len(groups.Normal) != 0 {
		t.Fatalf("expected empty groups")
	}
	if got := r.EligibleAddOnOptions(catalog.SimCardVoice); got != nil {
		t.Fatalf("expected no add-ons, got %+v", got)
	}
	if fee := r.Fee(State{PlanID: "plan-v3"}); fee.Total != 0 {
		t.Fatalf("expected zero fee, got %d", fee.Total)
	}
}
