package navigation

import "keiyaku/internal/selection"

// Wizard step paths, shared with the frontend router.
const (
	StepContractSelection   = "/contract-selection"
	StepProductSelection    = "/product-selection"
	StepEIDInput            = "/eid-input"
	StepCustomerInformation = "/customer-information"
)

// Decide picks the step after product selection. eSIM signups go
// through EID entry first; physical cards go straight to customer
// information.
func Decide(simType selection.SimType) string {
	if simType == selection.SimTypeEmbedded {
		return StepEIDInput
	}
	return StepCustomerInformation
}

// Known reports whether path is a wizard step. Used when reconciling
// the stored current path with browser back/forward navigation.
func Known(path string) bool {
	switch path {
	case StepContractSelection, StepProductSelection, StepEIDInput, StepCustomerInformation:
		return true
	}
	return false
}
