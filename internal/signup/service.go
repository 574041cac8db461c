package signup

import (
	"context"

	"keiyaku/internal/catalog"
	"keiyaku/internal/currency"
	"keiyaku/internal/navigation"
	"keiyaku/internal/selection"
	"keiyaku/internal/session"
)

// Service runs the product-selection wizard step: it joins the
// cached catalog with the visitor's session and drives the pure
// resolver for eligibility, state transitions and pricing.
type Service struct {
	sessions session.Repository
	catalog  *catalog.Service
}

func NewService(sessions session.Repository, catalogService *catalog.Service) *Service {
	return &Service{sessions: sessions, catalog: catalogService}
}

// StepView is everything the step needs to render: current state,
// the filtered choice lists and the running fee.
type StepView struct {
	ContractType   selection.ContractType `json:"contract_type"`
	State          selection.State        `json:"state"`
	SimCardTypes   []catalog.SimCardType  `json:"sim_card_types"`
	Plans          selection.PlanGroups   `json:"plans"`
	CallingOptions []catalog.Option       `json:"calling_options"`
	AddOnOptions   []catalog.Option       `json:"add_on_options"`
	Fee            FeeView                `json:"fee"`
}

type FeeLineView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Amount  int    `json:"amount"`
	Display string `json:"display"`
}

type FeeView struct {
	Plan          *FeeLineView  `json:"plan,omitempty"`
	CallingOption *FeeLineView  `json:"calling_option,omitempty"`
	AddOns        []FeeLineView `json:"add_ons"`
	Total         int           `json:"total"`
	TotalDisplay  string        `json:"total_display"`
}

// SubmitResult is either a navigation target or the field errors
// blocking submission.
type SubmitResult struct {
	Next        string                `json:"next,omitempty"`
	FieldErrors selection.FieldErrors `json:"field_errors,omitempty"`
}

func (s *Service) View(ctx context.Context, sessionID string) (*StepView, error) {
	sess, resolver, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildView(resolver, sess), nil
}

// ApplyEvent runs one field edit through the reducer, persists the
// resulting state and returns the recomputed view.
func (s *Service) ApplyEvent(ctx context.Context, sessionID string, ev selection.Event) (*StepView, error) {
	sess, resolver, store, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := resolver.Apply(sess.Selection, ev)
	if err := store.SetSelection(ctx, next); err != nil {
		return nil, err
	}

	sess.Selection = next
	return buildView(resolver, sess), nil
}

// Submit validates the selection. On success it records the next
// wizard step as the current path and hands the decision back; on
// failure nothing is cleared and the field errors are returned.
func (s *Service) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	sess, resolver, store, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if errs := resolver.Validate(sess.ContractType, sess.Selection); len(errs) > 0 {
		return &SubmitResult{FieldErrors: errs}, nil
	}

	next := navigation.Decide(sess.Selection.SimType)
	if err := store.SetCurrentPath(ctx, next); err != nil {
		return nil, err
	}

	return &SubmitResult{Next: next}, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*session.Session, *selection.Resolver, *session.Store, error) {
	cat, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	store := session.NewStore(s.sessions, sessionID)
	if err := store.Hydrate(ctx); err != nil {
		return nil, nil, nil, err
	}

	sess, _ := store.Get()
	return &sess, selection.NewResolver(cat), store, nil
}

func buildView(r *selection.Resolver, sess *session.Session) *StepView {
	st := sess.Selection

	return &StepView{
		ContractType:   sess.ContractType,
		State:          st,
		SimCardTypes:   r.EligibleSimCardTypes(sess.ContractType),
		Plans:          r.EligiblePlans(st.SimCardType, st.PlanCategory),
		CallingOptions: r.EligibleCallingOptions(st),
		AddOnOptions:   r.EligibleAddOnOptions(st.SimCardType),
		Fee:            buildFeeView(r.Fee(st)),
	}
}

func buildFeeView(b selection.FeeBreakdown) FeeView {
	view := FeeView{
		AddOns:       []FeeLineView{},
		Total:        b.Total,
		TotalDisplay: currency.YenPerMonth(b.Total),
	}

	if b.Plan != nil {
		view.Plan = feeLineView(*b.Plan)
	}
	if b.CallingOption != nil {
		view.CallingOption = feeLineView(*b.CallingOption)
	}
	for _, line := range b.AddOns {
		view.AddOns = append(view.AddOns, *feeLineView(line))
	}

	return view
}

func feeLineView(line selection.FeeLine) *FeeLineView {
	return &FeeLineView{
		ID:      line.ID,
		Name:    line.Name,
		Amount:  line.Amount,
		Display: currency.Yen(line.Amount),
	}
}
