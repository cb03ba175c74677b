package tracker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/nutrition"
	applog "github.com/janisto/diet-planner/internal/platform/logging"
	"github.com/janisto/diet-planner/internal/report"
	"github.com/janisto/diet-planner/internal/store"
)

var errEmptyDietName = errors.New("diet name must not be empty")

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal_error"
	}
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator sets the generator for profile and diet identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// Tracker implements Service over an in-memory state tree persisted through
// a store.Gateway. Reads share a read lock; mutations are serialized.
type Tracker struct {
	mu      sync.RWMutex
	gateway store.Gateway
	state   store.State
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() string
}

// New loads the saved state through gw. A load failure is logged and the
// tracker starts empty; it is never returned to the caller.
func New(ctx context.Context, gw store.Gateway, builtin *catalog.Catalog, opts ...Option) *Tracker {
	t := &Tracker{
		gateway: gw,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}

	s, err := gw.Load(ctx)
	if err != nil {
		applog.LogWarn(ctx, "failed to load saved state, starting empty", zap.Error(err))
		s = store.EmptyState()
	}
	if s.CurrentProfileID != "" && profileIndex(s, s.CurrentProfileID) < 0 {
		s.CurrentProfileID = ""
	}
	t.state = s
	t.catalog = builtin.WithCustom(s.CustomFoods)
	return t
}

// State returns a copy of the current state.
func (t *Tracker) State() store.State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.Clone()
}

// commit saves next and makes it the current state. Save failures are logged
// and the in-memory state still advances. Callers hold t.mu.
func (t *Tracker) commit(ctx context.Context, next store.State) {
	if err := t.gateway.Save(ctx, next); err != nil {
		applog.LogError(ctx, "failed to save state", err)
	}
	t.state = next
	t.catalog = t.catalog.WithCustom(next.CustomFoods)
}

func profileIndex(s store.State, id string) int {
	return slices.IndexFunc(s.Profiles, func(p diet.Profile) bool {
		return p.ID == id
	})
}

func (t *Tracker) profile(id string) (diet.Profile, error) {
	i := profileIndex(t.state, id)
	if i < 0 {
		return diet.Profile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	return t.state.Profiles[i], nil
}

func (t *Tracker) audit(ctx context.Context, action, resource, id string, err error, details map[string]any) {
	if err != nil {
		if details == nil {
			details = map[string]any{}
		}
		details["error"] = categorizeError(err)
		applog.LogAuditEvent(ctx, action, resource, id, applog.AuditFailure, details)
		return
	}
	applog.LogAuditEvent(ctx, action, resource, id, applog.AuditSuccess, details)
}

// PreviewGoals runs the energy model without touching the state.
func (t *Tracker) PreviewGoals(_ context.Context, req GoalsRequest) (nutrition.Estimate, error) {
	u, err := req.UserData()
	if err != nil {
		return nutrition.Estimate{}, err
	}
	return nutrition.EstimateFor(u), nil
}

// ListProfiles returns every profile in creation order.
func (t *Tracker) ListProfiles(_ context.Context) []diet.Profile {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.Clone().Profiles
}

// GetProfile returns one profile.
func (t *Tracker) GetProfile(_ context.Context, profileID string) (diet.Profile, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, err := t.profile(profileID)
	if err != nil {
		return diet.Profile{}, err
	}
	return p.Clone(), nil
}

// CreateProfile adds a profile with derived goals and selects it.
func (t *Tracker) CreateProfile(ctx context.Context, req CreateProfileRequest) (diet.Profile, error) {
	u, err := req.UserData()
	if err != nil {
		t.audit(ctx, "create", applog.ResourceProfile, "", err, nil)
		return diet.Profile{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p := diet.NewProfile(t.newID(), u, t.now())
	next := t.state.Clone()
	next.Profiles = append(next.Profiles, p)
	next.CurrentProfileID = p.ID
	t.commit(ctx, next)

	t.audit(ctx, "create", applog.ResourceProfile, p.ID, nil, nil)
	return p.Clone(), nil
}

// UpdateProfile replaces a profile's user data and recomputes its goals. An
// unknown profile is a no-op and reports false.
func (t *Tracker) UpdateProfile(ctx context.Context, profileID string, req UpdateProfileRequest) (diet.Profile, bool, error) {
	u, err := req.UserData()
	if err != nil {
		t.audit(ctx, "update", applog.ResourceProfile, profileID, err, nil)
		return diet.Profile{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := profileIndex(t.state, profileID)
	if i < 0 {
		applog.LogAuditEvent(ctx, "update", applog.ResourceProfile, profileID, applog.AuditNoop, nil)
		return diet.Profile{}, false, nil
	}
	next := t.state.Clone()
	next.Profiles[i] = next.Profiles[i].WithUserData(u)
	t.commit(ctx, next)

	t.audit(ctx, "update", applog.ResourceProfile, profileID, nil, nil)
	return next.Profiles[i].Clone(), true, nil
}

// DeleteProfile removes a profile and its diets. When it was the current
// profile the first remaining profile, if any, becomes current. Deleting an
// unknown profile is a no-op.
func (t *Tracker) DeleteProfile(ctx context.Context, profileID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if profileIndex(t.state, profileID) < 0 {
		applog.LogAuditEvent(ctx, "delete", applog.ResourceProfile, profileID, applog.AuditNoop, nil)
		return nil
	}
	next := t.state.Clone()
	next.Profiles = slices.DeleteFunc(next.Profiles, func(p diet.Profile) bool {
		return p.ID == profileID
	})
	if next.CurrentProfileID == profileID {
		next.CurrentProfileID = ""
		if len(next.Profiles) > 0 {
			next.CurrentProfileID = next.Profiles[0].ID
		}
	}
	t.commit(ctx, next)

	t.audit(ctx, "delete", applog.ResourceProfile, profileID, nil,
		map[string]any{"currentProfileId": next.CurrentProfileID})
	return nil
}

// CurrentProfile returns the selected profile.
func (t *Tracker) CurrentProfile(_ context.Context) (diet.Profile, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state.CurrentProfileID == "" {
		return diet.Profile{}, fmt.Errorf("current profile: %w", ErrNotFound)
	}
	p, err := t.profile(t.state.CurrentProfileID)
	if err != nil {
		return diet.Profile{}, err
	}
	return p.Clone(), nil
}

// SelectProfile makes an existing profile the current one. An unknown
// profile leaves the selection unchanged and reports false.
func (t *Tracker) SelectProfile(ctx context.Context, profileID string) (diet.Profile, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.profile(profileID)
	if err != nil {
		applog.LogAuditEvent(ctx, "select", applog.ResourceCurrentProfile, profileID, applog.AuditNoop, nil)
		return diet.Profile{}, false, nil
	}
	next := t.state.Clone()
	next.CurrentProfileID = profileID
	t.commit(ctx, next)

	t.audit(ctx, "select", applog.ResourceCurrentProfile, profileID, nil, nil)
	return p.Clone(), true, nil
}

// ListDiets returns the diets of a profile in creation order.
func (t *Tracker) ListDiets(_ context.Context, profileID string) ([]diet.DailyDiet, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, err := t.profile(profileID)
	if err != nil {
		return nil, err
	}
	return p.Clone().Diets, nil
}

// GetDiet returns one diet of a profile.
func (t *Tracker) GetDiet(_ context.Context, profileID, dietID string) (diet.DailyDiet, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d, err := t.diet(profileID, dietID)
	if err != nil {
		return diet.DailyDiet{}, err
	}
	return d.Clone(), nil
}

func (t *Tracker) diet(profileID, dietID string) (diet.DailyDiet, error) {
	p, err := t.profile(profileID)
	if err != nil {
		return diet.DailyDiet{}, err
	}
	d, ok := p.Diet(dietID)
	if !ok {
		return diet.DailyDiet{}, fmt.Errorf("diet %q: %w", dietID, ErrNotFound)
	}
	return d, nil
}

// CreateDiet appends an empty diet with the four canonical meals. An unknown
// profile is a no-op and reports false.
func (t *Tracker) CreateDiet(ctx context.Context, profileID string, req CreateDietRequest) (diet.DailyDiet, bool, error) {
	if err := req.Validate(); err != nil {
		t.audit(ctx, "create", applog.ResourceDiet, "", err, map[string]any{"profileId": profileID})
		return diet.DailyDiet{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := profileIndex(t.state, profileID)
	if i < 0 {
		applog.LogAuditEvent(ctx, "create", applog.ResourceDiet, "", applog.AuditNoop,
			map[string]any{"profileId": profileID})
		return diet.DailyDiet{}, false, nil
	}
	d := diet.NewDiet(t.newID(), strings.TrimSpace(req.Name), t.now())
	next := t.state.Clone()
	next.Profiles[i] = diet.AppendDiet(next.Profiles[i], d)
	t.commit(ctx, next)

	t.audit(ctx, "create", applog.ResourceDiet, d.ID, nil, map[string]any{"profileId": profileID})
	return d.Clone(), true, nil
}

// ReplaceDiet replaces the diet with the same id as req.Diet. The meal layout
// is normalized to the four canonical meals. An unknown profile or diet is a
// no-op and reports false.
func (t *Tracker) ReplaceDiet(ctx context.Context, profileID string, req ReplaceDietRequest) (diet.DailyDiet, bool, error) {
	dietID := req.Diet.ID
	details := map[string]any{"profileId": profileID}
	if err := req.Validate(); err != nil {
		t.audit(ctx, "replace", applog.ResourceDiet, dietID, err, details)
		return diet.DailyDiet{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := profileIndex(t.state, profileID)
	if i < 0 {
		applog.LogAuditEvent(ctx, "replace", applog.ResourceDiet, dietID, applog.AuditNoop, details)
		return diet.DailyDiet{}, false, nil
	}
	d := req.Diet.Normalize()
	d.Name = strings.TrimSpace(d.Name)
	if existing, ok := t.state.Profiles[i].Diet(dietID); ok && d.CreatedAt.IsZero() {
		d.CreatedAt = existing.CreatedAt
	}

	next := t.state.Clone()
	updated, ok := diet.ReplaceDiet(next.Profiles[i], d)
	if !ok {
		applog.LogAuditEvent(ctx, "replace", applog.ResourceDiet, dietID, applog.AuditNoop, details)
		return diet.DailyDiet{}, false, nil
	}
	next.Profiles[i] = updated
	t.commit(ctx, next)

	t.audit(ctx, "replace", applog.ResourceDiet, dietID, nil, details)
	return d.Clone(), true, nil
}

// DeleteDiet removes a diet. An unknown profile or diet is a no-op.
func (t *Tracker) DeleteDiet(ctx context.Context, profileID, dietID string) error {
	details := map[string]any{"profileId": profileID}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := profileIndex(t.state, profileID)
	if i < 0 || !hasDiet(t.state.Profiles[i], dietID) {
		applog.LogAuditEvent(ctx, "delete", applog.ResourceDiet, dietID, applog.AuditNoop, details)
		return nil
	}
	next := t.state.Clone()
	next.Profiles[i] = diet.DeleteDiet(next.Profiles[i], dietID)
	t.commit(ctx, next)

	t.audit(ctx, "delete", applog.ResourceDiet, dietID, nil, details)
	return nil
}

func hasDiet(p diet.Profile, dietID string) bool {
	_, ok := p.Diet(dietID)
	return ok
}

// mutateDiet applies fn to one diet and commits the result. An unknown
// profile or diet is a no-op and reports false.
func (t *Tracker) mutateDiet(
	ctx context.Context,
	action, profileID, dietID string,
	details map[string]any,
	fn func(diet.DailyDiet) (diet.DailyDiet, error),
) (diet.DailyDiet, bool, error) {
	details["profileId"] = profileID
	details["dietId"] = dietID

	t.mu.Lock()
	defer t.mu.Unlock()

	d, err := t.diet(profileID, dietID)
	if err != nil {
		applog.LogAuditEvent(ctx, action, applog.ResourceMealItem, dietID, applog.AuditNoop, details)
		return diet.DailyDiet{}, false, nil
	}
	d, err = fn(d)
	if err != nil {
		err = invalid(err)
		t.audit(ctx, action, applog.ResourceMealItem, dietID, err, details)
		return diet.DailyDiet{}, false, err
	}

	next := t.state.Clone()
	i := profileIndex(next, profileID)
	next.Profiles[i], _ = diet.ReplaceDiet(next.Profiles[i], d)
	t.commit(ctx, next)

	t.audit(ctx, action, applog.ResourceMealItem, dietID, nil, details)
	return d.Clone(), true, nil
}

// AddItem adds a food to a meal, merging quantities when the food is already
// in that meal. Foods are not checked against the catalog; unknown foods
// contribute nothing to totals.
func (t *Tracker) AddItem(ctx context.Context, profileID, dietID string, req AddItemRequest) (diet.DailyDiet, bool, error) {
	details := map[string]any{"mealType": req.MealType, "foodId": req.FoodID}
	if err := req.Validate(); err != nil {
		t.audit(ctx, "add", applog.ResourceMealItem, dietID, err, details)
		return diet.DailyDiet{}, false, err
	}
	return t.mutateDiet(ctx, "add", profileID, dietID, details, func(d diet.DailyDiet) (diet.DailyDiet, error) {
		return diet.AddItem(d, diet.MealType(req.MealType), diet.MealItem{FoodID: req.FoodID, Quantity: req.Quantity})
	})
}

// UpdateItem sets the quantity of a meal item by position.
func (t *Tracker) UpdateItem(ctx context.Context, profileID, dietID string, req UpdateItemRequest) (diet.DailyDiet, bool, error) {
	details := map[string]any{"mealType": req.MealType, "index": req.Index}
	if err := req.Validate(); err != nil {
		t.audit(ctx, "update", applog.ResourceMealItem, dietID, err, details)
		return diet.DailyDiet{}, false, err
	}
	return t.mutateDiet(ctx, "update", profileID, dietID, details, func(d diet.DailyDiet) (diet.DailyDiet, error) {
		return diet.UpdateItemQuantity(d, diet.MealType(req.MealType), req.Index, req.Quantity)
	})
}

// RemoveItem removes a meal item by position.
func (t *Tracker) RemoveItem(ctx context.Context, profileID, dietID string, req RemoveItemRequest) (diet.DailyDiet, bool, error) {
	details := map[string]any{"mealType": req.MealType, "index": req.Index}
	if err := req.Validate(); err != nil {
		t.audit(ctx, "remove", applog.ResourceMealItem, dietID, err, details)
		return diet.DailyDiet{}, false, err
	}
	return t.mutateDiet(ctx, "remove", profileID, dietID, details, func(d diet.DailyDiet) (diet.DailyDiet, error) {
		return diet.RemoveItem(d, diet.MealType(req.MealType), req.Index)
	})
}

// DietTotals aggregates a diet's items against the current catalog.
func (t *Tracker) DietTotals(_ context.Context, d diet.DailyDiet) nutrition.Info {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return diet.DietTotals(d, t.catalog)
}

// Summary compares a diet's totals with its profile's goals.
func (t *Tracker) Summary(_ context.Context, profileID, dietID string) (report.Diet, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, err := t.profile(profileID)
	if err != nil {
		return report.Diet{}, err
	}
	d, ok := p.Diet(dietID)
	if !ok {
		return report.Diet{}, fmt.Errorf("diet %q: %w", dietID, ErrNotFound)
	}
	return report.Build(p.Clone(), d.Clone(), t.catalog, t.now()), nil
}

// ExportPDF renders a diet report as PDF. Rendering failures leave the state
// untouched.
func (t *Tracker) ExportPDF(ctx context.Context, profileID, dietID string) (Export, error) {
	rep, err := t.Summary(ctx, profileID, dietID)
	if err != nil {
		return Export{}, err
	}
	var buf bytes.Buffer
	if err := report.RenderPDF(&buf, rep); err != nil {
		applog.LogError(ctx, "failed to render diet PDF", err, zap.String("dietId", dietID))
		return Export{}, fmt.Errorf("render pdf: %w", err)
	}
	return Export{
		FileName: report.FileName(rep.Diet.Name, rep.GeneratedAt),
		Data:     buf.Bytes(),
	}, nil
}

// ListFoods returns custom foods followed by built-in foods that match
// filter. Category matches case-insensitively; Query matches a substring of
// the name case-insensitively.
func (t *Tracker) ListFoods(_ context.Context, filter FoodFilter) []catalog.Food {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var foods []catalog.Food
	switch filter.Source {
	case SourceBuiltin:
		foods = t.catalog.Builtin()
	case SourceCustom:
		foods = t.catalog.Custom()
	default:
		foods = t.catalog.All()
	}

	category := strings.TrimSpace(filter.Category)
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	return slices.DeleteFunc(foods, func(f catalog.Food) bool {
		if category != "" && !strings.EqualFold(f.Category, category) {
			return true
		}
		return query != "" && !strings.Contains(strings.ToLower(f.Name), query)
	})
}

// GetFood resolves a food, custom foods first.
func (t *Tracker) GetFood(_ context.Context, foodID string) (catalog.Food, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.catalog.FindByID(foodID)
	if !ok {
		return catalog.Food{}, fmt.Errorf("food %q: %w", foodID, ErrNotFound)
	}
	return f, nil
}

// IsCustomFood reports whether foodID names a custom food.
func (t *Tracker) IsCustomFood(_ context.Context, foodID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.catalog.IsCustom(foodID)
}

// CreateFood adds a custom food.
func (t *Tracker) CreateFood(ctx context.Context, req FoodRequest) (catalog.Food, error) {
	if err := req.Validate(); err != nil {
		t.audit(ctx, "create", applog.ResourceFood, "", err, nil)
		return catalog.Food{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	c, food, err := t.catalog.CreateCustom(req.fields())
	if err != nil {
		err = invalid(err)
		t.audit(ctx, "create", applog.ResourceFood, "", err, nil)
		return catalog.Food{}, err
	}
	next := t.state.Clone()
	next.CustomFoods = c.Custom()
	t.commit(ctx, next)

	t.audit(ctx, "create", applog.ResourceFood, food.ID, nil, nil)
	return food, nil
}

// UpdateFood replaces a custom food. Omitted unit and image keep their
// previous values. Only custom foods are searched, so an unknown or built-in
// id is a no-op and reports false.
func (t *Tracker) UpdateFood(ctx context.Context, foodID string, req FoodRequest) (catalog.Food, bool, error) {
	if err := req.Validate(); err != nil {
		t.audit(ctx, "update", applog.ResourceFood, foodID, err, nil)
		return catalog.Food{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	c, food, ok, err := t.catalog.UpdateCustom(foodID, req.fields())
	if err != nil {
		err = invalid(err)
		t.audit(ctx, "update", applog.ResourceFood, foodID, err, nil)
		return catalog.Food{}, false, err
	}
	if !ok {
		applog.LogAuditEvent(ctx, "update", applog.ResourceFood, foodID, applog.AuditNoop, nil)
		return catalog.Food{}, false, nil
	}
	next := t.state.Clone()
	next.CustomFoods = c.Custom()
	t.commit(ctx, next)

	t.audit(ctx, "update", applog.ResourceFood, foodID, nil, nil)
	return food, true, nil
}

// DeleteFood removes a custom food. Diet items that reference it stay and
// contribute nothing to totals. Unknown and built-in ids are a no-op.
func (t *Tracker) DeleteFood(ctx context.Context, foodID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.catalog.IsCustom(foodID) {
		applog.LogAuditEvent(ctx, "delete", applog.ResourceFood, foodID, applog.AuditNoop, nil)
		return nil
	}
	next := t.state.Clone()
	next.CustomFoods = t.catalog.DeleteCustom(foodID).Custom()
	t.commit(ctx, next)

	t.audit(ctx, "delete", applog.ResourceFood, foodID, nil, nil)
	return nil
}

// Compile-time interface check
var _ Service = (*Tracker)(nil)
