package service

import (
	"context"
	"log/slog"
	"sync"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/search"
)

// MealServiceOptions groups dependencies for MealService.
type MealServiceOptions struct {
	Backends ports.BackendProvider
	Debounce *search.Debouncer
	Logger   *slog.Logger
}

// MealService serves meal browsing for everyone and meal management for
// chefs. Search traffic is debounced per caller and stale results are
// dropped so only the newest query's outcome reaches the browser.
type MealService struct {
	backends ports.BackendProvider
	debounce *search.Debouncer
	logger   *slog.Logger

	mu     sync.Mutex
	states map[string]*searchState
}

type searchState struct {
	seq search.Sequencer

	mu      sync.Mutex
	waiter  chan searchOutcome
	evicted bool
}

type searchOutcome struct {
	meals []model.Meal
	total int
	err   error
}

// ErrSearchSuperseded marks a search query that was replaced by newer
// input before (or while) it ran. Its result must be discarded.
var ErrSearchSuperseded = apperrors.Conflict("search superseded by newer input")

// NewMealService constructs a MealService.
func NewMealService(opts MealServiceOptions) *MealService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := opts.Debounce
	if debounce == nil {
		debounce = search.NewDebouncer(0)
	}
	return &MealService{
		backends: opts.Backends,
		debounce: debounce,
		logger:   logger,
		states:   make(map[string]*searchState),
	}
}

// List fetches a page of meals immediately, without debouncing. Used
// for initial page loads and paging where no typing burst exists.
func (s *MealService) List(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.Meal, int, error) {
	return s.backends.For(sess).Meals.List(ctx, q.Normalize())
}

// Search runs a debounced meal search for the caller identified by key
// (session ID, or a client-derived key for anonymous browsing).
//
// Keystroke bursts within the quiet period collapse into one backend
// query. When a newer search for the same key arrives, the older call
// returns ErrSearchSuperseded; when results complete out of order only
// the newest is accepted.
func (s *MealService) Search(ctx context.Context, sess *domainauth.Session, key string, q model.ListQuery) ([]model.Meal, int, error) {
	q = q.Normalize()
	ch := make(chan searchOutcome, 1)

	// Register as the pending waiter, replacing any older one; the
	// superseded caller is released immediately instead of waiting for
	// a query that will never run. A state evicted between lookup and
	// lock is retried against a fresh one.
	var st *searchState
	var seqNum uint64
	for {
		st = s.stateFor(key)
		st.mu.Lock()
		if st.evicted {
			st.mu.Unlock()
			continue
		}
		seqNum = st.seq.Next()
		if st.waiter != nil {
			st.waiter <- searchOutcome{err: ErrSearchSuperseded}
		}
		st.waiter = ch
		st.mu.Unlock()
		break
	}

	s.debounce.Trigger(key, func() {
		st.mu.Lock()
		if st.waiter != ch {
			st.mu.Unlock()
			return
		}
		st.waiter = nil
		st.mu.Unlock()

		meals, total, err := s.backends.For(sess).Meals.List(ctx, q)
		if err == nil && !st.seq.Accept(seqNum) {
			err = ErrSearchSuperseded
		}
		ch <- searchOutcome{meals: meals, total: total, err: err}
		s.releaseIfIdle(key, st)
	})

	select {
	case out := <-ch:
		return out.meals, out.total, out.err
	case <-ctx.Done():
		st.mu.Lock()
		if st.waiter == ch {
			st.waiter = nil
			s.debounce.Cancel(key)
		}
		st.mu.Unlock()
		s.releaseIfIdle(key, st)
		return nil, 0, apperrors.Wrap(ctx.Err(), apperrors.ErrCodeCanceled, "search canceled")
	}
}

// Get fetches a single meal.
func (s *MealService) Get(ctx context.Context, sess *domainauth.Session, id string) (model.Meal, error) {
	if id == "" {
		return model.Meal{}, apperrors.ValidationField("id", "meal id is required")
	}
	return s.backends.For(sess).Meals.Get(ctx, id)
}

// MyMeals lists the calling chef's meals.
func (s *MealService) MyMeals(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.Meal, int, error) {
	return s.backends.For(sess).Meals.ByChef(ctx, q.Normalize())
}

// Create adds a meal for the calling chef. Chef identity is stamped
// from the session, never taken from client input.
func (s *MealService) Create(ctx context.Context, sess *domainauth.Session, in model.MealInput) (model.Meal, error) {
	if err := in.Validate(); err != nil {
		return model.Meal{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	meal := model.Meal{
		Name:         in.Name,
		ImageURL:     in.ImageURL,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		DeliveryArea: in.DeliveryArea,
		Price:        in.Price,
		ChefName:     sess.Name,
		ChefID:       sess.UserID,
		ChefEmail:    sess.Email,
	}
	return s.backends.For(sess).Meals.Create(ctx, meal)
}

// Update edits one of the calling chef's meals.
func (s *MealService) Update(ctx context.Context, sess *domainauth.Session, id string, in model.MealInput) error {
	if id == "" {
		return apperrors.ValidationField("id", "meal id is required")
	}
	if err := in.Validate(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	return s.backends.For(sess).Meals.Update(ctx, id, in)
}

// Delete removes one of the calling chef's meals.
func (s *MealService) Delete(ctx context.Context, sess *domainauth.Session, id string) error {
	if id == "" {
		return apperrors.ValidationField("id", "meal id is required")
	}
	return s.backends.For(sess).Meals.Delete(ctx, id)
}

func (s *MealService) stateFor(key string) *searchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[key]
	if !ok {
		st = &searchState{}
		s.states[key] = st
	}
	return st
}

// releaseIfIdle drops the per-key state once no waiter is pending, so
// the map stays bounded by in-flight searches rather than growing one
// entry per caller the gateway has ever seen. The evicted flag makes a
// racing Search retry against a fresh state.
func (s *MealService) releaseIfIdle(key string, st *searchState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.waiter == nil && s.states[key] == st {
		st.evicted = true
		delete(s.states, key)
	}
}
