package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// ErrSyncInFlight is returned when a sync is requested while another one
// is still running for the same user. The caller should just wait for the
// first one.
var ErrSyncInFlight = errors.New("sync already in flight for this user")

// flightGuard is a per-user single-flight latch. It covers only the
// in-flight window; it does not order responses that already left.
type flightGuard struct {
	mu       sync.Mutex
	inFlight map[int]bool
}

func newFlightGuard() *flightGuard {
	return &flightGuard{inFlight: make(map[int]bool)}
}

func (g *flightGuard) tryAcquire(userID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[userID] {
		return false
	}
	g.inFlight[userID] = true
	return true
}

func (g *flightGuard) release(userID int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, userID)
}

// DefaultProfileName derives a display name from the email local-part
func DefaultProfileName(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

type SyncService struct {
	ProfileRepo *repositories.ProfileRepository
	ClientRepo  *repositories.ClientRepository
	ServiceRepo *repositories.ServiceRepository
	QuoteRepo   *repositories.QuoteRepository
	guard       *flightGuard
}

func NewSyncService(
	profileRepo *repositories.ProfileRepository,
	clientRepo *repositories.ClientRepository,
	serviceRepo *repositories.ServiceRepository,
	quoteRepo *repositories.QuoteRepository,
) *SyncService {
	return &SyncService{
		ProfileRepo: profileRepo,
		ClientRepo:  clientRepo,
		ServiceRepo: serviceRepo,
		QuoteRepo:   quoteRepo,
		guard:       newFlightGuard(),
	}
}

// Sync assembles the full client dataset in one pass: profile first (it
// decides first-login routing), then clients, services and quotes in
// parallel. Any fetch error aborts the whole pass.
func (s *SyncService) Sync(ctx context.Context, userID int, email string) (*models.SyncResponse, error) {
	if !s.guard.tryAcquire(userID) {
		return nil, ErrSyncInFlight
	}
	defer s.guard.release(userID)

	resp := &models.SyncResponse{}

	profile, err := s.ProfileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		profile = &models.Profile{
			UserID: userID,
			Name:   DefaultProfileName(email),
			Email:  email,
		}
		if err := s.ProfileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		resp.FirstLogin = true
	} else if err != nil {
		return nil, err
	}
	resp.Profile = profile

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		resp.Clients, errs[0] = s.ClientRepo.List(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		resp.Services, errs[1] = s.ServiceRepo.List(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		resp.Quotes, errs[2] = s.QuoteRepo.List(ctx, userID)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if resp.Clients == nil {
		resp.Clients = []*models.Client{}
	}
	if resp.Services == nil {
		resp.Services = []*models.Service{}
	}
	if resp.Quotes == nil {
		resp.Quotes = []*models.Quote{}
	}

	return resp, nil
}
