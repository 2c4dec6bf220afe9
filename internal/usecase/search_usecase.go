package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ISearchUseCase is the global search bar: one query, categorized matches.
type ISearchUseCase interface {
	Search(ctx context.Context, query string) (entities.SearchResults, error)
}

type SearchUseCase struct {
	dealRepo      interfaces.IDealRepository
	organizations IOrganizationUseCase
	contacts      IContactUseCase
	limit         int
	logger        *zap.Logger
}

var _ ISearchUseCase = (*SearchUseCase)(nil)

func NewSearchUseCase(dealRepo interfaces.IDealRepository, organizations IOrganizationUseCase, contacts IContactUseCase, limit int, logger *zap.Logger) *SearchUseCase {
	if limit <= 0 {
		limit = defaultPartySearchLimit
	}
	return &SearchUseCase{dealRepo: dealRepo, organizations: organizations, contacts: contacts, limit: limit, logger: orNop(logger)}
}

// Search queries every category concurrently. A failing category comes back
// empty instead of failing the whole search.
func (u *SearchUseCase) Search(ctx context.Context, query string) (entities.SearchResults, error) {
	res := entities.SearchResults{
		Deals:         []entities.Deal{},
		Organizations: []entities.Organization{},
		Contacts:      []entities.Contact{},
	}
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minPartySearchQueryLength {
		return res, nil
	}

	var g errgroup.Group
	g.Go(func() error {
		deals, err := u.dealRepo.Search(ctx, query, u.limit)
		if err != nil {
			u.degraded("deals", query, err)
			return nil
		}
		res.Deals = nonNil(deals)
		return nil
	})
	g.Go(func() error {
		orgs, err := u.organizations.Search(ctx, query)
		if err != nil {
			u.degraded("organizations", query, err)
			return nil
		}
		res.Organizations = nonNil(orgs)
		return nil
	})
	g.Go(func() error {
		contacts, err := u.contacts.Search(ctx, query)
		if err != nil {
			u.degraded("contacts", query, err)
			return nil
		}
		res.Contacts = nonNil(contacts)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return entities.SearchResults{}, err
	}
	return res, nil
}

func (u *SearchUseCase) degraded(category, query string, err error) {
	u.logger.Warn("[search][usecase] category failed", zap.String("category", category), zap.String("query", query), zap.Error(err))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// LiveResult is one delivered lookup.
type LiveResult struct {
	Seq     uint64                 `json:"seq"`
	Query   string                 `json:"query"`
	Results entities.SearchResults `json:"results"`
}

// LiveLookup is a search-as-you-type session. Each Submit supersedes the
// previous one: the older request's context is cancelled and, should its
// result still arrive, it is dropped. Only the latest issued query is ever
// delivered. deliver runs under the session lock and must not call Submit.
type LiveLookup struct {
	search   ISearchUseCase
	debounce time.Duration
	deliver  func(LiveResult)
	logger   *zap.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

func NewLiveLookup(search ISearchUseCase, debounce time.Duration, deliver func(LiveResult), logger *zap.Logger) *LiveLookup {
	return &LiveLookup{search: search, debounce: debounce, deliver: deliver, logger: orNop(logger)}
}

// Submit schedules query after the debounce window. It does not block.
func (l *LiveLookup) Submit(ctx context.Context, query string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	reqCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer cancel()

		timer := time.NewTimer(l.debounce)
		defer timer.Stop()
		select {
		case <-reqCtx.Done():
			return
		case <-timer.C:
		}

		res, err := l.search.Search(reqCtx, query)

		l.mu.Lock()
		defer l.mu.Unlock()
		if seq != l.seq || l.closed {
			l.logger.Debug("[search][live] stale result dropped", zap.Uint64("seq", seq), zap.String("query", query))
			return
		}
		if err != nil {
			l.logger.Warn("[search][live] lookup failed", zap.String("query", query), zap.Error(err))
			return
		}
		l.deliver(LiveResult{Seq: seq, Query: query, Results: res})
	}()
}

// Close cancels any in-flight lookup and waits for it to return.
func (l *LiveLookup) Close() {
	l.mu.Lock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
	l.mu.Unlock()
	l.wg.Wait()
}
