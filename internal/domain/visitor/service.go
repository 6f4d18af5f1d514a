package visitor

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// MatchPolicy определяет, какие записи может закрыть уход.
type MatchPolicy int

const (
	// MatchOpen закрывает последнюю открытую запись с этим номером.
	MatchOpen MatchPolicy = iota
	// MatchAny закрывает последнюю запись с этим номером, даже уже закрытую,
	// перезаписывая время ухода.
	MatchAny
)

// ParseMatchPolicy разбирает значения конфигурации "open" и "any".
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(s) {
	case "", "open":
		return MatchOpen, nil
	case "any":
		return MatchAny, nil
	}
	return MatchOpen, fmt.Errorf("unknown checkout match policy %q", s)
}

type Servicer interface {
	CheckIn(ctx context.Context, raw string) (Record, error)
	CheckOut(ctx context.Context, raw string) (Record, error)
	List(ctx context.Context, filter Filter) ([]Entry, error)
	Update(ctx context.Context, index int, rec Record) error
	Delete(ctx context.Context, index int) (Record, error)
	Clear(ctx context.Context) error
}

type Service struct {
	repo   Repository
	marker ExportMarker
	log    *slog.Logger
	now    func() time.Time
	policy MatchPolicy

	// mu упорядочивает циклы чтение-изменение-запись списка.
	mu   sync.Mutex
	last int64
}

type Option func(*Service)

// WithClock подменяет time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithMatchPolicy(p MatchPolicy) Option {
	return func(s *Service) { s.policy = p }
}

func NewService(repo Repository, marker ExportMarker, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		marker: marker,
		log:    log.With("component", "visitor_service"),
		now:    time.Now,
		policy: MatchOpen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CheckIn(ctx context.Context, raw string) (Record, error) {
	p, err := ParsePayload(raw)
	if err != nil {
		s.log.Debug("check-in rejected", "error", err)
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := p.record(s.timestamp())
	if err := s.repo.Append(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("check-in: %w", err)
	}

	s.log.Info("visitor checked in", "timestamp", rec.Timestamp)
	return rec, nil
}

func (s *Service) CheckOut(ctx context.Context, raw string) (Record, error) {
	phone, err := ParsePhoneNumber(raw)
	if err != nil {
		s.log.Debug("check-out rejected", "error", err)
		return Record{}, err
	}
	phone = strings.TrimSpace(phone)

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Load(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("check-out: %w", err)
	}

	idx := s.findCheckout(records, phone)
	if idx < 0 {
		return Record{}, ErrNoMatchingCheckIn
	}

	out := s.now().UnixMilli()
	if out < records[idx].Timestamp {
		out = records[idx].Timestamp
	}
	records[idx].Checkout = &out

	if err := s.repo.Save(ctx, records); err != nil {
		return Record{}, fmt.Errorf("check-out: %w", err)
	}

	s.log.Info("visitor checked out", "timestamp", records[idx].Timestamp, "checkout", out)
	return records[idx], nil
}

// findCheckout возвращает индекс самой свежей записи с phone или -1.
func (s *Service) findCheckout(records []Record, phone string) int {
	order := newestFirst(records)
	for _, i := range order {
		r := records[i]
		if strings.TrimSpace(r.PhoneNumber) != phone {
			continue
		}
		if s.policy == MatchOpen && !r.Open() {
			continue
		}
		return i
	}
	return -1
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Entry, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, i := range newestFirst(records) {
		if filter.match(records[i]) {
			entries = append(entries, Entry{Index: i, Record: records[i]})
		}
	}
	return entries, nil
}

func (s *Service) Update(ctx context.Context, index int, rec Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpdateAt(ctx, index, rec); err != nil {
		return fmt.Errorf("update visitor %d: %w", index, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, index int) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.repo.RemoveAt(ctx, index)
	if err != nil {
		return Record{}, fmt.Errorf("delete visitor %d: %w", index, err)
	}
	s.log.Info("visitor deleted", "timestamp", rec.Timestamp)
	return rec, nil
}

// Clear удаляет все записи и сбрасывает признак экспорта.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear visitors: %w", err)
	}
	if s.marker != nil {
		if err := s.marker.ClearExported(ctx); err != nil {
			return fmt.Errorf("clear exported flag: %w", err)
		}
	}
	s.log.Info("visitor list cleared")
	return nil
}

// Drain отдает fn снимок списка и очищает список, только если fn вернула nil.
// Блокировка держится на все время вызова, поэтому параллельная регистрация
// попадет либо в снимок, либо в новый список.
func (s *Service) Drain(ctx context.Context, fn func([]Record) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("drain visitors: %w", err)
	}
	if err := fn(records); err != nil {
		return err
	}

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("drain visitors: clear: %w", err)
	}
	if s.marker != nil {
		if err := s.marker.ClearExported(ctx); err != nil {
			return fmt.Errorf("clear exported flag: %w", err)
		}
	}
	s.log.Info("visitor list drained", "count", len(records))
	return nil
}

// timestamp возвращает текущее время в миллисекундах, строго больше
// предыдущего, чтобы два скана в одну миллисекунду различались.
func (s *Service) timestamp() int64 {
	ts := s.now().UnixMilli()
	if ts <= s.last {
		ts = s.last + 1
	}
	s.last = ts
	return ts
}

// newestFirst возвращает индексы, упорядоченные по убыванию Timestamp.
func newestFirst(records []Record) []int {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return records[order[a]].Timestamp > records[order[b]].Timestamp
	})
	return order
}
