// Package memory реализует хранилища каталога и заказов в памяти процесса.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
)

type itemRecord struct {
	item domain.Item
	seq  int64
}

type orderRecord struct {
	id        string
	status    domain.OrderStatus
	discount  decimal.Decimal
	seq       int64
	createdAt time.Time
	updatedAt time.Time
}

type orderItemRecord struct {
	id        string
	orderID   string
	itemID    string
	amount    int
	itemPrice decimal.Decimal
	position  int
	createdAt time.Time
}

// outboxRecord хранит сообщение и служебные поля для in-memory реализации.
type outboxRecord struct {
	msg        domain.OutboxMessage
	status     string
	attemptCnt int
	seq        int64
	createdAt  time.Time
	updatedAt  time.Time
}

// state хранит снимок всех таблиц. Транзакция работает с копией и подменяет её при успехе.
type state struct {
	seq        int64
	items      map[string]itemRecord
	orders     map[string]orderRecord
	orderItems map[string]orderItemRecord
	outbox     map[string]outboxRecord
}

func newState() *state {
	return &state{
		items:      make(map[string]itemRecord),
		orders:     make(map[string]orderRecord),
		orderItems: make(map[string]orderItemRecord),
		outbox:     make(map[string]outboxRecord),
	}
}

func (s *state) clone() *state {
	return &state{
		seq:        s.seq,
		items:      maps.Clone(s.items),
		orders:     maps.Clone(s.orders),
		orderItems: maps.Clone(s.orderItems),
		outbox:     maps.Clone(s.outbox),
	}
}

func (s *state) nextSeq() int64 {
	s.seq++
	return s.seq
}

// linesOf возвращает позиции заказа в исходном порядке.
func (s *state) linesOf(orderID string) []orderItemRecord {
	lines := make([]orderItemRecord, 0)
	for _, rec := range s.orderItems {
		if rec.orderID == orderID {
			lines = append(lines, rec)
		}
	}
	slices.SortFunc(lines, func(a, b orderItemRecord) int {
		if a.position != b.position {
			return a.position - b.position
		}
		return strings.Compare(a.id, b.id)
	})
	return lines
}

func (s *state) orderItem(rec orderItemRecord) domain.OrderItem {
	return domain.OrderItem{
		ID:        rec.id,
		OrderID:   rec.orderID,
		Item:      s.items[rec.itemID].item,
		Amount:    rec.amount,
		ItemPrice: rec.itemPrice,
		CreatedAt: rec.createdAt,
	}
}

func (s *state) order(rec orderRecord) domain.Order {
	lines := s.linesOf(rec.id)
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, s.orderItem(line))
	}
	return domain.Order{
		ID:        rec.id,
		Status:    rec.status,
		Discount:  rec.discount,
		Items:     items,
		CreatedAt: rec.createdAt,
		UpdatedAt: rec.updatedAt,
	}
}

// scope даёт репозиториям доступ к состоянию: под блокировкой хранилища или внутри транзакции.
type scope interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

type liveScope struct {
	store *Store
}

func (l liveScope) read(fn func(*state) error) error {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return fn(l.store.state)
}

func (l liveScope) write(fn func(*state) error) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	draft := l.store.state.clone()
	if err := fn(draft); err != nil {
		return err
	}
	l.store.state = draft
	return nil
}

type txScope struct {
	state *state
}

func (t txScope) read(fn func(*state) error) error  { return fn(t.state) }
func (t txScope) write(fn func(*state) error) error { return fn(t.state) }

// Store хранит данные в памяти и поддерживает единицы работы.
type Store struct {
	mu    sync.RWMutex
	state *state
}

// NewStore создаёт пустое in-memory хранилище.
func NewStore() *Store {
	return &Store{state: newState()}
}

// Repositories возвращает репозитории, каждая операция которых атомарна сама по себе.
func (s *Store) Repositories() storage.Repositories {
	return repositoriesFor(liveScope{store: s})
}

// WithinTx выполняет fn над копией состояния под эксклюзивной блокировкой
// и применяет копию только при успешном завершении.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos storage.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	draft := s.state.clone()
	if err := fn(ctx, repositoriesFor(txScope{state: draft})); err != nil {
		return err
	}
	s.state = draft
	return nil
}

// Reset очищает все таблицы.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newState()
}

func repositoriesFor(sc scope) storage.Repositories {
	return storage.Repositories{
		Items:      &itemRepository{scope: sc},
		Orders:     &orderRepository{scope: sc},
		OrderItems: &orderItemRepository{scope: sc},
		Outbox:     &outboxRepository{scope: sc},
	}
}

var _ storage.Store = (*Store)(nil)

// paginate вырезает страницу из уже отсортированных строк.
func paginate[T any](rows []T, page domain.PageRequest) domain.Page[T] {
	total := len(rows)
	start := max(0, min(page.Offset(), total))
	end := max(start, min(start+page.PageSize, total))
	return domain.NewPage(slices.Clone(rows[start:end]), page, total)
}

func applyDirection(cmp int, dir domain.SortDirection) int {
	if dir == domain.SortDesc {
		return -cmp
	}
	return cmp
}
