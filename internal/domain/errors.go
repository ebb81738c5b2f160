package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Запрошенная сущность (или часть набора) отсутствует.
	ErrNotFound = errors.New("not found")
	// Операция нарушает бизнес-правило или уникальность.
	ErrConflict = errors.New("conflict")
	// Операция недопустима в текущем статусе заказа.
	ErrInvalidState = errors.New("invalid state")
	// Входные данные не прошли проверку.
	ErrValidation = errors.New("validation failed")
	// В outbox нет события с таким ID.
	ErrOutboxMessageNotFound = errors.New("outbox message not found")

	// Не передан idempotency-key.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	// Не передан хэш запроса.
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	// Ключ уже использовался с тем же запросом.
	ErrIdempotencyKeyAlreadyExists = errors.New("idempotency key already exists")
	// Ключ уже использовался с другим запросом.
	ErrIdempotencyHashMismatch = errors.New("idempotency key reused with different request")
	// Запись по ключу отсутствует.
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
)

// Reason уточняет причину конфликта для транспортного слоя.
type Reason string

const (
	ReasonDuplicateItem      Reason = "duplicate_item"
	ReasonItemLinked         Reason = "item_linked"
	ReasonItemsDisabled      Reason = "items_disabled"
	ReasonDiscountNotAllowed Reason = "discount_not_allowed"
	ReasonItemTypeMissing    Reason = "item_type_missing"
	ReasonOrderClosed        Reason = "order_closed"
	ReasonConstraint         Reason = "constraint"
)

// FieldViolation описывает одно нарушение при проверке входных данных.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error описывает бизнес-ошибку движка правил.
// Kind принимает значения ErrNotFound, ErrConflict, ErrInvalidState или ErrValidation.
type Error struct {
	Kind       error
	Reason     Reason
	Message    string
	IDs        []string
	Violations []FieldViolation
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewNotFound создаёт ошибку отсутствия сущностей с указанными идентификаторами.
func NewNotFound(message string, ids ...string) *Error {
	return &Error{Kind: ErrNotFound, Message: message, IDs: ids}
}

// NewConflict создаёт ошибку нарушения бизнес-правила.
func NewConflict(reason Reason, message string, ids ...string) *Error {
	return &Error{Kind: ErrConflict, Reason: reason, Message: message, IDs: ids}
}

// NewInvalidState создаёт ошибку недопустимого перехода состояния заказа.
func NewInvalidState(message string, ids ...string) *Error {
	return &Error{Kind: ErrInvalidState, Reason: ReasonOrderClosed, Message: message, IDs: ids}
}

// NewValidation объединяет нарушения валидации в одну ошибку.
func NewValidation(violations []FieldViolation) *Error {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return &Error{
		Kind:       ErrValidation,
		Message:    strings.Join(parts, "; "),
		Violations: violations,
	}
}

// AsError извлекает *Error из цепочки ошибок.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// IsNotFound проверяет, является ли ошибка ошибкой отсутствия сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict проверяет, является ли ошибка конфликтом.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInvalidState проверяет, является ли ошибка недопустимым переходом состояния.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsValidation проверяет, является ли ошибка ошибкой валидации.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// SortedIDs возвращает отсортированную копию идентификаторов без дубликатов.
func SortedIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// JoinIDs форматирует идентификаторы для сообщений об ошибках.
func JoinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
