package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

type itemRequest struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status"`
}

func (r itemRequest) input() domain.ItemInput {
	return domain.ItemInput{
		Name:   r.Name,
		Type:   domain.ItemType(r.Type),
		Price:  r.Price,
		Status: domain.ItemStatus(r.Status),
	}
}

type itemRef struct {
	ID string `json:"id"`
}

type orderItemRequest struct {
	ID     string  `json:"id"`
	Item   itemRef `json:"item"`
	Amount int     `json:"amount"`
}

type orderRequest struct {
	Discount   decimal.Decimal    `json:"discount"`
	OrderItems []orderItemRequest `json:"orderItems"`
}

func (r orderRequest) input() domain.OrderInput {
	lines := make([]domain.OrderItemInput, 0, len(r.OrderItems))
	for _, line := range r.OrderItems {
		lines = append(lines, domain.OrderItemInput{
			ID:     line.ID,
			ItemID: line.Item.ID,
			Amount: line.Amount,
		})
	}
	return domain.OrderInput{Discount: r.Discount, Items: lines}
}

type statusChangeRequest struct {
	Status string `json:"status"`
}

type itemResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Type             domain.ItemType   `json:"type"`
	Price            decimal.Decimal   `json:"price"`
	Status           domain.ItemStatus `json:"status"`
	CreatedDate      time.Time         `json:"createdDate"`
	LastModifiedDate time.Time         `json:"lastModifiedDate"`
}

func newItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Type:             item.Type,
		Price:            item.Price,
		Status:           item.Status,
		CreatedDate:      item.CreatedAt,
		LastModifiedDate: item.UpdatedAt,
	}
}

type orderItemResponse struct {
	ID        string          `json:"id"`
	Amount    int             `json:"amount"`
	Item      itemResponse    `json:"item"`
	ItemPrice decimal.Decimal `json:"itemPrice"`
}

type orderResponse struct {
	ID               string              `json:"id"`
	Discount         decimal.Decimal     `json:"discount"`
	Status           domain.OrderStatus  `json:"status"`
	Total            decimal.Decimal     `json:"total"`
	TotalProduct     decimal.Decimal     `json:"totalProduct"`
	TotalService     decimal.Decimal     `json:"totalService"`
	OrderItems       []orderItemResponse `json:"orderItems"`
	CreatedDate      time.Time           `json:"createdDate"`
	LastModifiedDate time.Time           `json:"lastModifiedDate"`
}

func newOrderResponse(order domain.Order) orderResponse {
	totals := domain.CalculateTotals(order)
	lines := make([]orderItemResponse, 0, len(order.Items))
	for _, line := range order.Items {
		lines = append(lines, orderItemResponse{
			ID:        line.ID,
			Amount:    line.Amount,
			Item:      newItemResponse(line.Item),
			ItemPrice: line.ItemPrice,
		})
	}
	return orderResponse{
		ID:               order.ID,
		Discount:         order.Discount,
		Status:           order.Status,
		Total:            totals.Total,
		TotalProduct:     totals.Product,
		TotalService:     totals.Service,
		OrderItems:       lines,
		CreatedDate:      order.CreatedAt,
		LastModifiedDate: order.UpdatedAt,
	}
}

type pageResponse[T any] struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
	Result       []T `json:"result"`
}

func newPageResponse[S any, T any](page domain.Page[S], convert func(S) T) pageResponse[T] {
	result := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		result = append(result, convert(item))
	}
	return pageResponse[T]{
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
		Result:       result,
	}
}
