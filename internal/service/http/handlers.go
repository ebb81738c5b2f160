package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// Item handlers

func (s *Server) createItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid json")
		return
	}
	item, err := s.items.CreateItem(c.Request.Context(), req.input())
	if err != nil {
		s.fail(c, "CreateItem", log.Fields{"name": req.Name}, err)
		return
	}
	c.JSON(http.StatusCreated, newItemResponse(item))
}

func (s *Server) getItem(c *gin.Context) {
	id := c.Param("id")
	item, err := s.items.GetItemByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, "GetItem", log.Fields{"item_id": id}, err)
		return
	}
	c.JSON(http.StatusOK, newItemResponse(item))
}

func (s *Server) updateItem(c *gin.Context) {
	id := c.Param("id")
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid json")
		return
	}
	item, err := s.items.UpdateItem(c.Request.Context(), id, req.input())
	if err != nil {
		s.fail(c, "UpdateItem", log.Fields{"item_id": id}, err)
		return
	}
	c.JSON(http.StatusOK, newItemResponse(item))
}

func (s *Server) deleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := s.items.DeleteItemByID(c.Request.Context(), id); err != nil {
		s.fail(c, "DeleteItem", log.Fields{"item_id": id}, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listItems(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	itemType, ok := parseEnum(c, "type", domain.ItemType.Valid)
	if !ok {
		return
	}
	itemStatus, ok := parseEnum(c, "status", domain.ItemStatus.Valid)
	if !ok {
		return
	}

	filter := domain.ItemFilter{
		ID:     c.Query("id"),
		Query:  c.Query("query"),
		Type:   itemType,
		Status: itemStatus,
	}
	result, err := s.items.ListItems(c.Request.Context(), filter, page)
	if err != nil {
		s.fail(c, "ListItems", nil, err)
		return
	}
	c.JSON(http.StatusOK, newPageResponse(result, newItemResponse))
}

// Order handlers

func (s *Server) createOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid json")
		return
	}
	order, err := s.orders.CreateOrder(c.Request.Context(), req.input())
	if err != nil {
		s.fail(c, "CreateOrder", nil, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(order))
}

func (s *Server) getOrder(c *gin.Context) {
	id := c.Param("id")
	order, err := s.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		s.fail(c, "GetOrder", log.Fields{"order_id": id}, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (s *Server) updateOrder(c *gin.Context) {
	id := c.Param("id")
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid json")
		return
	}
	order, err := s.orders.UpdateOrder(c.Request.Context(), id, req.input())
	if err != nil {
		s.fail(c, "UpdateOrder", log.Fields{"order_id": id}, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (s *Server) changeOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", "invalid json")
		return
	}
	target := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if _, err := s.orders.ChangeOrderStatus(c.Request.Context(), id, target); err != nil {
		s.fail(c, "ChangeOrderStatus", log.Fields{"order_id": id, "status": req.Status}, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := s.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		s.fail(c, "DeleteOrder", log.Fields{"order_id": id}, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listOrders(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	itemType, ok := parseEnum(c, "itemType", domain.ItemType.Valid)
	if !ok {
		return
	}
	itemStatus, ok := parseEnum(c, "itemStatus", domain.ItemStatus.Valid)
	if !ok {
		return
	}
	status, ok := parseEnum(c, "status", domain.OrderStatus.Valid)
	if !ok {
		return
	}

	filter := domain.OrderFilter{
		ID:         c.Query("id"),
		Query:      c.Query("query"),
		ItemType:   itemType,
		ItemStatus: itemStatus,
		Status:     status,
	}
	result, err := s.orders.ListOrders(c.Request.Context(), filter, page)
	if err != nil {
		s.fail(c, "ListOrders", nil, err)
		return
	}
	c.JSON(http.StatusOK, newPageResponse(result, newOrderResponse))
}

func parsePage(c *gin.Context) (domain.PageRequest, bool) {
	page := domain.PageRequest{
		SortDirection: domain.SortDirection(c.Query("sortDirection")),
		SortField:     c.Query("sortField"),
	}

	for _, param := range []struct {
		name   string
		target *int
	}{
		{name: "page", target: &page.Page},
		{name: "pageSize", target: &page.PageSize},
	} {
		raw := c.Query(param.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			badRequest(c, param.name, "must be a non-negative integer")
			return domain.PageRequest{}, false
		}
		*param.target = value
	}
	return page, true
}

func parseEnum[T ~string](c *gin.Context, name string, valid func(T) bool) (T, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return "", true
	}
	value := T(strings.ToUpper(raw))
	if !valid(value) {
		badRequest(c, name, "unsupported value "+raw)
		return "", false
	}
	return value, true
}
