package catalogv1

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

type fakeClientConn struct {
	invoke func(context.Context, string, any, any, ...grpc.CallOption) error
}

func (f *fakeClientConn) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	if f.invoke == nil {
		return errors.New("unexpected Invoke call")
	}
	return f.invoke(ctx, method, args, reply, opts...)
}

func (f *fakeClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

// echoCatalogService отвечает на каждый вызов сообщением нужного типа.
type echoCatalogService struct {
	UnimplementedCatalogServiceServer
}

func (echoCatalogService) CreateItem(_ context.Context, req *CreateItemRequest) (*Item, error) {
	return &Item{Id: "item-1", Name: req.GetName()}, nil
}

func (echoCatalogService) UpdateItem(_ context.Context, req *UpdateItemRequest) (*Item, error) {
	return &Item{Id: req.GetId()}, nil
}

func (echoCatalogService) GetItem(_ context.Context, req *GetItemRequest) (*Item, error) {
	return &Item{Id: req.GetId()}, nil
}

func (echoCatalogService) DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error) {
	return &DeleteItemResponse{}, nil
}

func (echoCatalogService) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return &ListItemsResponse{Items: []*Item{{Id: "item-1"}}}, nil
}

func (echoCatalogService) CreateOrder(context.Context, *CreateOrderRequest) (*Order, error) {
	return &Order{Id: "order-1"}, nil
}

func (echoCatalogService) UpdateOrder(_ context.Context, req *UpdateOrderRequest) (*Order, error) {
	return &Order{Id: req.GetId()}, nil
}

func (echoCatalogService) GetOrder(_ context.Context, req *GetOrderRequest) (*Order, error) {
	return &Order{Id: req.GetId()}, nil
}

func (echoCatalogService) DeleteOrder(context.Context, *DeleteOrderRequest) (*DeleteOrderResponse, error) {
	return &DeleteOrderResponse{}, nil
}

func (echoCatalogService) ChangeOrderStatus(_ context.Context, req *ChangeOrderStatusRequest) (*Order, error) {
	return &Order{Id: req.GetId(), Status: req.GetStatus()}, nil
}

func (echoCatalogService) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return &ListOrdersResponse{Orders: []*Order{{Id: "order-1"}}}, nil
}

type clientCall struct {
	method string
	call   func(context.Context, CatalogServiceClient) error
}

func clientCalls() []clientCall {
	return []clientCall{
		{CatalogService_CreateItem_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.CreateItem(ctx, &CreateItemRequest{})
			return err
		}},
		{CatalogService_UpdateItem_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.UpdateItem(ctx, &UpdateItemRequest{})
			return err
		}},
		{CatalogService_GetItem_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.GetItem(ctx, &GetItemRequest{})
			return err
		}},
		{CatalogService_DeleteItem_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.DeleteItem(ctx, &DeleteItemRequest{})
			return err
		}},
		{CatalogService_ListItems_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.ListItems(ctx, &ListItemsRequest{})
			return err
		}},
		{CatalogService_CreateOrder_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.CreateOrder(ctx, &CreateOrderRequest{})
			return err
		}},
		{CatalogService_UpdateOrder_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.UpdateOrder(ctx, &UpdateOrderRequest{})
			return err
		}},
		{CatalogService_GetOrder_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.GetOrder(ctx, &GetOrderRequest{})
			return err
		}},
		{CatalogService_DeleteOrder_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.DeleteOrder(ctx, &DeleteOrderRequest{})
			return err
		}},
		{CatalogService_ChangeOrderStatus_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.ChangeOrderStatus(ctx, &ChangeOrderStatusRequest{})
			return err
		}},
		{CatalogService_ListOrders_FullMethodName, func(ctx context.Context, c CatalogServiceClient) error {
			_, err := c.ListOrders(ctx, &ListOrdersRequest{})
			return err
		}},
	}
}

func TestCatalogServiceClientMethods(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		seen := map[string]int{}
		client := NewCatalogServiceClient(&fakeClientConn{
			invoke: func(_ context.Context, method string, args any, reply any, _ ...grpc.CallOption) error {
				seen[method]++
				if _, ok := args.(proto.Message); !ok {
					t.Fatalf("%s: request is not a proto message: %T", method, args)
				}
				if _, ok := reply.(proto.Message); !ok {
					t.Fatalf("%s: reply is not a proto message: %T", method, reply)
				}
				return nil
			},
		})

		for _, c := range clientCalls() {
			if err := c.call(ctx, client); err != nil {
				t.Fatalf("%s failed: %v", c.method, err)
			}
			if seen[c.method] != 1 {
				t.Fatalf("expected %s called exactly once, got %d", c.method, seen[c.method])
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		client := NewCatalogServiceClient(&fakeClientConn{
			invoke: func(context.Context, string, any, any, ...grpc.CallOption) error {
				return status.Error(codes.Unavailable, "down")
			},
		})
		for _, c := range clientCalls() {
			if err := c.call(ctx, client); status.Code(err) != codes.Unavailable {
				t.Fatalf("%s expected Unavailable, got %v", c.method, err)
			}
		}
	})
}

func TestUnimplementedCatalogServiceServer(t *testing.T) {
	var srv UnimplementedCatalogServiceServer
	ctx := context.Background()

	calls := map[string]func() error{
		"CreateItem":        func() error { _, err := srv.CreateItem(ctx, &CreateItemRequest{}); return err },
		"UpdateItem":        func() error { _, err := srv.UpdateItem(ctx, &UpdateItemRequest{}); return err },
		"GetItem":           func() error { _, err := srv.GetItem(ctx, &GetItemRequest{}); return err },
		"DeleteItem":        func() error { _, err := srv.DeleteItem(ctx, &DeleteItemRequest{}); return err },
		"ListItems":         func() error { _, err := srv.ListItems(ctx, &ListItemsRequest{}); return err },
		"CreateOrder":       func() error { _, err := srv.CreateOrder(ctx, &CreateOrderRequest{}); return err },
		"UpdateOrder":       func() error { _, err := srv.UpdateOrder(ctx, &UpdateOrderRequest{}); return err },
		"GetOrder":          func() error { _, err := srv.GetOrder(ctx, &GetOrderRequest{}); return err },
		"DeleteOrder":       func() error { _, err := srv.DeleteOrder(ctx, &DeleteOrderRequest{}); return err },
		"ChangeOrderStatus": func() error { _, err := srv.ChangeOrderStatus(ctx, &ChangeOrderStatusRequest{}); return err },
		"ListOrders":        func() error { _, err := srv.ListOrders(ctx, &ListOrdersRequest{}); return err },
	}
	for name, call := range calls {
		if err := call(); status.Code(err) != codes.Unimplemented {
			t.Fatalf("%s expected Unimplemented, got %v", name, err)
		}
	}

	srv.mustEmbedUnimplementedCatalogServiceServer()
}

func TestGeneratedHandlers(t *testing.T) {
	srv := echoCatalogService{}
	ctx := context.Background()

	handlers := map[string]func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error){
		CatalogService_CreateItem_FullMethodName:        _CatalogService_CreateItem_Handler,
		CatalogService_UpdateItem_FullMethodName:        _CatalogService_UpdateItem_Handler,
		CatalogService_GetItem_FullMethodName:           _CatalogService_GetItem_Handler,
		CatalogService_DeleteItem_FullMethodName:        _CatalogService_DeleteItem_Handler,
		CatalogService_ListItems_FullMethodName:         _CatalogService_ListItems_Handler,
		CatalogService_CreateOrder_FullMethodName:       _CatalogService_CreateOrder_Handler,
		CatalogService_UpdateOrder_FullMethodName:       _CatalogService_UpdateOrder_Handler,
		CatalogService_GetOrder_FullMethodName:          _CatalogService_GetOrder_Handler,
		CatalogService_DeleteOrder_FullMethodName:       _CatalogService_DeleteOrder_Handler,
		CatalogService_ChangeOrderStatus_FullMethodName: _CatalogService_ChangeOrderStatus_Handler,
		CatalogService_ListOrders_FullMethodName:        _CatalogService_ListOrders_Handler,
	}
	if len(handlers) != len(CatalogService_ServiceDesc.Methods) {
		t.Fatalf("handler table covers %d of %d methods", len(handlers), len(CatalogService_ServiceDesc.Methods))
	}

	decodeOK := func(interface{}) error { return nil }
	for method, handler := range handlers {
		t.Run(method, func(t *testing.T) {
			if _, err := handler(srv, ctx, func(interface{}) error { return errors.New("decode failed") }, nil); err == nil {
				t.Fatalf("expected decode error")
			}

			resp, err := handler(srv, ctx, decodeOK, nil)
			if err != nil || resp == nil {
				t.Fatalf("direct call: resp=%v err=%v", resp, err)
			}

			intercepted := false
			resp, err = handler(srv, ctx, decodeOK, func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (interface{}, error) {
				intercepted = true
				if info.FullMethod != method {
					t.Fatalf("unexpected full method: got %s want %s", info.FullMethod, method)
				}
				return next(ctx, req)
			})
			if err != nil || resp == nil {
				t.Fatalf("intercepted call: resp=%v err=%v", resp, err)
			}
			if !intercepted {
				t.Fatalf("interceptor was not called")
			}
		})
	}
}

func TestRegisterAndServiceDescriptor(t *testing.T) {
	RegisterCatalogServiceServer(grpc.NewServer(), echoCatalogService{})

	if got, want := CatalogService_ServiceDesc.ServiceName, "catalog.v1.CatalogService"; got != want {
		t.Fatalf("unexpected service name: got %s want %s", got, want)
	}
	if got := len(CatalogService_ServiceDesc.Methods); got != 11 {
		t.Fatalf("expected 11 method descriptors, got %d", got)
	}
	if got, want := CatalogService_ServiceDesc.Metadata, "proto/catalog/v1/catalog.proto"; got != want {
		t.Fatalf("unexpected metadata: got %v want %s", got, want)
	}
}
