package mocks

import (
	"context"

	"catalog-sync/core/catalog"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of catalog.Client
type Client struct {
	mock.Mock
}

func (m *Client) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	if p, ok := args.Get(0).(*catalog.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Create(ctx context.Context, payload catalog.Payload) (*catalog.Product, error) {
	args := m.Called(ctx, payload)
	if p, ok := args.Get(0).(*catalog.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Update(ctx context.Context, id int, payload catalog.Payload) (*catalog.Product, error) {
	args := m.Called(ctx, id, payload)
	if p, ok := args.Get(0).(*catalog.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) BrandName(ctx context.Context, brandID int) string {
	args := m.Called(ctx, brandID)
	return args.String(0)
}
