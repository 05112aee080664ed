package repository

import (
	"context"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// ProductRepository exposes the catalog reads the order flow needs.
// Stock decrements happen inside the order creation transaction and are
// owned by OrderRepository.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
}
