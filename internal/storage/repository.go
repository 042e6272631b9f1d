package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateItem(ctx context.Context, in Item) error
	GetItem(ctx context.Context, id string) (Item, error)
	UpdateItem(ctx context.Context, in Item) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, filter ItemListFilter) ([]Item, error)

	AddCompletion(ctx context.Context, in Completion) error
	DeleteCompletion(ctx context.Context, itemID, day string) error
	ListCompletions(ctx context.Context, filter CompletionListFilter) ([]Completion, error)
}
