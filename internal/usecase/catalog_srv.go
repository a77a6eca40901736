package usecase

import (
	"context"

	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

// CatalogService is plain CRUD over one table. R is the request body, E
// the stored row.
type CatalogService[R any, E any] interface {
	List(ctx context.Context) ([]*E, error)
	Create(ctx context.Context, req *R) (*E, error)
	Update(ctx context.Context, id string, req *R) (*E, error)
	Delete(ctx context.Context, id string) error
}

type catalogStore[E any] interface {
	Create(ctx context.Context, item *E) error
	FindAll(ctx context.Context) ([]*E, error)
	Update(ctx context.Context, item *E) error
	Delete(ctx context.Context, id string) error
}

// catalogMapper builds the row for id from req, filling defaults. today is
// formatted as a date.
type catalogMapper[R any, E any] func(id string, req *R, today string) *E

type catalogService[R any, E any] struct {
	what  string
	store catalogStore[E]
	toRow catalogMapper[R, E]
	log   *zap.Logger
	now   Clock
}

func newCatalogService[R any, E any](what string, store catalogStore[E], toRow catalogMapper[R, E], log *zap.Logger, now Clock) CatalogService[R, E] {
	return &catalogService[R, E]{
		what:  what,
		store: store,
		toRow: toRow,
		log:   log.With(zap.String("service", what)),
		now:   now,
	}
}

func (cs *catalogService[R, E]) List(ctx context.Context) ([]*E, error) {
	items, err := cs.store.FindAll(ctx)
	if err != nil {
		return nil, storageErr("list "+cs.what, err)
	}
	return items, nil
}

func (cs *catalogService[R, E]) Create(ctx context.Context, req *R) (*E, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	item := cs.toRow(idOf(req), req, cs.today())
	if err := cs.store.Create(ctx, item); err != nil {
		return nil, storageErr("create "+cs.what, err)
	}
	return item, nil
}

// Update replaces every column of the row at id. The id in the path wins
// over any id in the body.
func (cs *catalogService[R, E]) Update(ctx context.Context, id string, req *R) (*E, error) {
	setID(req, id)
	if err := validate(req); err != nil {
		return nil, err
	}

	item := cs.toRow(id, req, cs.today())
	if err := cs.store.Update(ctx, item); err != nil {
		return nil, storageErr("update "+cs.what, err)
	}
	return item, nil
}

func (cs *catalogService[R, E]) Delete(ctx context.Context, id string) error {
	if err := cs.store.Delete(ctx, id); err != nil {
		return storageErr("delete "+cs.what, err)
	}
	cs.log.Info("Deleted", zap.String("id", id))
	return nil
}

func (cs *catalogService[R, E]) today() string {
	return utils.FormatDate(cs.now())
}
