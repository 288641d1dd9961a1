package catalog

import "context"

type Repository interface {
	GetUnitByID(ctx context.Context, id int) (*Unit, error)
	GetWorkByID(ctx context.Context, id int) (*Work, error)
	NextUnit(ctx context.Context, unit *Unit) (*Unit, error)
	PrevUnit(ctx context.Context, unit *Unit) (*Unit, error)
	ListUnitsByWork(ctx context.Context, workID int) ([]Unit, error)
	ListPublishedWorkIDs(ctx context.Context, categoryID int) ([]int, error)
	ListFreeUnitsByWorks(ctx context.Context, workIDs []int) ([]Unit, error)
	IncrementUnitViews(ctx context.Context, unitID int) error
	IncrementWorkViews(ctx context.Context, workID int) error
	IncrementCategoryViews(ctx context.Context, categoryID int) error
}
