package service

import (
	"context"
	"testing"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCategoryRepo struct {
	cats     map[int]*model.Category
	nextN    int
	products map[int]int64 // category number → product count
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{cats: make(map[int]*model.Category), nextN: 1, products: make(map[int]int64)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	c.Number = r.nextN
	r.nextN++
	r.cats[c.Number] = c
	return nil
}

func (r *stubCategoryRepo) FindByNumber(_ context.Context, number int) (*model.Category, error) {
	c, ok := r.cats[number]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) List(_ context.Context, _ dto.CategoryFilter) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.cats))
	for _, c := range r.cats {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) (bool, error) {
	_, ok := r.cats[c.Number]
	r.cats[c.Number] = c
	return ok, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, number int) (bool, error) {
	_, ok := r.cats[number]
	delete(r.cats, number)
	return ok, nil
}

func (r *stubCategoryRepo) CountProducts(_ context.Context, number int) (int64, error) {
	return r.products[number], nil
}

func TestCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Dairy"})
	require.NoError(t, err)

	repo.products[created.Number] = 3
	assert.ErrorIs(t, svc.Delete(context.Background(), created.Number), ErrReferenced)

	repo.products[created.Number] = 0
	require.NoError(t, svc.Delete(context.Background(), created.Number))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.Number), ErrNotFound)
}

func TestCategoryUpdateRename(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Diary"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.Number, dto.UpdateCategoryRequest{Name: "Dairy"})
	require.NoError(t, err)
	assert.Equal(t, "Dairy", updated.Name)

	_, err = svc.Update(context.Background(), 404, dto.UpdateCategoryRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}
