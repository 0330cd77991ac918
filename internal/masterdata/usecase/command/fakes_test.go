package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

type fakeCategoryStore struct {
	categories map[string]*domain.Category
	saveCalls  int
}

func newFakeCategoryStore(categories ...*domain.Category) *fakeCategoryStore {
	store := &fakeCategoryStore{categories: make(map[string]*domain.Category)}
	for _, c := range categories {
		store.categories[c.ID().String()] = c
	}
	return store
}

func (s *fakeCategoryStore) Save(ctx context.Context, category *domain.Category) error {
	s.saveCalls++
	s.categories[category.ID().String()] = category
	return nil
}

func (s *fakeCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if _, ok := s.categories[category.ID().String()]; !ok {
		return apperrors.NotFound("category not found")
	}
	s.categories[category.ID().String()] = category
	return nil
}

func (s *fakeCategoryStore) Delete(ctx context.Context, id domain.CategoryID) error {
	if _, ok := s.categories[id.String()]; !ok {
		return apperrors.NotFound("category not found")
	}
	delete(s.categories, id.String())
	return nil
}

func (s *fakeCategoryStore) ExistsByName(ctx context.Context, name domain.CategoryName) (bool, error) {
	for _, c := range s.categories {
		if c.Name().Equals(name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCategoryStore) ExistsByNameExcludingID(ctx context.Context, name domain.CategoryName, id domain.CategoryID) (bool, error) {
	for _, c := range s.categories {
		if c.Name().Equals(name) && !c.ID().Equals(id) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCategoryStore) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	c, ok := s.categories[id.String()]
	if !ok {
		return nil, apperrors.NotFound("category not found")
	}
	return c, nil
}

func (s *fakeCategoryStore) FindAll(ctx context.Context, filter domain.ListFilter) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (s *fakeCategoryStore) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return int64(len(s.categories)), nil
}

type fakeDepartmentStore struct {
	departments map[string]*domain.Department
}

func newFakeDepartmentStore(departments ...*domain.Department) *fakeDepartmentStore {
	store := &fakeDepartmentStore{departments: make(map[string]*domain.Department)}
	for _, d := range departments {
		store.departments[d.ID().String()] = d
	}
	return store
}

func (s *fakeDepartmentStore) Save(ctx context.Context, department *domain.Department) error {
	s.departments[department.ID().String()] = department
	return nil
}

func (s *fakeDepartmentStore) Update(ctx context.Context, department *domain.Department) error {
	if _, ok := s.departments[department.ID().String()]; !ok {
		return apperrors.NotFound("department not found")
	}
	s.departments[department.ID().String()] = department
	return nil
}

func (s *fakeDepartmentStore) Delete(ctx context.Context, id domain.DepartmentID) error {
	if _, ok := s.departments[id.String()]; !ok {
		return apperrors.NotFound("department not found")
	}
	delete(s.departments, id.String())
	return nil
}

func (s *fakeDepartmentStore) ExistsByName(ctx context.Context, name domain.DepartmentName) (bool, error) {
	for _, d := range s.departments {
		if d.Name().Equals(name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeDepartmentStore) ExistsByNameExcludingID(ctx context.Context, name domain.DepartmentName, id domain.DepartmentID) (bool, error) {
	for _, d := range s.departments {
		if d.Name().Equals(name) && !d.ID().Equals(id) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeDepartmentStore) ExistsByCode(ctx context.Context, code domain.DepartmentCode) (bool, error) {
	if code.IsZero() {
		return false, nil
	}
	for _, d := range s.departments {
		if d.Code().Equals(code) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeDepartmentStore) ExistsByCodeExcludingID(ctx context.Context, code domain.DepartmentCode, id domain.DepartmentID) (bool, error) {
	if code.IsZero() {
		return false, nil
	}
	for _, d := range s.departments {
		if d.Code().Equals(code) && !d.ID().Equals(id) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeDepartmentStore) FindByID(ctx context.Context, id domain.DepartmentID) (*domain.Department, error) {
	d, ok := s.departments[id.String()]
	if !ok {
		return nil, apperrors.NotFound("department not found")
	}
	return d, nil
}

func (s *fakeDepartmentStore) FindAll(ctx context.Context, filter domain.ListFilter) ([]*domain.Department, error) {
	departments := make([]*domain.Department, 0, len(s.departments))
	for _, d := range s.departments {
		departments = append(departments, d)
	}
	return departments, nil
}

func (s *fakeDepartmentStore) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return int64(len(s.departments)), nil
}
