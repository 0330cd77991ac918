package domain

import "time"

// Category is an expense category master data record
type Category struct {
	id          CategoryID
	name        CategoryName
	description Description
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCategory creates a new active category with a generated id
func NewCategory(name CategoryName, description Description) *Category {
	now := time.Now().UTC()
	return &Category{
		id:          NewCategoryID(),
		name:        name,
		description: description,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}
}

// CategoryFromPersistence rehydrates a category from storage
func CategoryFromPersistence(id CategoryID, name CategoryName, description Description, status Status, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() CategoryID           { return c.id }
func (c *Category) Name() CategoryName       { return c.name }
func (c *Category) Description() Description { return c.description }
func (c *Category) Status() Status           { return c.status }
func (c *Category) CreatedAt() time.Time     { return c.createdAt }
func (c *Category) UpdatedAt() time.Time     { return c.updatedAt }

// Update replaces name and description
func (c *Category) Update(name CategoryName, description Description) {
	c.name = name
	c.description = description
	c.touch()
}

func (c *Category) Activate() {
	c.status = StatusActive
	c.touch()
}

func (c *Category) Deactivate() {
	c.status = StatusInactive
	c.touch()
}

func (c *Category) touch() {
	c.updatedAt = time.Now().UTC()
}
