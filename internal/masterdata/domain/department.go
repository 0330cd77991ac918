package domain

import "time"

// Department is a department master data record
type Department struct {
	id          DepartmentID
	name        DepartmentName
	code        DepartmentCode
	description Description
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewDepartment creates a new active department with a generated id
func NewDepartment(name DepartmentName, code DepartmentCode, description Description) *Department {
	now := time.Now().UTC()
	return &Department{
		id:          NewDepartmentID(),
		name:        name,
		code:        code,
		description: description,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}
}

// DepartmentFromPersistence rehydrates a department from storage
func DepartmentFromPersistence(id DepartmentID, name DepartmentName, code DepartmentCode, description Description, status Status, createdAt, updatedAt time.Time) *Department {
	return &Department{
		id:          id,
		name:        name,
		code:        code,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (d *Department) ID() DepartmentID         { return d.id }
func (d *Department) Name() DepartmentName     { return d.name }
func (d *Department) Code() DepartmentCode     { return d.code }
func (d *Department) Description() Description { return d.description }
func (d *Department) Status() Status           { return d.status }
func (d *Department) CreatedAt() time.Time     { return d.createdAt }
func (d *Department) UpdatedAt() time.Time     { return d.updatedAt }

// Update replaces name, code and description
func (d *Department) Update(name DepartmentName, code DepartmentCode, description Description) {
	d.name = name
	d.code = code
	d.description = description
	d.touch()
}

func (d *Department) Activate() {
	d.status = StatusActive
	d.touch()
}

func (d *Department) Deactivate() {
	d.status = StatusInactive
	d.touch()
}

func (d *Department) touch() {
	d.updatedAt = time.Now().UTC()
}
