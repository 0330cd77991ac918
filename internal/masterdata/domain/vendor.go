package domain

import "time"

// Vendor is a supplier master data record
type Vendor struct {
	id        VendorID
	name      VendorName
	gstNumber GSTNumber
	email     VendorEmail
	phone     Phone
	address   Address
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewVendor creates a new active vendor with a generated id
func NewVendor(name VendorName, gstNumber GSTNumber, email VendorEmail, phone Phone, address Address) *Vendor {
	now := time.Now().UTC()
	return &Vendor{
		id:        NewVendorID(),
		name:      name,
		gstNumber: gstNumber,
		email:     email,
		phone:     phone,
		address:   address,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}
}

// VendorFromPersistence rehydrates a vendor from storage
func VendorFromPersistence(id VendorID, name VendorName, gstNumber GSTNumber, email VendorEmail, phone Phone, address Address, status Status, createdAt, updatedAt time.Time) *Vendor {
	return &Vendor{
		id:        id,
		name:      name,
		gstNumber: gstNumber,
		email:     email,
		phone:     phone,
		address:   address,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (v *Vendor) ID() VendorID         { return v.id }
func (v *Vendor) Name() VendorName     { return v.name }
func (v *Vendor) GSTNumber() GSTNumber { return v.gstNumber }
func (v *Vendor) Email() VendorEmail   { return v.email }
func (v *Vendor) Phone() Phone         { return v.phone }
func (v *Vendor) Address() Address     { return v.address }
func (v *Vendor) Status() Status       { return v.status }
func (v *Vendor) CreatedAt() time.Time { return v.createdAt }
func (v *Vendor) UpdatedAt() time.Time { return v.updatedAt }

// Update replaces all mutable fields
func (v *Vendor) Update(name VendorName, gstNumber GSTNumber, email VendorEmail, phone Phone, address Address) {
	v.name = name
	v.gstNumber = gstNumber
	v.email = email
	v.phone = phone
	v.address = address
	v.touch()
}

func (v *Vendor) Activate() {
	v.status = StatusActive
	v.touch()
}

func (v *Vendor) Deactivate() {
	v.status = StatusInactive
	v.touch()
}

func (v *Vendor) touch() {
	v.updatedAt = time.Now().UTC()
}
