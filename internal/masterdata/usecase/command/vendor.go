package command

import (
	"context"

	"github.com/tair/expense-tracker/internal/masterdata/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// CreateVendorCommand carries the input for creating a vendor
type CreateVendorCommand struct {
	Name      string
	GSTNumber string
	Email     string
	Phone     string
	Address   string
}

// VendorCommandHandler handles all vendor write operations
type VendorCommandHandler struct {
	repo    domain.VendorRepository
	queries domain.VendorQueryRepository
}

// NewVendorCommandHandler creates a new vendor command handler
func NewVendorCommandHandler(repo domain.VendorRepository, queries domain.VendorQueryRepository) *VendorCommandHandler {
	return &VendorCommandHandler{repo: repo, queries: queries}
}

func parseVendorFields(cmd CreateVendorCommand) (domain.VendorName, domain.GSTNumber, domain.VendorEmail, domain.Phone, domain.Address, error) {
	name, err := domain.NewVendorName(cmd.Name)
	if err != nil {
		return domain.VendorName{}, domain.GSTNumber{}, domain.VendorEmail{}, domain.Phone{}, domain.Address{}, err
	}
	gst, err := domain.NewGSTNumber(cmd.GSTNumber)
	if err != nil {
		return domain.VendorName{}, domain.GSTNumber{}, domain.VendorEmail{}, domain.Phone{}, domain.Address{}, err
	}
	email, err := domain.NewVendorEmail(cmd.Email)
	if err != nil {
		return domain.VendorName{}, domain.GSTNumber{}, domain.VendorEmail{}, domain.Phone{}, domain.Address{}, err
	}
	phone, err := domain.NewPhone(cmd.Phone)
	if err != nil {
		return domain.VendorName{}, domain.GSTNumber{}, domain.VendorEmail{}, domain.Phone{}, domain.Address{}, err
	}
	address, err := domain.NewAddress(cmd.Address)
	if err != nil {
		return domain.VendorName{}, domain.GSTNumber{}, domain.VendorEmail{}, domain.Phone{}, domain.Address{}, err
	}
	return name, gst, email, phone, address, nil
}

// Create validates input, checks name and email uniqueness and persists
func (h *VendorCommandHandler) Create(ctx context.Context, cmd CreateVendorCommand) (*VendorDTO, error) {
	name, gst, email, phone, address, err := parseVendorFields(cmd)
	if err != nil {
		return nil, err
	}

	exists, err := h.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("vendor with name %q already exists", name.String())
	}

	exists, err = h.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("vendor with email %q already exists", email.String())
	}

	vendor := domain.NewVendor(name, gst, email, phone, address)
	if err := h.repo.Save(ctx, vendor); err != nil {
		return nil, err
	}
	return VendorView(vendor), nil
}

// UpdateVendorCommand carries the input for updating a vendor
type UpdateVendorCommand struct {
	ID        string
	Name      string
	GSTNumber string
	Email     string
	Phone     string
	Address   string
}

// Update validates input, checks uniqueness excluding self and persists
func (h *VendorCommandHandler) Update(ctx context.Context, cmd UpdateVendorCommand) (*VendorDTO, error) {
	id, err := domain.ParseVendorID(cmd.ID)
	if err != nil {
		return nil, err
	}
	name, gst, email, phone, address, err := parseVendorFields(CreateVendorCommand{
		Name:      cmd.Name,
		GSTNumber: cmd.GSTNumber,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		Address:   cmd.Address,
	})
	if err != nil {
		return nil, err
	}

	vendor, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := h.repo.ExistsByNameExcludingID(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("vendor with name %q already exists", name.String())
	}

	exists, err = h.repo.ExistsByEmailExcludingID(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("vendor with email %q already exists", email.String())
	}

	vendor.Update(name, gst, email, phone, address)
	if err := h.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return VendorView(vendor), nil
}

// Delete removes a vendor permanently
func (h *VendorCommandHandler) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ParseVendorID(rawID)
	if err != nil {
		return err
	}
	return h.repo.Delete(ctx, id)
}

// Activate marks a vendor active
func (h *VendorCommandHandler) Activate(ctx context.Context, rawID string) (*VendorDTO, error) {
	id, err := domain.ParseVendorID(rawID)
	if err != nil {
		return nil, err
	}
	vendor, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vendor.Activate()
	if err := h.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return VendorView(vendor), nil
}

// Deactivate marks a vendor inactive
func (h *VendorCommandHandler) Deactivate(ctx context.Context, rawID string) (*VendorDTO, error) {
	id, err := domain.ParseVendorID(rawID)
	if err != nil {
		return nil, err
	}
	vendor, err := h.queries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vendor.Deactivate()
	if err := h.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return VendorView(vendor), nil
}
