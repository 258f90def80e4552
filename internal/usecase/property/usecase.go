package property

import (
	"context"
	"strings"

	domainContract "rentdesk-backend/internal/domain/contract"
	domainProperty "rentdesk-backend/internal/domain/property"
	"rentdesk-backend/pkg/id"
	"rentdesk-backend/pkg/valerr"
)

// Property and unit CRUD is not gated; any authenticated role proceeds
// directly (the existing gated-operation set is preserved as-is).
type Usecase struct {
	properties domainProperty.Repository
	units      domainProperty.UnitRepository
	contracts  domainContract.Repository
}

func NewUsecase(properties domainProperty.Repository, units domainProperty.UnitRepository, contracts domainContract.Repository) *Usecase {
	return &Usecase{properties: properties, units: units, contracts: contracts}
}

type CreatePropertyInput struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	Images  []string `json:"images"`
	Notes   string   `json:"notes"`
}

func (u *Usecase) CreateProperty(ctx context.Context, in CreatePropertyInput) (*domainProperty.Property, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, valerr.New("property name is required")
	}
	p := &domainProperty.Property{
		PropertyID: id.NewID32(),
		Name:       in.Name,
		Address:    in.Address,
		City:       in.City,
		Country:    in.Country,
		Active:     true,
		Images:     in.Images,
		Notes:      in.Notes,
	}
	if err := u.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdatePropertyInput struct {
	Name    *string   `json:"name,omitempty"`
	Address *string   `json:"address,omitempty"`
	City    *string   `json:"city,omitempty"`
	Country *string   `json:"country,omitempty"`
	Active  *bool     `json:"active,omitempty"`
	Images  *[]string `json:"images,omitempty"`
	Notes   *string   `json:"notes,omitempty"`
}

func (u *Usecase) UpdateProperty(ctx context.Context, propertyID string, in UpdatePropertyInput) (*domainProperty.Property, error) {
	p, err := u.properties.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.Country != nil {
		p.Country = *in.Country
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if err := u.properties.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) GetProperty(ctx context.Context, propertyID string) (*domainProperty.Property, error) {
	return u.properties.GetByPropertyID(ctx, propertyID)
}

func (u *Usecase) ListProperties(ctx context.Context) ([]domainProperty.Property, error) {
	return u.properties.List(ctx)
}

func (u *Usecase) DeleteProperty(ctx context.Context, propertyID string) error {
	if _, err := u.properties.GetByPropertyID(ctx, propertyID); err != nil {
		return err
	}
	n, err := u.units.CountByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domainProperty.ErrHasUnits
	}
	return u.properties.Delete(ctx, propertyID)
}

type CreateUnitInput struct {
	PropertyID  string                  `json:"property_id"`
	UnitNumber  string                  `json:"unit_number"`
	Bedrooms    int                     `json:"bedrooms"`
	Bathrooms   int                     `json:"bathrooms"`
	SizeSqm     float64                 `json:"size_sqm"`
	MonthlyRent float64                 `json:"monthly_rent"`
	Type        domainProperty.UnitType `json:"type"`
}

func (u *Usecase) CreateUnit(ctx context.Context, in CreateUnitInput) (*domainProperty.Unit, error) {
	if !domainProperty.ValidUnitType(in.Type) {
		return nil, valerr.New("invalid unit type")
	}
	if strings.TrimSpace(in.UnitNumber) == "" {
		return nil, valerr.New("unit number is required")
	}
	if _, err := u.properties.GetByPropertyID(ctx, in.PropertyID); err != nil {
		return nil, err
	}
	unit := &domainProperty.Unit{
		UnitID:      id.NewID32(),
		PropertyID:  in.PropertyID,
		UnitNumber:  in.UnitNumber,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		SizeSqm:     in.SizeSqm,
		MonthlyRent: in.MonthlyRent,
		Type:        in.Type,
	}
	if err := u.units.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// UpdateUnitInput has no occupied field: is_occupied is owned by the
// contract lifecycle and cannot be edited directly.
type UpdateUnitInput struct {
	UnitNumber  *string                  `json:"unit_number,omitempty"`
	Bedrooms    *int                     `json:"bedrooms,omitempty"`
	Bathrooms   *int                     `json:"bathrooms,omitempty"`
	SizeSqm     *float64                 `json:"size_sqm,omitempty"`
	MonthlyRent *float64                 `json:"monthly_rent,omitempty"`
	Type        *domainProperty.UnitType `json:"type,omitempty"`
}

func (u *Usecase) UpdateUnit(ctx context.Context, unitID string, in UpdateUnitInput) (*domainProperty.Unit, error) {
	unit, err := u.units.GetByUnitID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if in.UnitNumber != nil {
		unit.UnitNumber = *in.UnitNumber
	}
	if in.Bedrooms != nil {
		unit.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		unit.Bathrooms = *in.Bathrooms
	}
	if in.SizeSqm != nil {
		unit.SizeSqm = *in.SizeSqm
	}
	if in.MonthlyRent != nil {
		unit.MonthlyRent = *in.MonthlyRent
	}
	if in.Type != nil {
		if !domainProperty.ValidUnitType(*in.Type) {
			return nil, valerr.New("invalid unit type")
		}
		unit.Type = *in.Type
	}
	if err := u.units.Save(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (u *Usecase) GetUnit(ctx context.Context, unitID string) (*domainProperty.Unit, error) {
	return u.units.GetByUnitID(ctx, unitID)
}

func (u *Usecase) ListUnits(ctx context.Context, propertyID string) ([]domainProperty.Unit, error) {
	return u.units.List(ctx, propertyID)
}

func (u *Usecase) DeleteUnit(ctx context.Context, unitID string) error {
	if _, err := u.units.GetByUnitID(ctx, unitID); err != nil {
		return err
	}
	n, err := u.contracts.CountByUnit(ctx, unitID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domainProperty.ErrUnitInUse
	}
	return u.units.Delete(ctx, unitID)
}
