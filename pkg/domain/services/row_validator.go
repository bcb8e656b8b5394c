package services

import (
	"fmt"

	"github.com/nmasri/laneplan/pkg/domain/entities"
)

// RowValidator enforces the write-path preconditions on demand and supply
// rows before they reach storage or aggregation.
type RowValidator struct{}

// NewRowValidator creates a new row validator
func NewRowValidator() *RowValidator {
	return &RowValidator{}
}

// ValidateDemand checks a demand row's route key, contributor and slots
func (v *RowValidator) ValidateDemand(row entities.DemandRow) error {
	if err := validateCommon(row.RouteKey, row.Slots); err != nil {
		return err
	}
	if row.ClientID == "" {
		return fmt.Errorf("demand row for %s missing client: %w", row.RouteKey, entities.ErrValidation)
	}
	return nil
}

// ValidateSupply checks a supply row's route key, contributor and slots
func (v *RowValidator) ValidateSupply(row entities.SupplyRow) error {
	if err := validateCommon(row.RouteKey, row.Slots); err != nil {
		return err
	}
	if row.SupplierID == "" {
		return fmt.Errorf("supply row for %s missing supplier: %w", row.RouteKey, entities.ErrValidation)
	}
	return nil
}

func validateCommon(key entities.RouteKey, slots entities.SlotVector) error {
	if key == "" {
		return fmt.Errorf("row has empty route key: %w", entities.ErrValidation)
	}
	if len(slots) != 5 && len(slots) != 7 {
		return fmt.Errorf("row for %s has %d slots, want 5 or 7: %w", key, len(slots), entities.ErrValidation)
	}
	for i, q := range slots {
		if q < 0 {
			return fmt.Errorf("row for %s has negative quantity %d in slot %d: %w",
				key, q, i+1, entities.ErrValidation)
		}
	}
	return nil
}
