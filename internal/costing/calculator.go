package costing

import "platecost/internal/domain"

// Calculator computes composition costs over one immutable snapshot. Every
// method is a pure function of the snapshot; callers that need fresh data
// load a new snapshot and build a new Calculator.
type Calculator struct {
	snap *domain.Snapshot
}

func NewCalculator(snap *domain.Snapshot) *Calculator {
	return &Calculator{snap: snap}
}

// Convert re-expresses qty from one unit into another of the same
// conversion category. Identity conversions return qty untouched so no
// floating-point drift is introduced by a redundant multiply-divide.
func (c *Calculator) Convert(qty float64, fromID, toID int) (float64, error) {
	if fromID == toID {
		return qty, nil
	}

	from, ok := c.snap.Units[fromID]
	if !ok {
		return 0, &UnknownUnitError{UnitID: fromID}
	}
	to, ok := c.snap.Units[toID]
	if !ok {
		return 0, &UnknownUnitError{UnitID: toID}
	}

	if from.CategoryID != to.CategoryID {
		return 0, &IncompatibleUnitsError{
			FromUnitID:     from.ID,
			ToUnitID:       to.ID,
			FromCategoryID: from.CategoryID,
			ToCategoryID:   to.CategoryID,
		}
	}

	return qty * (from.ConversionFactor / to.ConversionFactor), nil
}
