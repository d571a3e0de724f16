package enum

import (
	"database/sql/driver"
	"strings"

	"github.com/nexuspos/pos-api/pkg/apperror"
)

// AdjustmentReason explains why a manual stock correction was recorded
type AdjustmentReason string

const (
	AdjustmentReasonDamage    AdjustmentReason = "damage"
	AdjustmentReasonTheft     AdjustmentReason = "theft"
	AdjustmentReasonDataError AdjustmentReason = "data_error"
	AdjustmentReasonStockTake AdjustmentReason = "stock_take"
	AdjustmentReasonFound     AdjustmentReason = "found"
	AdjustmentReasonOther     AdjustmentReason = "other"
)

// ParseAdjustmentReason converts a request string into an AdjustmentReason.
func ParseAdjustmentReason(s string) (AdjustmentReason, error) {
	switch AdjustmentReason(strings.ToLower(strings.TrimSpace(s))) {
	case AdjustmentReasonDamage:
		return AdjustmentReasonDamage, nil
	case AdjustmentReasonTheft:
		return AdjustmentReasonTheft, nil
	case AdjustmentReasonDataError:
		return AdjustmentReasonDataError, nil
	case AdjustmentReasonStockTake:
		return AdjustmentReasonStockTake, nil
	case AdjustmentReasonFound:
		return AdjustmentReasonFound, nil
	case AdjustmentReasonOther:
		return AdjustmentReasonOther, nil
	}
	return "", apperror.NewBadRequestError("Unknown adjustment reason: " + s)
}

func (r AdjustmentReason) String() string {
	return string(r)
}

func (r AdjustmentReason) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *AdjustmentReason) Scan(value interface{}) error {
	if value == nil {
		*r = AdjustmentReasonOther
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = AdjustmentReason(v)
	case []byte:
		*r = AdjustmentReason(string(v))
	}
	return nil
}
