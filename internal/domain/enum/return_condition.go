package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/nexuspos/pos-api/pkg/apperror"
)

// ReturnCondition represents the physical condition of a returned item.
// Only items returned in good condition go back into sellable stock.
type ReturnCondition string

const (
	ReturnConditionGood    ReturnCondition = "good"
	ReturnConditionDamaged ReturnCondition = "damaged"
)

// ParseReturnCondition converts a request string into a ReturnCondition.
func ParseReturnCondition(s string) (ReturnCondition, error) {
	switch ReturnCondition(strings.ToLower(strings.TrimSpace(s))) {
	case ReturnConditionGood:
		return ReturnConditionGood, nil
	case ReturnConditionDamaged:
		return ReturnConditionDamaged, nil
	}
	return "", apperror.NewBadRequestError("Unknown return condition: " + s)
}

func (c ReturnCondition) String() string {
	return string(c)
}

func (c ReturnCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *ReturnCondition) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = ReturnCondition(str)
	return nil
}

func (c ReturnCondition) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *ReturnCondition) Scan(value interface{}) error {
	if value == nil {
		*c = ReturnConditionGood
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = ReturnCondition(v)
	case []byte:
		*c = ReturnCondition(string(v))
	}
	return nil
}
