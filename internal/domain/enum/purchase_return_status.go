package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PurchaseReturnStatus represents the state of a return to supplier
type PurchaseReturnStatus int

const (
	PurchaseReturnStatusDraft     PurchaseReturnStatus = 0
	PurchaseReturnStatusCompleted PurchaseReturnStatus = 1
)

func (s PurchaseReturnStatus) String() string {
	return [...]string{"Draft", "Completed"}[s]
}

func (s PurchaseReturnStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PurchaseReturnStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PurchaseReturnStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = PurchaseReturnStatusDraft
	case "Completed":
		*s = PurchaseReturnStatusCompleted
	}
	return nil
}

func (s PurchaseReturnStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PurchaseReturnStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseReturnStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PurchaseReturnStatus(v)
	case int:
		*s = PurchaseReturnStatus(v)
	}
	return nil
}
