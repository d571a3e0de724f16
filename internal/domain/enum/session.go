package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SessionStatus represents the lifecycle state of a drawer session
type SessionStatus int

const (
	SessionStatusOpen   SessionStatus = 0
	SessionStatusClosed SessionStatus = 1
)

func (s SessionStatus) String() string {
	return [...]string{"Open", "Closed"}[s]
}

func (s SessionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SessionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SessionStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = SessionStatusOpen
	case "Closed":
		*s = SessionStatusClosed
	}
	return nil
}

func (s SessionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SessionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SessionStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SessionStatus(v)
	case int:
		*s = SessionStatus(v)
	}
	return nil
}

// CashFlowType classifies drawer cash movements outside of sales
type CashFlowType string

const (
	CashFlowTypeSafeDrop CashFlowType = "safe_drop"
	CashFlowTypePayOut   CashFlowType = "pay_out"
	CashFlowTypePayIn    CashFlowType = "pay_in"
)

func (t CashFlowType) String() string {
	return string(t)
}

func (t CashFlowType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CashFlowType) Scan(value interface{}) error {
	if value == nil {
		*t = CashFlowTypePayIn
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CashFlowType(v)
	case []byte:
		*t = CashFlowType(string(v))
	}
	return nil
}
