package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type AuditDetails map[string]any

func (d AuditDetails) Value() (driver.Value, error) {
	if d == nil {
		d = AuditDetails{}
	}
	return json.Marshal(d)
}

func (d *AuditDetails) Scan(value interface{}) error {
	if value == nil {
		*d = AuditDetails{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return fmt.Errorf("unsupported audit details source %T", value)
}

// AuditLog records every admin mutation against the store.
type AuditLog struct {
	ID        string       `json:"id" gorm:"primaryKey"`
	AdminID   string       `json:"admin_id" gorm:"index"`
	Action    string       `json:"action"`
	Table     string       `json:"table_name" gorm:"column:table_name"`
	RecordID  string       `json:"record_id,omitempty"`
	Details   AuditDetails `json:"details,omitempty" gorm:"type:text"`
	IPAddress string       `json:"ip_address,omitempty"`
	CreatedAt time.Time    `json:"created_at" gorm:"index"`
}

func (AuditLog) TableName() string { return "admin_audit_logs" }
