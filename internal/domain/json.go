package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap maps to a jsonb column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	return scanJSON(src, m)
}

// Metrics maps numeric engagement counters to a jsonb column. Values are
// float64 because that is what JSON numbers decode to.
type Metrics map[string]float64

func (m Metrics) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metrics) Scan(src any) error {
	return scanJSON(src, m)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// String reads a string-valued key, tolerating absence.
func (m JSONMap) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// Float reads a numeric key, tolerating absence and integer-typed values.
func (m JSONMap) Float(key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

// Bool reads a boolean key, tolerating absence.
func (m JSONMap) Bool(key string) bool {
	b, _ := m[key].(bool)
	return b
}

// Map reads a nested object key, tolerating absence.
func (m JSONMap) Map(key string) JSONMap {
	switch v := m[key].(type) {
	case JSONMap:
		return v
	case map[string]any:
		return JSONMap(v)
	default:
		return nil
	}
}
