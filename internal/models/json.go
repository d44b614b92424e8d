package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON decodes a jsonb column into dest, accepting both the []byte and
// string representations the postgres driver may hand us.
func scanJSON(value any, dest any) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

func valueJSON(src any) (driver.Value, error) {
	b, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
