package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TagList is an ordered list of tag strings stored as a JSON-encoded text
// column so the same model works on both postgres and sqlite.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*t = TagList{}
			return nil
		}
		return json.Unmarshal(v, t)
	case string:
		if v == "" {
			*t = TagList{}
			return nil
		}
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}
}

// SplitTags turns the raw comma separated form value into a TagList.
// Values are kept exactly as submitted: no trimming, no deduplication.
func SplitTags(raw string) TagList {
	if raw == "" {
		return TagList{}
	}
	return TagList(strings.Split(raw, ","))
}
