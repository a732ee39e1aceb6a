package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexNumber is a float64 that also accepts numeric strings when decoding
// JSON. MCP clients frequently quote numbers; a strict float64 field would
// reject `"amount": "100.50"`.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	if len(trimmed) >= 2 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as a number", s)
		}
		*f = FlexNumber(parsed)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot parse %s as a number", trimmed)
	}
	*f = FlexNumber(v)
	return nil
}

// Float64 returns the plain value.
func (f FlexNumber) Float64() float64 {
	return float64(f)
}
