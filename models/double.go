package models

import (
	"encoding/json"
	"strings"
)

// Double is a float64 that also accepts quoted numbers and null on input,
// since form-built clients are sloppy about numeric types.
type Double float64

func (d *Double) UnmarshalJSON(input []byte) error {
	if d == nil {
		d = new(Double)
	}
	strInput := string(input)
	if strInput == "null" {
		*d = 0
		return nil
	}
	strInput = strings.Trim(strInput, `"`)
	var buf float64
	err := json.Unmarshal([]byte(strInput), &buf)
	if err == nil {
		*d = Double(buf)
	}
	return err
}

func (d Double) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(d))
}
