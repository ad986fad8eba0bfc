package tabgenie

import "encoding/json"

type tableJSON struct {
	Data       [][]*Cell `json:"data"`
	Properties *Props    `json:"properties,omitempty"`
}

// ToJSON encodes the grid as {"data": [[cell, ...], ...]} with the table
// properties under "properties" when includeProps is set.
func ToJSON(t *Table, includeProps bool) ([]byte, error) {
	v := tableJSON{Data: t.Cells}
	if v.Data == nil {
		v.Data = [][]*Cell{}
	}
	if includeProps {
		v.Properties = &t.Props
	}
	return json.MarshalIndent(v, "", "  ")
}
