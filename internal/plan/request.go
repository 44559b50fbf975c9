package plan

import "encoding/json"

// ParseRequest decodes the boundary JSON request.
func ParseRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// InvalidJSONReport is the report emitted when the boundary input does
// not parse. No launch is attempted in that case.
func InvalidJSONReport(err error) Report {
	return Report{
		Success: false,
		Windows: []Window{},
		Errors:  []string{"Invalid JSON: " + err.Error()},
	}
}
