package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Rules maps a field name to the JSONPath expression that locates it.
type Rules map[string]string

// Values holds extracted fields rendered as strings.
type Values map[string]string

// Result reports the outcome of one rule.
type Result struct {
	Name    string
	Success bool
	Message string
}

// Apply extracts fields from a JSON document using JSONPath rules.
//
// If body is not JSON every rule fails. A failing rule is reported in its
// Result; the remaining rules still run.
func Apply(body []byte, rules Rules) (Values, []Result) {
	if len(rules) == 0 {
		return Values{}, []Result{}
	}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc, err := parseJSON(body)
	if err != nil {
		out := make([]Result, 0, len(keys))
		for _, name := range keys {
			expr := strings.TrimSpace(rules[name])
			out = append(out, Result{
				Name:    name,
				Success: false,
				Message: fmt.Sprintf("extract %q (%s): response body is not valid JSON", name, expr),
			})
		}
		return Values{}, out
	}

	extracted := Values{}
	results := make([]Result, 0, len(keys))

	for _, name := range keys {
		expr := strings.TrimSpace(rules[name])
		if expr == "" {
			results = append(results, Result{
				Name:    name,
				Success: false,
				Message: fmt.Sprintf("extract %q: empty jsonpath expression", name),
			})
			continue
		}

		val, getErr := jsonpath.Get(expr, doc)
		if getErr != nil {
			results = append(results, Result{
				Name:    name,
				Success: false,
				Message: fmt.Sprintf("extract %q (%s): jsonpath error: %v", name, expr, getErr),
			})
			continue
		}

		if isEmptyValue(val) {
			results = append(results, Result{
				Name:    name,
				Success: false,
				Message: fmt.Sprintf("extract %q (%s): no value found", name, expr),
			})
			continue
		}

		s, convErr := toString(val)
		if convErr != nil {
			results = append(results, Result{
				Name:    name,
				Success: false,
				Message: fmt.Sprintf("extract %q (%s): cannot convert value to string: %v", name, expr, convErr),
			})
			continue
		}

		extracted[name] = s
		results = append(results, Result{
			Name:    name,
			Success: true,
			Message: fmt.Sprintf("extracted %q", name),
		})
	}

	return extracted, results
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Wildcard paths return a slice; a single match unwraps.
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
