package nlpearl

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Result is the decoded response of an operation.
// JSON bodies are kept in Raw; the few endpoints that may answer with plain
// text on success carry it in Text instead.
type Result struct {
	Status int
	Raw    json.RawMessage
	Text   string
}

// IsJSON reports whether the response carried a JSON body.
func (r *Result) IsJSON() bool {
	return r != nil && len(r.Raw) > 0
}

// Get returns the value at a gjson path, e.g. "creditBalance" or "results.#.id".
func (r *Result) Get(path string) gjson.Result {
	if !r.IsJSON() {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Raw, path)
}

// Decode unmarshals the JSON body into v.
func (r *Result) Decode(v any) error {
	if !r.IsJSON() {
		return fmt.Errorf("response has no JSON body")
	}
	return json.Unmarshal(r.Raw, v)
}

// String returns the raw body: the JSON text or the plain-text fallback.
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	if len(r.Raw) > 0 {
		return string(r.Raw)
	}
	return r.Text
}

// As decodes the result of an operation into T. It passes err through
// unchanged, so calls can be wrapped directly:
//
//	acct, err := nlpearl.As[nlpearl.Account](c.Account.Get(ctx))
func As[T any](res *Result, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if err := res.Decode(&v); err != nil {
		return v, fmt.Errorf("decode %T: %w", v, err)
	}
	return v, nil
}
