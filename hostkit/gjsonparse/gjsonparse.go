// Package gjsonparse implements the script Parse contract on top of
// tidwall/gjson.
package gjsonparse

import (
	"fmt"

	v1 "github.com/Infigo-Official/types-for-megascript/v1"
	"github.com/tidwall/gjson"
)

// Parser implements v1.Parse.
type Parser struct{}

var _ v1.Parse = Parser{}

// New returns a Parser.
func New() Parser {
	return Parser{}
}

// JSON implements v1.Parse
func (Parser) JSON(data []byte) (v1.Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON document", v1.ErrInvalidInput)
	}
	return value{res: gjson.ParseBytes(data)}, nil
}

// value wraps a gjson result. Missing paths yield a value whose Exists
// reports false, matching the contract.
type value struct {
	res gjson.Result
}

func (v value) Exists() bool { return v.res.Exists() }

func (v value) Get(path string) v1.Value { return value{res: v.res.Get(path)} }

func (v value) String() string { return v.res.String() }

func (v value) Int() int64 { return v.res.Int() }

func (v value) Float() float64 { return v.res.Float() }

func (v value) Bool() bool { return v.res.Bool() }

func (v value) Raw() string { return v.res.Raw }

func (v value) Array() []v1.Value {
	if !v.res.IsArray() {
		return nil
	}
	items := v.res.Array()
	out := make([]v1.Value, len(items))
	for i, item := range items {
		out[i] = value{res: item}
	}
	return out
}

func (v value) Map() map[string]v1.Value {
	items := v.res.Map()
	out := make(map[string]v1.Value, len(items))
	for key, item := range items {
		out[key] = value{res: item}
	}
	return out
}
