package surrealhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/surrealdb/surrealhttp.go/internal/util"
	"github.com/surrealdb/surrealhttp.go/pkg/constants"
)

// StatusOK is the status reported by the server for a successful statement.
const StatusOK = "OK"

// RawQuery is a typed response envelope, used when decoding the results of
// Query into caller-defined types.
type RawQuery[I any] struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Result I      `json:"result"`
	Detail string `json:"detail"`
}

// Unmarshal loads a generic value returned by a client operation into v by
// round-tripping it through JSON.
func Unmarshal(data, v any) error {
	if util.IsSlice(v) {
		if _, ok := data.([]any); !ok {
			return fmt.Errorf("failed to deserialise response to slice: %w", constants.ErrInvalidResponse)
		}
	}
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialise response '%+v': %w", data, err)
	}
	if err := json.Unmarshal(jsonBytes, v); err != nil {
		return fmt.Errorf("failed unmarshaling '%s': %w", jsonBytes, err)
	}
	return nil
}

// UnmarshalRaw loads the raw envelope list returned by Query into a slice of
// typed envelopes. Statements that did not return OK are folded into the
// returned error; envelopes for successful statements are still populated.
func UnmarshalRaw[I any](rawData any, v *[]RawQuery[I]) error {
	data, err := json.Marshal(rawData)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	for i := range *v {
		if (*v)[i].Status != StatusOK {
			err = errors.Join(err, fmt.Errorf("status: %s, detail: %s: %w",
				(*v)[i].Status, (*v)[i].Detail, constants.ErrQuery))
		}
	}
	return err
}

// SmartUnmarshal decodes the result of any client operation into a slice of
// I, accepting both plain results (Select, Create, Update, Patch) and raw
// envelope lists (Query, Delete). It can be chained directly onto a call:
//
//	people, err := surrealhttp.SmartUnmarshal[Person](db.Select("person"))
func SmartUnmarshal[I any](respond any, wrapperError error) ([]I, error) {
	if respond == nil || wrapperError != nil {
		return nil, wrapperError
	}
	data, err := json.Marshal(respond)
	if err != nil {
		return nil, err
	}

	arr, isArr := respond.([]any)
	if !isArr {
		// A single object, e.g. a record-addressed Select.
		var output I
		if err := json.Unmarshal(data, &output); err != nil {
			return nil, err
		}
		return []I{output}, nil
	}

	if isEnvelopeList(arr) {
		var rawArr []RawQuery[[]I]
		if err := json.Unmarshal(data, &rawArr); err != nil {
			return nil, err
		}
		var stmtErr error
		outputs := make([]I, 0)
		for _, raw := range rawArr {
			if raw.Status != StatusOK {
				stmtErr = errors.Join(stmtErr, fmt.Errorf("status: %s: %w", raw.Status, constants.ErrQuery))
				continue
			}
			outputs = append(outputs, raw.Result...)
		}
		return outputs, stmtErr
	}

	var outputs []I
	if err := json.Unmarshal(data, &outputs); err != nil {
		return nil, err
	}
	return outputs, nil
}

// isEnvelopeList reports whether every element carries the per-statement
// envelope keys, distinguishing Query and Delete results from plain record
// lists. Records are free-form, so the check looks at the decoded maps
// rather than attempting a strict decode.
func isEnvelopeList(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := m["status"]; !ok {
			return false
		}
		if _, ok := m["time"]; !ok {
			return false
		}
	}
	return true
}

// Basemodel marks the table a struct belongs to for SmartMarshal. It carries
// no value; the table name lives in its struct tag:
//
//	type User struct {
//		surrealhttp.Basemodel `table:"users"`
//		ID                    string `json:"id,omitempty"`
//	}
type Basemodel struct{}

// SmartMarshal errors
var (
	ErrNotStruct    = errors.New("data is not struct")
	ErrNotValidFunc = errors.New("invalid function")
)

// SmartMarshal calls a client operation with the thing reference derived
// from data itself: the string ID field when set, otherwise the table name
// from a Basemodel struct tag, otherwise the struct type name.
//
//	user, err := surrealhttp.SmartMarshal(db.Create, User{Name: "Tobie"})
func SmartMarshal[I any](inputfunc any, data I) (any, error) {
	var thing string

	datatype := reflect.TypeOf(data)
	datavalue := reflect.ValueOf(data)
	if datatype.Kind() == reflect.Pointer {
		datatype = datatype.Elem()
		datavalue = datavalue.Elem()
	}
	if datatype.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	if datatype.NumField() > 0 {
		if _, ok := datavalue.Field(0).Interface().(Basemodel); ok {
			if table, ok := datatype.Field(0).Tag.Lookup("table"); ok {
				thing = table
			} else {
				thing = datatype.Name()
			}
		}
	}
	if field, ok := datatype.FieldByName("ID"); ok && field.Type.Kind() == reflect.String {
		if id := datavalue.FieldByName("ID").String(); id != "" {
			thing = id
		}
	}

	switch function := inputfunc.(type) {
	case func(string, any) (any, error):
		return function(thing, data)
	case func(string) (any, error):
		return function(thing)
	}
	return nil, ErrNotValidFunc
}
