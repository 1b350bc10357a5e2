package surrealhttp

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/surrealdb/surrealhttp.go/pkg/constants"
)

// --------------------------------------------------
// Public methods
// --------------------------------------------------

// Signup signs this connection up to a specific authentication scope,
// calling the endpoint POST /signup.
//
//	db.Signup(map[string]any{"user": "bob", "pass": "123456"})
func (c *Client) Signup(vars any) (any, error) {
	body, err := json.Marshal(vars)
	if err != nil {
		return nil, err
	}
	return c.request(http.MethodPost, "/signup", body, nil)
}

// Signin signs this connection in to a specific authentication scope,
// calling the endpoint POST /signin.
//
//	db.Signin(map[string]any{"user": "root", "pass": "root"})
func (c *Client) Signin(vars any) (any, error) {
	body, err := json.Marshal(vars)
	if err != nil {
		return nil, err
	}
	return c.request(http.MethodPost, "/signin", body, nil)
}

// Query runs a set of SurrealQL statements against the database, calling the
// endpoint POST /sql with the raw statement text as the body and vars bound
// as query parameters. The full list of per-statement response envelopes is
// returned, since a single call may run several statements.
//
//	result, err := db.Query("create person; select * from type::table($tb)",
//		map[string]string{"tb": "person"})
func (c *Client) Query(sql string, vars map[string]string) (any, error) {
	var params url.Values
	if len(vars) > 0 {
		params = url.Values{}
		for k, v := range vars {
			params.Set(k, v)
		}
	}
	return c.request(http.MethodPost, "/sql", []byte(sql), params)
}

// Select selects all records in a table, or a specific record, calling the
// endpoint GET /key/:table or GET /key/:table/:id.
//
// When thing addresses a specific record and the server returns an empty
// response, the error matches ErrKeyNotFound.
func (c *Client) Select(thing string) (any, error) {
	table, id := SplitThing(thing)
	res, err := c.request(http.MethodGet, keyPath(table, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return firstResult(res, table, id, true)
}

// Create creates a record in the database, calling the endpoint
// POST /key/:table or POST /key/:table/:id with the JSON-encoded data as the
// body. The same not-found check as Select applies when thing addresses a
// specific record.
func (c *Client) Create(thing string, data any) (any, error) {
	table, id := SplitThing(thing)
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	res, err := c.request(http.MethodPost, keyPath(table, id), body, nil)
	if err != nil {
		return nil, err
	}
	return firstResult(res, table, id, true)
}

// Update replaces all records in a table, or a specific record, calling the
// endpoint PUT /key/:table or PUT /key/:table/:id. Updating a missing record
// is a no-op on the server side, so no not-found check is performed.
func (c *Client) Update(thing string, data any) (any, error) {
	table, id := SplitThing(thing)
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	res, err := c.request(http.MethodPut, keyPath(table, id), body, nil)
	if err != nil {
		return nil, err
	}
	return firstResult(res, table, id, false)
}

// Patch applies JSON Patch changes to all records, or a specific record,
// calling the endpoint PATCH /key/:table or PATCH /key/:table/:id.
//
//	db.Patch("person:tobie", []surrealhttp.PatchData{
//		{Op: "replace", Path: "/settings/active", Value: false},
//	})
func (c *Client) Patch(thing string, data any) (any, error) {
	table, id := SplitThing(thing)
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	res, err := c.request(http.MethodPatch, keyPath(table, id), body, nil)
	if err != nil {
		return nil, err
	}
	return firstResult(res, table, id, false)
}

// Delete deletes all records in a table, or a specific record, calling the
// endpoint DELETE /key/:table or DELETE /key/:table/:id. The raw list of
// response envelopes is returned without unwrapping so that per-item status
// is preserved for bulk deletes.
func (c *Client) Delete(thing string) (any, error) {
	table, id := SplitThing(thing)
	return c.request(http.MethodDelete, keyPath(table, id), nil, nil)
}

// --------------------------------------------------
// Private methods
// --------------------------------------------------

func keyPath(table, id string) string {
	if id == "" {
		return "/key/" + table
	}
	return "/key/" + table + "/" + id
}

// firstResult unwraps the first response envelope out of a decoded server
// response. With checkExists set and a record id present, an empty response
// becomes a KeyNotFoundError; any other shape that is not a non-empty list
// of envelopes is an invalid response.
func firstResult(res any, table, id string, checkExists bool) (any, error) {
	arr, ok := res.([]any)
	if checkExists && id != "" && (res == nil || (ok && len(arr) == 0)) {
		return nil, KeyNotFoundError{Table: table, ID: id}
	}
	if !ok || len(arr) == 0 {
		return nil, constants.ErrInvalidResponse
	}
	envelope, ok := arr[0].(map[string]any)
	if !ok {
		return nil, constants.ErrInvalidResponse
	}
	return envelope["result"], nil
}
