package main

import "encoding/json"

// InvocationRequest is what the functions host posts to a custom handler for
// non-HTTP triggers. For a timer trigger Data holds the timer info.
type InvocationRequest struct {
	Data     map[string]json.RawMessage `json:"Data"`
	Metadata map[string]json.RawMessage `json:"Metadata"`
}

type InvocationResponse struct {
	Outputs     map[string]interface{} `json:"Outputs"`
	Logs        []string               `json:"Logs"`
	ReturnValue interface{}            `json:"ReturnValue"`
}
