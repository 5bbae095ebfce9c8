// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types holds the JSON envelope shared by every REST endpoint so
// clients always parse the same shape, errors included.
package types

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

// WriteResponse serializes the envelope with the given status code.
func WriteResponse(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(Response{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

// WriteErrorResponse serializes an error envelope carrying only the message.
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteResponse(w, status, nil, message)
}
