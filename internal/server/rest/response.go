package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/wheel/internal/common"
)

// APIResponse is the envelope every /api route answers with.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeAlreadyDecided = "ALREADY_DECIDED"
	CodeInternal       = "INTERNAL_ERROR"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeEnvelope(w, status, APIResponse{
		Error: &ErrorInfo{Code: code, Message: message},
	})
}

func writeEnvelope(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondStoreError maps store sentinels onto HTTP statuses. Unknown
// errors become 500 without their text.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidArgument):
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyDecided):
		respondError(w, http.StatusConflict, CodeAlreadyDecided, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}
