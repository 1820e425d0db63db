package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform envelope returned by every endpoint.
// Errors carry success=false and no result.
type Response struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Result     any    `json:"result,omitempty"`
	Meta       any    `json:"meta,omitempty"`
}

// ResponseJSON writes a JSON response with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, success bool, message string, result, meta any) {
	response := Response{
		Success:    success,
		StatusCode: code,
		Message:    message,
		Result:     result,
		Meta:       meta,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, result any) {
	ResponseJSON(w, http.StatusOK, true, message, result, nil)
}

// returns 200 OK with pagination meta
func ResponseSuccessMeta(w http.ResponseWriter, message string, result, meta any) {
	ResponseJSON(w, http.StatusOK, true, message, result, meta)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, result any) {
	ResponseJSON(w, http.StatusCreated, true, message, result, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, false, message, nil, nil)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, false, message, nil, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, false, message, nil, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, false, message, nil, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusConflict, false, message, nil, nil)
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusTooManyRequests, false, message, nil, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, nil, nil)
}
