package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	Data             any    `json:"data,omitempty"`
	Code             string `json:"code,omitempty"`
	ValidationErrors any    `json:"validationErrors,omitempty"`
}

// ResponseJSON writes the uniform envelope with a custom status code
func ResponseJSON(w http.ResponseWriter, status int, success bool, message, code string, data, validationErrors any) {
	response := Response{
		Success:          success,
		Message:          message,
		Data:             data,
		Code:             code,
		ValidationErrors: validationErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, "", data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, "", data, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message, code string, validationErrors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, code, nil, validationErrors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message, code string) {
	ResponseJSON(w, http.StatusNotFound, false, message, code, nil, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message, code string, validationErrors any) {
	ResponseJSON(w, http.StatusConflict, false, message, code, nil, validationErrors)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, "INTERNAL_ERROR", nil, nil)
}
