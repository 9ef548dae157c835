package common

import (
	"encoding/json"
	"net/http"

	"goalsguild-backend/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondError sends an error response, mapping AppError types to
// HTTP status codes; anything else reports as internal.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	info := &ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: "internal error",
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		status = appErr.HTTPStatus
		info.Type = string(appErr.Type)
		info.Message = appErr.Message
	} else if err != nil {
		info.Message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{Success: false, Error: info})
}
