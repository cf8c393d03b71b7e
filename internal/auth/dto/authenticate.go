package dto

type AuthenticateInput struct {
	Identifier string       `json:"identifier"`
	Params     MethodParams `json:"params"`
}

type MethodParams struct {
	Code     string `json:"code,omitempty"`
	Password string `json:"password,omitempty"`
}

type SendCodeInput struct {
	Identifier string `json:"identifier"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}
