package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// LoginResponse token de sesión emitido.
type LoginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
}

// SessionResponse estado de la sesión actual.
type SessionResponse struct {
	Activa  bool   `json:"activa"`
	Usuario string `json:"usuario,omitempty"`
}
