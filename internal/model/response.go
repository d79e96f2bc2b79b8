package model

type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

type ProductsResponse struct {
	Message  string    `json:"message"`
	Products []Product `json:"products"`
}

type ProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
