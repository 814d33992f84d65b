// Package contract declares the gRPC services of favcities: their messages,
// service descriptors and clients. Messages travel with the JSON codec.
package contract

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// City is a favorite city on the wire.
type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// CityRequest names the city to add or remove.
type CityRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type AddFavoriteCityResponse struct {
	City City `json:"city"`
}

type RemoveFavoriteCityResponse struct {
	Success bool `json:"success"`
}

type ListFavoriteCitiesRequest struct{}

type ListFavoriteCitiesResponse struct {
	Cities []City `json:"cities"`
}
