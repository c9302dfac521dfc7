package identity

import "github.com/Parindya2/TripRoute/internal/domain"

// authResponse is the shape /auth/login and /auth/refresh return: the user
// profile flattened alongside the token pair.
type authResponse struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Image        string `json:"image"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (r authResponse) session() *domain.AuthSession {
	return &domain.AuthSession{
		User: domain.User{
			ID:        r.ID,
			Username:  r.Username,
			Email:     r.Email,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Gender:    r.Gender,
			Image:     r.Image,
		},
		Token:        r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
}
