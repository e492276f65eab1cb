package response

import "giggo-server/internal/usecase/queries"

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
}

type CurrentUserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:          view.ID.String(),
		Email:       view.Email,
		DisplayName: view.DisplayName,
	}
}
