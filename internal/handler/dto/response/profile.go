package response

import "giggo-server/internal/usecase/queries"

type ProfileResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	DisplayName      string `json:"displayName"`
	TotalBookings    int64  `json:"totalBookings"`
	TotalSpentRupees int64  `json:"totalSpent"`
}

func FromProfileView(view *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		ID:               view.User.ID.String(),
		Email:            view.User.Email,
		DisplayName:      view.User.DisplayName,
		TotalBookings:    view.Stats.TotalBookings,
		TotalSpentRupees: view.Stats.TotalSpentRupees,
	}
}
