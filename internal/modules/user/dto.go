package user

// UpsertUserRequest carries only profile fields. Role is deliberately not
// accepted here; promotion has its own admin-guarded operation.
type UpsertUserRequest struct {
	Name string `json:"name"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
