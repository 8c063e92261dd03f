package dto

type LocationCreate struct {
	Name string `json:"name"`
}

type RoleUpdate struct {
	Role string `json:"role"`
}
