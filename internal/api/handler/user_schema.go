package handler

// updateProfileRequest carries the optional profile fields. Omitted or empty
// fields leave the stored value unchanged.
type updateProfileRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"           validate:"omitempty,email"`
	Phone          string `json:"phone"`
	College        string `json:"college"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,url"`
	Password       string `json:"password"        validate:"omitempty,min=6"`
}
