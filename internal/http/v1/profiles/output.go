package profiles

// ListData is the response body of GET /profiles.
type ListData struct {
	Profiles         []Profile `json:"profiles"                   doc:"Profiles in creation order"`
	Total            int       `json:"total"                      doc:"Number of profiles"          example:"2"`
	CurrentProfileID string    `json:"currentProfileId,omitempty" doc:"Identifier of the current profile"`
}

// ProfileListOutput for GET /profiles
type ProfileListOutput struct {
	Body ListData
}

// ProfileCreateOutput for POST /profiles (201 Created)
type ProfileCreateOutput struct {
	Location string `header:"Location" doc:"URL of created profile"`
	Body     Profile
}

// ProfileMutationOutput carries 204 and no body when the profile does not
// exist.
type ProfileMutationOutput struct {
	Status int
	Body   *Profile
}

// ProfileOutput is returned by single-profile operations.
type ProfileOutput struct {
	Body Profile
}
