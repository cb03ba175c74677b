package diets

// ListData is the response body containing paginated diets.
type ListData struct {
	Diets []DietListItem `json:"diets" doc:"Diets in creation order"`
	Total int    `json:"total" doc:"Total number of diets of the profile" example:"3"`
}

// DietListOutput is the list response with pagination Link header.
type DietListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// DietCreateOutput for POST /profiles/{profileId}/diets. Status is 201 with
// Location, or 204 with neither when the profile does not exist.
type DietCreateOutput struct {
	Status   int
	Location string `header:"Location" doc:"URL of created diet"`
	Body     *Diet
}

// DietOutput is returned by single-diet operations.
type DietOutput struct {
	Body Diet
}

// DietMutationOutput carries 204 and no body when the profile or diet did not
// exist.
type DietMutationOutput struct {
	Status int
	Body   *Diet
}

// SummaryOutput for GET .../summary
type SummaryOutput struct {
	Body Summary
}

// ExportOutput streams the PDF report.
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
