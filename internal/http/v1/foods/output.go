package foods

// ListData is the response body containing paginated foods.
type ListData struct {
	Foods []Food `json:"foods" doc:"Foods, custom first"`
	Total int    `json:"total" doc:"Total count of foods matching the filter" example:"42"`
}

// FoodListOutput is the response wrapper with pagination Link header.
type FoodListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// FoodCreateOutput for POST /foods (201 Created)
type FoodCreateOutput struct {
	Location string `header:"Location" doc:"URL of created food"`
	Body     Food
}

// FoodUpdateOutput carries 204 and no body when no custom food has the id.
type FoodUpdateOutput struct {
	Status int
	Body   *Food
}

// FoodOutput is returned by single-food operations.
type FoodOutput struct {
	Body Food
}
