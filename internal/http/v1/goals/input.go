package goals

import "github.com/janisto/diet-planner/internal/http/v1/apimodel"

// GoalsInput for POST /goals
type GoalsInput struct {
	Body apimodel.UserData
}
