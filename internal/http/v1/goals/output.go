package goals

// GoalsOutput for POST /goals
type GoalsOutput struct {
	Body Estimate
}
