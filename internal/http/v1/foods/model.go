package foods

import "github.com/janisto/diet-planner/internal/http/v1/apimodel"

// Food represents a catalog entry. Nutritional values are per 100 g when the
// unit is g and per item when it is unit.
type Food struct {
	ID              string             `json:"id"              doc:"Unique identifier"        example:"rice"`
	Name            string             `json:"name"            doc:"Food name"                example:"White rice"`
	Category        string             `json:"category"        doc:"Category"                 example:"carbs"`
	Image           string             `json:"image,omitempty" doc:"Emoji glyph"              example:"🍚"`
	Unit            string             `json:"unit"            doc:"g or unit"                example:"g"`
	NutritionalInfo apimodel.Nutrients `json:"nutritionalInfo" doc:"Nutrients per 100 g or per unit"`
	Custom          bool               `json:"custom"          doc:"True for user-defined foods"`
}
