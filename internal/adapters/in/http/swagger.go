package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerSwaggerOnce sync.Once

// registerSwaggerDoc publishes doc under swag's default instance name, which
// is where echo-swagger's UI reads doc.json from. Only the first call has an
// effect because swag refuses duplicate registrations.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		spec := &swag.Spec{
			Version:          doc.Info.Version,
			BasePath:         BaseURL,
			Title:            doc.Info.Title,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		}
		swag.Register(spec.InstanceName(), spec)
	})
	return nil
}
