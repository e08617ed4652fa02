package openapi

import (
	"net/http"

	"github.com/Gobd/naru"
	"github.com/getkin/kin-openapi/openapi3"
)

// ErrorBody is the response body of a failed operation call.
type ErrorBody struct {
	Error string `json:"error"`
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

func jsonContent(s *openapi3.Schema) openapi3.Content {
	return openapi3.Content{
		"application/json": &openapi3.MediaType{
			Schema: &openapi3.SchemaRef{Value: s},
		},
	}
}

func response(desc string, s *openapi3.Schema) *openapi3.Response {
	return &openapi3.Response{
		Description: &desc,
		Content:     jsonContent(s),
	}
}

// Document describes every operation as a POST to /{operation}.
func Document(serviceName, version string) (*openapi3.T, error) {
	doc := DocBase(serviceName, "Type-dispatched transformers for names and collections.", version)

	catalog, err := Catalog()
	if err != nil {
		return nil, err
	}
	errSchema, err := NewSchemaRefForValue(ErrorBody{})
	if err != nil {
		return nil, err
	}

	for _, op := range naru.Operations() {
		req := catalog[op.String()]
		AddPath("/"+op.String(), http.MethodPost, doc, &openapi3.Operation{
			OperationID: op.String(),
			Summary:     req.Description,
			RequestBody: &openapi3.RequestBodyRef{
				Value: &openapi3.RequestBody{
					Required: true,
					Content:  jsonContent(req),
				},
			},
			Responses: openapi3.NewResponses(
				openapi3.WithName("200", response("OK", ResultSchema(op))),
				openapi3.WithName("400", response("Invalid parameters or unsupported item", errSchema.Value)),
			),
		})
	}
	return doc, nil
}
