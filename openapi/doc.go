// Package openapi documents the naru operations as OpenAPI 3 schemas.
//
// [OperationSchema] describes the request an operation accepts: the item,
// its positional parameters by name, and the options it reads. [Document]
// collects every operation into a single document with one POST path
// per operation. [Handler] serves that document as JSON and
// [OperationsHandler] serves the paths it describes:
//
//	doc, err := openapi.Document("naru", "1.0.0")
//	if err != nil {
//	    return err
//	}
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
//	http.Handle("POST /{op}", openapi.OperationsHandler())
package openapi
