package openapi_test

import (
	"fmt"

	"github.com/Gobd/naru"
	"github.com/Gobd/naru/openapi"
)

func ExampleOperationSchema() {
	s, err := openapi.OperationSchema(naru.OpAddPrefix)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Required)
	// Output: [item affix]
}

func ExampleDocument() {
	doc, err := openapi.Document("naru", "1.0.0")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doc.Paths.Value("/snakify").Post.OperationID)
	// Output: snakify
}
