package md2docx_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	md2docx "github.com/mdwizard/go-md2docx"
)

func Example() {
	converter, err := md2docx.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	result, err := converter.Convert(context.Background(), md2docx.Input{
		Markdown: "# Hello\n\nThis is **markdown** with a [link](https://example.com).",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(bytes.HasPrefix(result.DOCX, []byte("PK")))
	// Output: true
}

func ExampleNewConverter_withTheme() {
	converter, err := md2docx.NewConverter(md2docx.WithTheme(md2docx.ThemeProfessional))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(converter.Theme())
	// Output: professional
}
