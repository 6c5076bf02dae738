// Command converter turns the generated Swagger 2.0 document into an
// OpenAPI 3 YAML file for publication alongside the archive.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cloudwego/hertz/pkg/common/json"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"gopkg.in/yaml.v2"
)

func main() {
	inFlag := flag.String("i", "", "input Swagger 2.0 JSON file")
	outFlag := flag.String("o", "", "output OpenAPI 3 YAML file")
	helpFlag := flag.Bool("help", false, "show help")
	flag.Parse()

	if *inFlag == "" || *outFlag == "" || *helpFlag {
		flag.Usage()
		return
	}

	if err := convert(*inFlag, *outFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(in, out string) error {
	input, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	var doc openapi2.T
	if err := json.Unmarshal(input, &doc); err != nil {
		return fmt.Errorf("decode swagger doc: %w", err)
	}

	openapi3Doc, err := openapi2conv.ToV3(&doc)
	if err != nil {
		return fmt.Errorf("convert to OpenAPI 3: %w", err)
	}

	raw, err := openapi3Doc.MarshalYAML()
	if err != nil {
		return fmt.Errorf("marshal OpenAPI 3 doc: %w", err)
	}

	marshal, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	if err := os.WriteFile(out, marshal, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
