package settings

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// decodeHCL reads a flat HCL settings file into the same map shape the YAML
// and JSON loaders produce. Nested settings are written as object attributes:
//
//	output = "sbml_def.py"
//	colors = { primary = "lightgreen", secondary = "tan" }
func decodeHCL(path string, data []byte) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", path, diags.Error())
	}

	raw := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %s", name, path, diags.Error())
		}
		b, err := ctyjson.Marshal(val, val.Type())
		if err != nil {
			return nil, fmt.Errorf("failed to convert %q in %s: %w", name, path, err)
		}
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		raw[name] = v
	}
	return raw, nil
}
