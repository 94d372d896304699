package plan

import (
	"fmt"

	"github.com/wireproto/wireproto/schema"
)

// resolveEnumDefault fills in p.EnumDefault for an EnumKind field: a
// declared default (proto2, named by the field's own DeclaredDefault)
// wins; otherwise the default is the value at the enum's DefaultIndex,
// which is the first declared value (index 0) unless the EnumContext sets
// another index. An out-of-range DefaultIndex is an error.
func resolveEnumDefault(p *FieldPlan, fc schema.FieldContext) error {
	if fc.ResolveEnum == nil {
		return fmt.Errorf("plan: field %q is EnumKind but has no ResolveEnum resolver", fc.Name)
	}
	ec, ok := fc.ResolveEnum(fc.TypeName)
	if !ok {
		return fmt.Errorf("plan: field %q refers to unresolvable enum %q", fc.Name, fc.TypeName)
	}
	if fc.DeclaredDefault != "" {
		for _, v := range ec.Values {
			if v.Name == fc.DeclaredDefault {
				p.EnumDefault = v.Number
				return nil
			}
		}
		return fmt.Errorf("plan: field %q declares default %q not found in enum %q", fc.Name, fc.DeclaredDefault, fc.TypeName)
	}
	if ec.DefaultIndex < 0 || ec.DefaultIndex >= len(ec.Values) {
		return fmt.Errorf("plan: enum %q has invalid DefaultIndex %d", fc.TypeName, ec.DefaultIndex)
	}
	p.EnumDefault = ec.Values[ec.DefaultIndex].Number
	return nil
}
