package plan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/wireproto/wireproto/schema"
)

// OneofPlan is the decision record for one oneof group: every variant's
// FieldPlan, its exported Go identifier, and whether it refers back to its
// own containing message (self-recursion). The variants are realized in
// generated code as per-variant wrapper structs behind a shared marker
// interface, the same layout protoc-gen-go emits for a oneof.
type OneofPlan struct {
	Name     string
	Variants []OneofVariantPlan
}

// OneofVariantPlan is one arm of a oneof: the underlying FieldPlan (always
// RepKind == OneofVariant) plus the exported Go name its wrapper struct
// should use.
type OneofVariantPlan struct {
	Field schema.FieldContext
	Plan  FieldPlan

	// GoName is the exported identifier for this variant's wrapper struct
	// field, e.g. "NullValue" for a proto field named "null_value". It is
	// guaranteed unique within the oneof after collision resolution.
	GoName string

	// SelfReferential marks a MessageKind/GroupKind variant whose type is
	// the oneof's own containing message. The variant's payload must live
	// behind an owning pointer to keep the type's size finite; in Go a
	// message-kind field is already a pointer, so the flag carries no
	// extra layout consequence and is surfaced for diagnostics.
	SelfReferential bool
}

// reservedFieldNames maps proto field names that would collide with a
// generated wrapper identifier (Go's own "type" keyword context and the
// "box" terminology this planner itself uses for self-referential
// variants) onto the renamed form code generators apply.
var reservedFieldNames = map[string]string{
	"type": "field_type",
	"box":  "field_box",
}

// exportedName converts a proto_style field name into a Go exported
// identifier: each underscore-separated segment is capitalized and joined,
// matching protoc-gen-go's own naming convention. Reserved field names are
// rewritten first per reservedFieldNames.
func exportedName(name string) string {
	if renamed, ok := reservedFieldNames[name]; ok {
		name = renamed
	}
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildOneofPlan enumerates every field in mc whose OneofIndex selects
// oneofIndex, in declaration order, builds each one's FieldPlan, resolves
// name collisions among their exported Go identifiers, and flags any
// variant that refers back to mc itself.
func BuildOneofPlan(mc *schema.MessageContext, oneofIndex int) (OneofPlan, error) {
	if oneofIndex < 0 || oneofIndex >= len(mc.Oneofs) {
		return OneofPlan{}, fmt.Errorf("plan: oneof index %d out of range for message %q", oneofIndex, mc.Name)
	}
	out := OneofPlan{Name: mc.Oneofs[oneofIndex].Name}

	used := map[string]int{}
	for _, fc := range mc.Fields {
		if fc.OneofIndex == nil || *fc.OneofIndex != oneofIndex {
			continue
		}
		fp, err := BuildFieldPlan(fc)
		if err != nil {
			return OneofPlan{}, err
		}
		fp.OneofName = out.Name

		name := exportedName(fc.Name)
		if n := used[name]; n > 0 {
			used[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n)
		} else {
			used[name] = 1
		}

		selfRef := (fc.Kind == schema.MessageKind || fc.Kind == schema.GroupKind) && fc.TypeName == mc.Name

		out.Variants = append(out.Variants, OneofVariantPlan{
			Field:           fc,
			Plan:            fp,
			GoName:          name,
			SelfReferential: selfRef,
		})
	}
	return out, nil
}
