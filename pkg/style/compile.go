package style

// VarPrefix starts every breakpoint override custom property.
const VarPrefix = "--bx-mq"

// VarName returns the custom property that carries the override of prop at
// breakpoint bp.
//
//	VarName("md", "fontSize") // "--bx-mq-md-fontSize"
func VarName(bp, prop string) string {
	return VarPrefix + "-" + bp + "-" + prop
}

// Compile resolves every prop into inline declarations.
//
// Nil values are skipped. Plain values are normalized and emitted under their
// own name. For a responsive map, the base entry (when defined) is emitted
// under the prop name and each other breakpoint with a defined value is
// emitted as VarName(bp, name). Override values are normalized exactly like
// base values. Unknown keys inside a responsive map are ignored.
//
// Compile never fails: values it cannot interpret are passed through.
func Compile(props Props) Record {
	out := make(Record, 0, len(props))
	for _, prop := range props {
		if isNil(prop.Value) {
			continue
		}
		entries, ok := breakpointEntries(prop.Value)
		if !ok {
			out = out.Set(prop.Name, Normalize(prop.Name, prop.Value))
			continue
		}
		for _, bp := range breakpoints {
			val, ok := entries[bp.Name]
			if !ok || isNil(val) {
				continue
			}
			if bp.Name == Base {
				out = out.Set(prop.Name, Normalize(prop.Name, val))
			} else {
				out = out.Set(VarName(bp.Name, prop.Name), Normalize(prop.Name, val))
			}
		}
	}
	return out
}

// CompileMap compiles an unordered prop map; declarations follow sorted
// prop names.
func CompileMap(m map[string]any) Record {
	return Compile(FromMap(m))
}
