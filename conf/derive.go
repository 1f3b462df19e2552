package conf

import "strings"

// DeriveInput builds the input configuration for stage N+1 from the output
// configuration of stage N. Every entry of source is copied into the result
// first, so unrelated settings survive derivation untouched; then two rules
// apply, each only when its key is present (absence skips the rule, it is
// never an error):
//
//   - If source has KeyOutputLocation, the result's KeyInputLocation points
//     at the hidden graph artifact under it ("<location>/~g"), and the
//     result's KeyOutputLocation is re-pointed to "<location>_" so the next
//     stage's output never collides with this stage's.
//   - If source has KeyVertexOutputFormatClass, the result gains
//     KeyVertexInputFormatClass with the read-side class name inferred by
//     InferInputFormat.
//
// DeriveInput is a pure function: source is never mutated, the result is
// always a distinct instance, and equal sources yield equal results. Chained
// derivations yield distinct output locations at every hop ("…_", "…__").
func DeriveInput(source *Configuration) *Configuration {
	out := source.Copy()
	if loc, err := source.GetString(KeyOutputLocation); err == nil {
		out.SetString(KeyInputLocation, loc+"/"+HiddenG)
		out.SetString(KeyOutputLocation, loc+"_")
	}
	if class, err := source.GetClass(KeyVertexOutputFormatClass); err == nil {
		out.SetClass(KeyVertexInputFormatClass, InferInputFormat(class))
	}
	return out
}

// InferInputFormat infers the read-side format class for a write-side one by
// replacing "OutputFormat" with "InputFormat" in the class name. This is a
// naming-convention heuristic, not a registry lookup: a name that does not
// contain "OutputFormat" is returned unchanged, and the caller must then set
// the input format class explicitly before opening the next stage.
func InferInputFormat(class string) string {
	return strings.ReplaceAll(class, "OutputFormat", "InputFormat")
}
