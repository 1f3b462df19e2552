package conf

// Well-known configuration keys. These are the contract between stages: a
// stage reads the graph named by KeyInputLocation, writes its result to
// KeyOutputLocation, and names the serialization implementations it uses by
// class reference. All other keys are opaque to this package and copied
// through derivation verbatim.
const (
	// KeyInputLocation is where a stage reads its graph from.
	KeyInputLocation = "gremlin.inputLocation"

	// KeyOutputLocation is where a stage writes its primary result.
	KeyOutputLocation = "gremlin.outputLocation"

	// KeyVertexInputFormatClass names the format implementation used to
	// deserialize vertices on read.
	KeyVertexInputFormatClass = "giraph.vertexInputFormatClass"

	// KeyVertexOutputFormatClass names the format implementation used to
	// serialize vertices on write.
	KeyVertexOutputFormatClass = "giraph.vertexOutputFormatClass"
)

// HiddenG is the name of the hidden graph artifact a stage writes under its
// output location alongside the primary result. The next stage reads the
// graph from <output location>/<HiddenG>.
const HiddenG = "~g"
