// Package job provides a stage registry and human-readable job definitions
// for multi-stage graph computations.
//
// Register stages by name, then define jobs in YAML that reference those
// names (optionally with a timeout) and carry the initial configuration:
//
//	name: page-rank
//	stages:
//	  - load
//	  - name: rank
//	    timeout: 60s
//	  - export
//	conf:
//	  gremlin.outputLocation: /data/raw
//	  giraph.vertexOutputFormatClass: org.example.KryoVertexOutputFormat
//
// Build a runnable chain with BuildChain(registry, config); the input
// configuration for each stage after the first is derived from the previous
// stage's output by the chain itself (see the stage package).
package job
