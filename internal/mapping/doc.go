// Package mapping provides the YAML file that drives field reconciliation
// and the YAML report it produces.
//
// # Schema Overview
//
// The reconcile file has the following structure:
//
//	version: "1"
//	# Matcher thresholds; omitted keys keep their defaults.
//	matcher:
//	  similarity_threshold: 0.5
//	  singleton_precedence_threshold: 0.75
//	  singleton_precedence_bonus: 1.25
//	  noise_factor: 0.5
//	# Package patterns to load, relative to the working directory.
//	packages:
//	  - ./examples/legacy/v1
//	  - ./examples/legacy/v2
//	pairs:
//	  - source: v1.Order
//	    target: v2.Order
//	    # Old field -> new field links that bypass matching
//	    pinned:
//	      Inventory: Stock
//	    # Old fields that are dropped on purpose
//	    ignore: [Notes]
//
// Type references are resolved by analyze.TypeGraph.Lookup: a full
// "import/path.Type", a package path suffix "v1.Type", or a bare "Type".
package mapping
