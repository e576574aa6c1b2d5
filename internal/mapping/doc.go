// Package mapping provides YAML operation scripts: schema definitions,
// parsing, validation and execution against a document.
//
// A script pins a sequence of writes and the values expected afterwards,
// so a change to a document can be reviewed and replayed.
//
// # Schema Overview
//
//	version: "1"
//	mode: forced              # default mode of every step
//	set:
//	  - path: order.items[0].price
//	    value: 10
//	    mode: [forced, silent] # replaces the default
//	  - path: order.meta[a.b]
//	    value: {gift: true}
//	expect:
//	  - path: order.items[0].price
//	    value: 10
//	  - path: order.coupon
//	    absent: true
//
// Modes are written as a single name ("forced"), a list of names, or
// names joined with '|' or ','. Known names are declared, forced, silent
// and none.
//
// # Execution
//
// Apply validates the script first; a script with errors is not run.
// Set steps run in order, then every expect step is checked. Failing
// steps do not stop the others and are reported in the Result.
//
// Expected values are compared after conversion to the type of the
// actual value, so "10" matches 10.
package mapping
