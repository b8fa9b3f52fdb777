// Package profile loads TOML tag dictionaries for TLV8 streams.
//
// TLV8 carries no type information on the wire, so rendering a stream as
// anything richer than hex requires out-of-band knowledge. A profile
// declares, per container context, the tags that may appear, their names,
// and how to decode them:
//
//	version = 1
//
//	[[context]]
//	name = "root"
//
//	  [[context.tag]]
//	  tag = 6
//	  name = "state"
//	  type = "uint"
//
//	  [[context.tag]]
//	  tag = 9
//	  name = "certificate"
//	  type = "container"
//	  context = "certificate"
//
//	[[context]]
//	name = "certificate"
//	# ...
//
// Valid types are uint, int, string, bytes, float, bool, and container;
// container entries name the context applied to their nested elements.
package profile
