/*
Package domain contains the core models shared by the sbmltab generator.

It defines what is read from a PhysiCell configuration (map entries under the
intracellular section), what the generator produces from it (the widget tab model),
and the error kinds every stage of the pipeline reports. This package is kept free
of I/O so that the CLI, the HTTP server and the MCP server can share it.

# Key Entities

  - MapEntry: one species-to-substrate pairing, numbered by its position.
  - TabModel: the ordered widget declarations of the generated SBMLDefTab class.
  - Invocation: the resolved positional arguments of a CLI run.
  - Palette: the two color names used for alternating widget rows.
*/
package domain
