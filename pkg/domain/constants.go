package domain

// Defaults applied when the caller does not supply a value.
const (
	DefaultConfigFile = "config.xml"
	DefaultOutputFile = "sbml_def.py"
	DefaultColor1     = "lightgreen"
	DefaultColor2     = "tan"
)

// Tag and attribute names of the configuration fragment the generator reads.
const (
	// EntryPointTag is the element every generated widget is rooted under.
	EntryPointTag = "intracellular"
	MapTag        = "map"
	SpeciesAttr   = "species"
	SubstrateAttr = "substrate"
)

// CompanionMarker is the identifier rewritten in a companion GUI module.
const CompanionMarker = "main_xml_filename"
