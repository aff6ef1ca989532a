/*
Package sbmltab generates the SBML tab of a PhysiCell Jupyter GUI.

It reads a PhysiCell configuration (.xml), finds the first <intracellular> element
and turns each <map species=".." substrate=".."/> child into a pair of ipywidgets
Text widgets. The result is a Python module (sbml_def.py) defining the SBMLDefTab
class, with fill_gui/fill_xml methods that bind the widgets to the XML tree.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/sbmltab"
	)

	func main() {
		gen := sbmltab.New()
		res, err := gen.GenerateFile(context.Background(), "config/PhysiCell_settings.xml", "sbml_def.py")
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%d map entries", len(res.Model.Entries))
	}

# Errors

Every stage reports a typed error from package domain: a malformed document is a
*domain.ParseError, a map element without species or substrate is a
*domain.MissingAttributeError and a document without an intracellular element
yields domain.ErrEntryPointNotFound. Nothing is written when any of them occurs.
*/
package sbmltab
