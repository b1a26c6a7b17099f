// Package receipt reads declarative receipt documents and replays them
// through a printer.Context.
//
// The same document can be written in TOML, YAML or XML:
//
//	[[blocks]]
//	type = "text"
//	content = "ACME STORE"
//	align = "center"
//
//	[[blocks]]
//	type = "table"
//	  [[blocks.rows]]
//	    [[blocks.rows.cells]]
//	    content = "Tea"
//	    [[blocks.rows.cells]]
//	    content = "3.20"
//	    width = 6
//	    align = "right"
//
//	<receipt>
//	  <text align="center">ACME STORE</text>
//	  <table>
//	    <row><cell>Tea</cell><cell width="6" align="right">3.20</cell></row>
//	  </table>
//	</receipt>
package receipt
