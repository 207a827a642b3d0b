// Package term provides a terminal-backed host environment for the
// resize engine.
//
// Screen implements dom.Viewport over the controlling terminal: size is
// read with golang.org/x/term and resize signals come from SIGWINCH on
// unix or a polling loop on windows.
//
// Layout implements dom.Document over a YAML-defined tree of panes. A
// layout splits the screen into weighted rows and columns; leaf panes
// are named and optionally tagged, and their sizes are recomputed from
// the current screen size on every measurement, so a terminal resize
// changes pane dimensions and the engine picks the changes up.
//
// A minimal layout definition:
//
//	split: row
//	children:
//	  - name: sidebar
//	    weight: 1
//	    tags: [nav]
//	  - split: column
//	    weight: 3
//	    children:
//	      - name: editor
//	        weight: 4
//	      - name: status
//	        weight: 1
//
// Selectors accepted by Layout.Query: "#name" matches a pane by exact
// name, ".tag" by tag, "*" matches every pane, and bare text matches by
// name.
package term
