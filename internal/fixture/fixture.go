// Package fixture unpacks txtar-archived test cases: a main source plus
// zero or more ordered precode sources, used by internal/analyzer's
// table-driven tests.
package fixture

import (
	"fmt"

	"golang.org/x/tools/txtar"
)

// Case is one unpacked txtar archive: the file named "main.js" is the main
// source, every other file (in archive order) is a precode source.
type Case struct {
	Main    string
	Precode []string
}

// Parse unpacks a txtar archive's bytes into a Case. The archive comment
// (if present) is ignored; file order within the archive, excluding
// "main.js", becomes precode order.
func Parse(data []byte) (Case, error) {
	arc := txtar.Parse(data)

	var c Case
	var sawMain bool
	for _, f := range arc.Files {
		if f.Name == "main.js" {
			c.Main = string(f.Data)
			sawMain = true
			continue
		}
		c.Precode = append(c.Precode, string(f.Data))
	}
	if !sawMain {
		return Case{}, fmt.Errorf("fixture: archive has no main.js file")
	}
	return c, nil
}

// ParseString is Parse for an inline literal, as used by most table-driven
// tests (string(txtar.Format(...)) round trips, but test tables read
// easier written directly as "-- main.js --\n..." literals).
func ParseString(archive string) (Case, error) {
	return Parse([]byte(archive))
}
