/*
Command llsets computes FIRST, FOLLOW and PREDICT sets for a context-free
grammar and displays them as tables.

Grammars are read from a file or from stdin, one rule per line:

    llsets sets grammar.txt
    echo "S -> a S | ε" | llsets predict

Sub-command repl starts an interactive session. Rules are entered line by
line; an empty line computes the sets for the rules entered so far and
starts a new grammar. Quit with <ctrl>D.

Flags may also be set from the environment, e.g. LLSETS_TRACE=Debug.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llsets.cli'.
func tracer() tracing.Trace {
	return tracing.Select("llsets.cli")
}
