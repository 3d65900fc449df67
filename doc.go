/*
Package llsets is a toolbox for the static analysis of context-free grammars
in preparation of LL(1) parsing.

Grammars are given as plain text, one rule per line:

    S -> A B C
    A -> C | a
    B -> b | ε
    C -> c

Package structure is as follows:

■ ll: Package ll implements the grammar data model (symbols, words,
productions, grammars), an ordered symbol set algebra and the computation
of FIRST, FOLLOW and PREDICT sets.

■ ll/parser: Package parser converts lines of text into grammars, using
greedy longest-match tokenization against the vocabulary of the whole input.

■ cmd/llsets: A command line tool to compute and display the sets for a
grammar, either from a file or interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llsets
