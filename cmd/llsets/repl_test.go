package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestIntpEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llsets.cli")
	defer teardown()
	//
	intp := &Intp{lines: []string{"S -> A b", "A -> a | ε"}}
	intp.Eval()
	assert.Empty(t, intp.lines, "rules must be discarded after evaluation")
	//
	intp.lines = append(intp.lines, "S -> xSy") // not tokenizable
	intp.Eval()
	assert.Empty(t, intp.lines, "rules must be discarded after a failed evaluation")
	//
	intp.lines = append(intp.lines, "S -> s")
	intp.Eval()
	assert.Empty(t, intp.lines)
}
