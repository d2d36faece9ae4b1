//go:build js && wasm
// +build js,wasm

package main

import (
	"strings"
	"syscall/js"

	"github.com/healeycodes/blocklang/pkg/blocklang"
	"github.com/healeycodes/blocklang/pkg/treeform"
)

func main() {
	c := make(chan struct{}, 0)
	js.Global().Set("blocklang", js.FuncOf(run))
	<-c
}

// run(source) returns {result, output, error}
func run(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return js.ValueOf(map[string]interface{}{"error": "run(source) takes a single argument"})
	}
	root, err := treeform.Parse("web", args[0].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	var output strings.Builder
	result, err := blocklang.EvaluateWithOutput(root, func(s string) { output.WriteString(s) })
	if err != nil {
		return js.ValueOf(map[string]interface{}{"output": output.String(), "error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"output": output.String(), "result": result.String()})
}
