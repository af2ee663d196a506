//go:build js
// +build js

package main

import (
	"bytes"
	"context"
	"syscall/js"

	"go.uber.org/zap"
)

func runExportFixtureFunction(this js.Value, p []js.Value) interface{} {
	var buf bytes.Buffer
	cfg := DefaultConfig
	if _, err := run(context.Background(), &buf, &cfg, false, zap.NewNop()); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(buf.String())
}

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("runExportFixture", js.FuncOf(runExportFixtureFunction))

	<-c
}
