//go:build js && wasm

package main

import "github.com/Its-donkey/portfolio-fx/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
