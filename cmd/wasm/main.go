//go:build js && wasm

package main

import (
	"fmt"
	"strconv"
	"syscall/js"

	json "github.com/goccy/go-json"

	"github.com/smallyu/go-ecc/internal/config"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"Add": js.FuncOf(Add),
		"Mul": js.FuncOf(Mul),
	})

	<-c
}

// Add adds two points.
// Arguments:
// 0: JSON string of the curve ({"prime": p, "a": a, "b": b})
// 1: first point, "x,y" or "inf"
// 2: second point, "x,y" or "inf"
// Returns:
// JSON string {"point": "x,y"} or {"error": "..."}
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return respond("", fmt.Errorf("expected 3 arguments (jsonCurve, p, q)"))
	}
	conf, err := config.ConfigFromJSON([]byte(args[0].String()))
	if err != nil {
		return respond("", err)
	}
	p, err := conf.ParsePoint(args[1].String())
	if err != nil {
		return respond("", err)
	}
	q, err := conf.ParsePoint(args[2].String())
	if err != nil {
		return respond("", err)
	}
	r, err := p.Add(q)
	if err != nil {
		return respond("", err)
	}
	return respond(config.FormatPoint(r), nil)
}

// Mul multiplies a point by a non-negative integer.
// Arguments:
// 0: JSON string of the curve
// 1: point, "x,y" or "inf"
// 2: coefficient as a decimal string
// Returns:
// JSON string {"point": "x,y"} or {"error": "..."}
func Mul(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return respond("", fmt.Errorf("expected 3 arguments (jsonCurve, p, k)"))
	}
	conf, err := config.ConfigFromJSON([]byte(args[0].String()))
	if err != nil {
		return respond("", err)
	}
	p, err := conf.ParsePoint(args[1].String())
	if err != nil {
		return respond("", err)
	}
	// Coefficients come in as strings; JS numbers lose precision above 2^53.
	k, err := strconv.ParseUint(args[2].String(), 10, 64)
	if err != nil {
		return respond("", err)
	}
	r, err := p.ScalarMul(k)
	if err != nil {
		return respond("", err)
	}
	return respond(config.FormatPoint(r), nil)
}

type response struct {
	Point string `json:"point,omitempty"`
	Error string `json:"error,omitempty"`
}

func respond(point string, err error) string {
	resp := response{Point: point}
	if err != nil {
		resp.Error = err.Error()
	}
	b, _ := json.Marshal(resp)
	return string(b)
}
