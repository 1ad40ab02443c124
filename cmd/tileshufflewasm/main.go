//go:build js && wasm

// Command tileshufflewasm exposes tile shuffling to JavaScript.
//
// It registers two global functions that take an encoded image as a
// Uint8Array plus the split factors. Both return a Promise that resolves to
// a PNG as a Uint8Array:
//
//	const png = await encodeImageBuffer(bytes, 8, 6);
//	const restored = await decodeImageBuffer(png, 8, 6);
//
// Failures reject the Promise with a JavaScript Error. The Go runtime keeps
// running, so later calls are unaffected.
package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/gogpu/tileshuffle"
)

func main() {
	js.Global().Set("encodeImageBuffer", bufferFunc((*tileshuffle.Shuffler).EncodeBytes))
	js.Global().Set("decodeImageBuffer", bufferFunc((*tileshuffle.Shuffler).DecodeBytes))
	select {}
}

type byteOp func(*tileshuffle.Shuffler, []byte) ([]byte, error)

// request is a validated call, copied out of JavaScript memory.
type request struct {
	data           []byte
	xSplit, ySplit int
}

// bufferFunc adapts a Shuffler byte operation to a JavaScript function of
// (Uint8Array, xSplit, ySplit) returning a Promise.
func bufferFunc(op byteOp) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		// Arguments are read before returning; JavaScript may reuse the
		// buffer once the call yields.
		req, err := safely(func() (request, error) { return parseArgs(args) })
		return promise(func() ([]byte, error) {
			if err != nil {
				return nil, err
			}
			return req.run(op)
		})
	})
}

func parseArgs(args []js.Value) (request, error) {
	if len(args) != 3 {
		return request{}, fmt.Errorf("expected (buffer, xSplit, ySplit), got %d arguments", len(args))
	}
	if !args[0].InstanceOf(js.Global().Get("Uint8Array")) {
		return request{}, errors.New("buffer must be a Uint8Array")
	}
	if args[1].Type() != js.TypeNumber || args[2].Type() != js.TypeNumber {
		return request{}, errors.New("split factors must be numbers")
	}

	req := request{xSplit: args[1].Int(), ySplit: args[2].Int()}
	if req.xSplit <= 0 || req.ySplit <= 0 {
		return request{}, errors.New("split factors must be non-zero")
	}

	req.data = make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(req.data, args[0])
	return req, nil
}

func (r request) run(op byteOp) ([]byte, error) {
	s, err := tileshuffle.New(r.xSplit, r.ySplit, tileshuffle.WithWorkers(1))
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return op(s, r.data)
}

// promise runs work on its own goroutine and settles a new Promise with the
// outcome. Blocking inside a js.Func callback would deadlock the event loop.
func promise(work func() ([]byte, error)) js.Value {
	executor := js.FuncOf(func(_ js.Value, args []js.Value) any {
		resolve, reject := args[0], args[1]
		go func() {
			out, err := safely(work)
			if err != nil {
				reject.Invoke(js.Global().Get("Error").New(err.Error()))
				return
			}
			arr := js.Global().Get("Uint8Array").New(len(out))
			js.CopyBytesToJS(arr, out)
			resolve.Invoke(arr)
		}()
		return nil
	})
	// The Promise constructor calls the executor synchronously.
	defer executor.Release()
	return js.Global().Get("Promise").New(executor)
}

// safely converts a panic in f into an error. An unrecovered panic would
// stop the Go program for every later caller.
func safely[T any](f func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tileshufflewasm: internal error: %v", r)
		}
	}()
	return f()
}
