package items

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const scriptFuncName = "Items"

// loadScriptPack interprets a Go source file and collects the descriptions
// returned by its Items() function.
func loadScriptPack(id, path string) (Pack, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("items: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return Pack{}, fmt.Errorf("items: %s is empty", path)
	}
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return Pack{}, fmt.Errorf("items: load stdlib for %s: %w", path, err)
	}
	if _, err := i.EvalPath(path); err != nil {
		return Pack{}, fmt.Errorf("items: interpret %s: %w", path, err)
	}
	fnValue, err := i.Eval(scriptFuncName)
	if err != nil {
		return Pack{}, fmt.Errorf("items: %s must define %s() ([]string, error): %w", path, scriptFuncName, err)
	}
	descriptions, err := invokeItemsFunc(fnValue)
	if err != nil {
		return Pack{}, fmt.Errorf("items: %s: %w", path, err)
	}
	pack := Pack{ID: id, Items: descriptions}
	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack.Normalized(), nil
}

func invokeItemsFunc(fn reflect.Value) ([]string, error) {
	if !fn.IsValid() {
		return nil, fmt.Errorf("missing %s function", scriptFuncName)
	}
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s is not a function", scriptFuncName)
	}
	if fn.Type().NumIn() != 0 {
		return nil, fmt.Errorf("%s must take no arguments", scriptFuncName)
	}
	results := fn.Call(nil)
	if len(results) == 0 || len(results) > 2 {
		return nil, fmt.Errorf("%s must return ([]string[, error])", scriptFuncName)
	}
	if len(results) == 2 && !results[1].IsNil() {
		if e, ok := results[1].Interface().(error); ok && e != nil {
			return nil, e
		}
		return nil, fmt.Errorf("%s returned non-error second value", scriptFuncName)
	}
	value := results[0]
	if out, ok := value.Interface().([]string); ok {
		return out, nil
	}
	if value.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%s must return []string", scriptFuncName)
	}
	out := make([]string, value.Len())
	for i := 0; i < value.Len(); i++ {
		s, ok := value.Index(i).Interface().(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] is not a string", scriptFuncName, i)
		}
		out[i] = s
	}
	return out, nil
}
