package fn

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"
)

// ParamSpec documents one parameter of a wrapped Go func: its name and,
// optionally, a default value. Descriptors are what make keyword binding and
// defaulted parameters possible, since Go erases parameter names at runtime.
type ParamSpec struct {
	Name       string
	Default    any
	HasDefault bool
}

// Param builds a required parameter descriptor.
func Param(name string) ParamSpec { return ParamSpec{Name: name} }

// ParamDefault builds a parameter descriptor with a default value.
func ParamDefault(name string, def any) ParamSpec {
	return ParamSpec{Name: name, Default: def, HasDefault: true}
}

// Shape describes the argument surface of a callable as far as memoization
// key derivation cares: strictly unary (exactly one required positional
// parameter, nothing else) and whether keyword arguments can ever bind.
type Shape struct {
	Unary       bool
	Keywordable bool
}

// Shaped is implemented by callables that know their own Shape.
type Shaped interface {
	Shape() Shape
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Func adapts an ordinary Go func to Callable via reflection.
//
// Supported signatures: any parameters, with results being none, a single
// value, a single error, or (value, error). A trailing error result is
// propagated verbatim.
type Func struct {
	fv          reflect.Value
	ft          reflect.Type
	name        string
	params      []ParamSpec
	numDefaults int
	fixed       int
	retErr      bool
	retVal      bool
}

// NewFunc wraps f, which must be a Go func. When descriptors are given their
// count must match the fixed (non-variadic) parameter count, names must be
// unique, and defaulted parameters must trail required ones.
func NewFunc(f any, params ...ParamSpec) (*Func, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotCallable)
	}
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, f)
	}
	ft := fv.Type()

	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}

	name := funcName(fv)
	out := &Func{fv: fv, ft: ft, name: name, fixed: fixed}

	switch ft.NumOut() {
	case 0:
	case 1:
		if ft.Out(0) == errType {
			out.retErr = true
		} else {
			out.retVal = true
		}
	case 2:
		if ft.Out(1) != errType {
			return nil, fmt.Errorf("%s: second result must be error, got %s", name, ft.Out(1))
		}
		out.retVal, out.retErr = true, true
	default:
		return nil, fmt.Errorf("%s: too many results: %d", name, ft.NumOut())
	}

	if len(params) > 0 {
		if len(params) != fixed {
			return nil, fmt.Errorf("%s: %d parameter descriptors for %d parameters", name, len(params), fixed)
		}
		seen := make(map[string]struct{}, len(params))
		defaulted := false
		for i, p := range params {
			if p.Name == "" {
				return nil, fmt.Errorf("%s: parameter %d has no name", name, i+1)
			}
			if _, dup := seen[p.Name]; dup {
				return nil, fmt.Errorf("%s: duplicate parameter name %q", name, p.Name)
			}
			seen[p.Name] = struct{}{}
			if p.HasDefault {
				defaulted = true
				out.numDefaults++
			} else if defaulted {
				return nil, fmt.Errorf("%s: required parameter %q follows a defaulted one", name, p.Name)
			}
		}
		out.params = params
	}
	return out, nil
}

// MustFunc is the panic-on-failure variant of NewFunc.
func MustFunc(f any, params ...ParamSpec) *Func {
	fun, err := NewFunc(f, params...)
	if err != nil {
		panic(err)
	}
	return fun
}

// Name reports the wrapped func's name as recorded by the runtime,
// or "func" for anonymous closures it cannot resolve.
func (f *Func) Name() string { return f.name }

// Arity reports the number of positional arguments required to avoid a
// missing-argument failure. Defaulted parameters are not counted.
func (f *Func) Arity() Arity {
	return Arity{
		Required: f.fixed - f.numDefaults,
		Variadic: f.ft.IsVariadic(),
		Known:    true,
	}
}

// Shape reports the memoization-relevant shape of the wrapped func.
func (f *Func) Shape() Shape {
	return Shape{
		Unary:       f.fixed == 1 && !f.ft.IsVariadic() && len(f.params) == 0,
		Keywordable: len(f.params) > 0,
	}
}

// Call binds args positionally, binds kwargs by declared parameter name,
// fills defaults, and invokes the wrapped func. Required parameters left
// unbound fail with *MissingArgError; keyword arguments that cannot bind fail
// with *KeywordError; both are returned before the func runs.
func (f *Func) Call(args []any, kwargs map[string]any) (any, error) {
	var extra []any
	if len(args) > f.fixed {
		if !f.ft.IsVariadic() {
			return nil, fmt.Errorf("%s: too many arguments: got %d, want %d", f.name, len(args), f.fixed)
		}
		extra = args[f.fixed:]
		args = args[:f.fixed]
	}

	bound := make([]any, f.fixed)
	present := make([]bool, f.fixed)
	for i, a := range args {
		bound[i] = a
		present[i] = true
	}

	if len(kwargs) > 0 {
		if len(f.params) == 0 {
			return nil, &KeywordError{Fn: f.name, Keys: sortedKeys(kwargs)}
		}
		var unknown []string
		for k, v := range kwargs {
			i := f.paramIndex(k)
			if i < 0 {
				unknown = append(unknown, k)
				continue
			}
			if present[i] {
				return nil, fmt.Errorf("%s: multiple values for argument %q", f.name, k)
			}
			bound[i] = v
			present[i] = true
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, &KeywordError{Fn: f.name, Keys: unknown}
		}
	}

	for i := range bound {
		if !present[i] && len(f.params) > 0 && f.params[i].HasDefault {
			bound[i] = f.params[i].Default
			present[i] = true
		}
	}

	var missing []string
	for i, ok := range present {
		if !ok {
			missing = append(missing, f.paramName(i))
		}
	}
	if len(missing) > 0 {
		return nil, &MissingArgError{Fn: f.name, Missing: missing}
	}

	in := make([]reflect.Value, 0, len(bound)+len(extra))
	for i, a := range bound {
		rv, err := f.convertArg(a, f.ft.In(i), i)
		if err != nil {
			return nil, err
		}
		in = append(in, rv)
	}
	if f.ft.IsVariadic() {
		elem := f.ft.In(f.fixed).Elem()
		for i, a := range extra {
			rv, err := f.convertArg(a, elem, f.fixed+i)
			if err != nil {
				return nil, err
			}
			in = append(in, rv)
		}
	}

	out := f.fv.Call(in)
	return f.results(out)
}

func (f *Func) results(out []reflect.Value) (any, error) {
	var res any
	if f.retVal {
		res = out[0].Interface()
	}
	if f.retErr {
		last := out[len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}
	return res, nil
}

func (f *Func) paramIndex(name string) int {
	for i, p := range f.params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (f *Func) paramName(i int) string {
	if len(f.params) > 0 {
		return f.params[i].Name
	}
	return fmt.Sprintf("#%d", i+1)
}

func (f *Func) convertArg(a any, t reflect.Type, i int) (reflect.Value, error) {
	if a == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%s: argument %s is nil, want %s", f.name, f.paramName(i), t)
	}
	rv := reflect.ValueOf(a)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	// Untyped-looking numeric literals travel through []any as concrete
	// types; converting between numeric kinds keeps call sites natural.
	if isNumeric(rv.Type()) && isNumeric(t) && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%s: argument %s: cannot use %T as %s", f.name, f.paramName(i), a, t)
}

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func funcName(fv reflect.Value) string {
	rf := runtime.FuncForPC(fv.Pointer())
	if rf == nil {
		return "func"
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
