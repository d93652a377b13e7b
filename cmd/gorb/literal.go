package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/vmtest"
)

// parseLiterals turns a comma-separated list of argument literals into VM
// values. Supported forms: integers, floats, true/false, nil, :symbols and
// plain or quoted strings.
func parseLiterals(vm *vmtest.VM, s string) ([]abi.Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []abi.Value
	for _, field := range strings.Split(s, ",") {
		v, err := parseLiteral(vm, strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseLiteral(vm *vmtest.VM, field string) (abi.Value, error) {
	switch {
	case field == "":
		return 0, fmt.Errorf("empty argument literal")
	case field == "nil":
		return vm.NilValue(), nil
	case field == "true":
		return vm.BoolNew(true), nil
	case field == "false":
		return vm.BoolNew(false), nil
	case strings.HasPrefix(field, ":"):
		return vm.SymbolNew(field[1:]), nil
	case strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) && len(field) >= 2:
		return vm.StringNewUTF8(field[1 : len(field)-1]), nil
	}
	if n, err := strconv.ParseInt(field, 10, 64); err == nil {
		return vm.IntFromI64(n), nil
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return vm.FloatNew(f), nil
	}
	return vm.StringNewUTF8(field), nil
}

// formatValue renders a VM value the way the VM's own inspect would.
func formatValue(vm *vmtest.VM, v abi.Value) string {
	if v == vm.NilValue() {
		return "nil"
	}
	switch vm.ClassName(vm.ClassOf(v)) {
	case "String":
		return strconv.Quote(vm.StringToUTF8(v))
	case "Fixnum":
		return strconv.FormatInt(vm.IntToI64(v), 10)
	case "Float":
		return strconv.FormatFloat(vm.FloatToF64(v), 'g', -1, 64)
	case "Boolean":
		return strconv.FormatBool(vm.BoolToB(v))
	case "Symbol":
		return ":" + vm.SymbolName(v)
	case "Array":
		var parts []string
		n := vm.ArrayLen(v)
		for i := int64(0); i < n; i++ {
			parts = append(parts, formatValue(vm, vm.ArrayEntry(v, i)))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case "Hash":
		var parts []string
		vm.HashForeach(v, func(key, value abi.Value) bool {
			parts = append(parts, formatValue(vm, key)+" => "+formatValue(vm, value))
			return true
		})
		return "{" + strings.Join(parts, ", ") + "}"
	case "Class", "Module":
		return vm.ClassName(v)
	default:
		return "#<" + vm.ClassName(vm.ClassOf(v)) + ">"
	}
}
