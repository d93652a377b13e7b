package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/vmtest"
)

func main() {
	var (
		className   = flag.String("class", "", "Class to call a method on")
		methodName  = flag.String("method", "", "Method to call")
		argsStr     = flag.String("args", "", "Comma-separated argument literals (42, 3.14, true, :sym, nil, text)")
		list        = flag.Bool("list", false, "List registered classes and methods, then exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		abi.SetLogger(logger)
	}

	vm := boot()

	if *list {
		listClasses(vm)
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(vm); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *className == "" || *methodName == "" {
		fmt.Fprintln(os.Stderr, "Usage: gorb -class <name> -method <name> [-args a,b,c]")
		fmt.Fprintln(os.Stderr, "       gorb -list")
		fmt.Fprintln(os.Stderr, "       gorb -i  (interactive mode)")
		os.Exit(1)
	}

	if err := call(vm, *className, *methodName, *argsStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// boot creates the reference VM, binds it and registers the demo classes.
func boot() *vmtest.VM {
	vm := vmtest.New()
	abi.Bind(vm)
	registerDemo()
	return vm
}

func listClasses(vm *vmtest.VM) {
	for _, name := range vm.ClassNames() {
		class, _ := vm.ConstGet(name)
		methods := vm.MethodNames(class)
		singletons := vm.SingletonMethodNames(class)
		if len(methods) == 0 && len(singletons) == 0 {
			continue
		}
		fmt.Printf("%s\n", name)
		for _, m := range singletons {
			fmt.Printf("  self.%s\n", m)
		}
		for _, m := range methods {
			fmt.Printf("  #%s\n", m)
		}
	}
}

// call resolves the receiver, parses the argument literals and invokes the
// method through the safe-call entry point.
func call(vm *vmtest.VM, className, methodName, argsStr string) error {
	class, ok := vm.ConstGet(className)
	if !ok {
		return fmt.Errorf("class %s is not defined", className)
	}

	recv := class
	if !isSingleton(vm, class, methodName) {
		inst, err := receiverFor(vm, className, class)
		if err != nil {
			return fmt.Errorf("instantiate %s: %w", className, err)
		}
		recv = inst
	}

	args, err := parseLiterals(vm, argsStr)
	if err != nil {
		return err
	}

	var rendered []string
	for _, a := range args {
		rendered = append(rendered, formatValue(vm, a))
	}
	fmt.Printf("Calling %s(%s)...\n", methodName, strings.Join(rendered, ", "))

	out, err := vm.Funcall(recv, methodName, args...)
	if err != nil {
		return fmt.Errorf("call %s: %w", methodName, err)
	}

	fmt.Printf("Result: %s\n", formatValue(vm, out))
	return nil
}

// receiverFor picks the receiver for an instance method: reopened built-ins
// get a sample value of their own kind, everything else a fresh instance.
func receiverFor(vm *vmtest.VM, className string, class abi.Value) (abi.Value, error) {
	switch className {
	case "String":
		return vm.StringNewUTF8("hello world"), nil
	case "Fixnum":
		return vm.IntFromI64(42), nil
	case "Float":
		return vm.FloatNew(3.14), nil
	case "Array":
		return vm.ArrayNew(), nil
	case "Hash":
		return vm.HashNew(), nil
	}
	return vm.Funcall(class, "new")
}

func isSingleton(vm *vmtest.VM, class abi.Value, method string) bool {
	for _, name := range vm.SingletonMethodNames(class) {
		if name == method {
			return true
		}
	}
	return false
}
