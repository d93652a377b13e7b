package object

import "github.com/gorb-lang/gorb/abi"

// Symbol wraps a VM symbol. Symbols are interned: two symbols with the same
// name share one VM value.
type Symbol struct {
	Base
}

// NewSymbol interns a symbol.
func NewSymbol(name string) Symbol {
	return To[Symbol](abi.Current().SymbolNew(name))
}

// ToString returns the name the symbol was interned under.
func (s Symbol) ToString() string {
	return abi.Current().SymbolName(s.value)
}

// RubyClassName implements Verified.
func (Symbol) RubyClassName() string { return "Symbol" }
