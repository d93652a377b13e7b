package object

import (
	"go.uber.org/zap"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/errors"
)

// Module wraps a VM value denoting a module.
type Module struct {
	Base
}

// NewModule defines a top-level VM module, or reopens it if the name is
// already bound.
func NewModule(name string) Module {
	m := To[Module](abi.Current().DefineModule(name))
	abi.Logger().Debug("defined module", zap.String("module", name))
	return m
}

// ModuleFromExisting looks up an already-defined module by name.
func ModuleFromExisting(name string) (Module, error) {
	v, ok := abi.Current().ConstGet(name)
	if !ok {
		return Module{}, errors.ClassNotFound(name)
	}
	return To[Module](v), nil
}

// Name returns the module name as known to the VM.
func (m Module) Name() string {
	return abi.Current().ClassName(m.value)
}

// RubyClassName implements Verified.
func (Module) RubyClassName() string { return "Module" }
