package typeddata

import (
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/gorb-lang/gorb/abi"
	"github.com/gorb-lang/gorb/object"
)

// namePrefix namespaces descriptor names so they cannot collide with the
// VM's own data types.
const namePrefix = "Gorb/"

var (
	namesMu sync.Mutex
	names   = make(map[string]struct{})
)

// Registry binds a native type T to its VM data-type descriptor. Construct
// one per wrapped type with New and keep it at package level; the
// descriptor must stay at a stable address and its name must stay unique
// for the life of the process.
type Registry[T any] struct {
	dataType abi.DataType
	mark     func(*T)
	free     func(*T)
	size     func(*T) uintptr
}

// Option configures a Registry under construction.
type Option[T any] func(*Registry[T])

// WithMark installs a collector mark hook. Required when T holds VM values
// reachable only through the wrapped struct.
func WithMark[T any](fn func(*T)) Option[T] {
	return func(r *Registry[T]) { r.mark = fn }
}

// WithFree installs a destructor run when the owning VM object is
// reclaimed.
func WithFree[T any](fn func(*T)) Option[T] {
	return func(r *Registry[T]) { r.free = fn }
}

// WithSize installs a size hook reporting the memory consumed by T.
func WithSize[T any](fn func(*T) uintptr) Option[T] {
	return func(r *Registry[T]) { r.size = fn }
}

// New constructs the registry for T. The name must be unique across the
// process; a duplicate is a bug and panics immediately rather than handing
// the VM two descriptors for one type.
func New[T any](name string, opts ...Option[T]) *Registry[T] {
	full := namePrefix + name

	namesMu.Lock()
	if _, dup := names[full]; dup {
		namesMu.Unlock()
		panic(fmt.Sprintf("typeddata: duplicate registry name %q", full))
	}
	names[full] = struct{}{}
	namesMu.Unlock()

	r := &Registry[T]{}
	for _, opt := range opts {
		opt(r)
	}

	r.dataType = abi.DataType{
		WrapStructName: full,
		Function: abi.DataTypeFunctions{
			Free: r.freeHook,
		},
	}
	if r.mark != nil {
		r.dataType.Function.Mark = r.markHook
	}
	if r.size != nil {
		r.dataType.Function.Size = r.sizeHook
	}

	abi.Logger().Debug("registered data type", zap.String("name", full))
	return r
}

// Name returns the descriptor name the registry was created under.
func (r *Registry[T]) Name() string {
	return r.dataType.WrapStructName
}

// DataType exposes the descriptor for VM implementations. The returned
// pointer is the registry's identity; callers must not copy the struct.
func (r *Registry[T]) DataType() *abi.DataType {
	return &r.dataType
}

// Wrap allocates an instance of class owning a boxed copy of value. The VM
// collector frees the box, running the registry's destructor, when the
// instance is reclaimed.
func (r *Registry[T]) Wrap(class object.Class, value T) object.AnyObject {
	box := new(T)
	*box = value
	v := abi.Current().TypedDataWrap(class.Value(), unsafe.Pointer(box), &r.dataType)
	return object.AnyObjectFrom(v)
}

// Get retrieves the struct wrapped inside obj. It fails unless obj was
// created through this same registry: the descriptor address is the type
// tag.
func (r *Registry[T]) Get(obj object.Object) (*T, error) {
	p, err := abi.Current().TypedDataGet(object.ValueOf(obj), &r.dataType)
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

func (r *Registry[T]) markHook(data unsafe.Pointer) {
	r.mark((*T)(data))
}

func (r *Registry[T]) freeHook(data unsafe.Pointer) {
	if r.free != nil {
		r.free((*T)(data))
	}
}

func (r *Registry[T]) sizeHook(data unsafe.Pointer) uintptr {
	return r.size((*T)(data))
}
