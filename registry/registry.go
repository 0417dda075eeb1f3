// Package registry maps fully-qualified message type names to factories
// that construct fresh, empty message instances.
//
// A process normally uses the shared registry returned by Default, filled
// once at startup by the generated RegisterAll entry point:
//
//	if _, err := msgs.InitDefault(); err != nil {
//	    log.Fatal(err)
//	}
//	m, err := registry.Create("gz.msgs.Vector3d")
//
// Types with no compiled factory can still be created from descriptors
// loaded at runtime (see LoadDescriptors); such messages are backed by
// dynamicpb.
//
// Reads (Create, Lookup, Types) never take a lock. Register serializes
// writers and publishes a new snapshot of the table. The zero Registry is
// empty and ready to use.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Message is the contract every registrable message type satisfies.
type Message = proto.Message

// Factory constructs a new, empty message instance.
type Factory func() Message

// Entry is one row of a registration table.
type Entry struct {
	Key string
	New Factory
}

// Registry is a concurrent-safe table from type name to Factory.
type Registry struct {
	mu          sync.Mutex
	factories   atomic.Pointer[map[string]Factory]
	descriptors atomic.Pointer[protoregistry.Files]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// snapshot returns the current table; nil until the first Register.
func (r *Registry) snapshot() map[string]Factory {
	if p := r.factories.Load(); p != nil {
		return *p
	}
	return nil
}

// Register adds a factory under key. A second registration of the same key
// fails with *DuplicateRegistrationError and the first factory stays in place.
func (r *Registry) Register(key string, fn Factory) error {
	if key == "" {
		return errors.New("registry: cannot register message with empty type name")
	}
	if fn == nil {
		return fmt.Errorf("registry: cannot register nil factory for %q", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.snapshot()
	if _, exists := current[key]; exists {
		return &DuplicateRegistrationError{Key: key}
	}

	next := make(map[string]Factory, len(current)+1)
	maps.Copy(next, current)
	next[key] = fn
	r.factories.Store(&next)
	return nil
}

// RegisterEntries registers every entry in order and returns how many were
// added. It stops at the first failure.
func (r *Registry) RegisterEntries(entries []Entry) (int, error) {
	for i, e := range entries {
		if err := r.Register(e.Key, e.New); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}

// Create returns a fresh instance of the message registered under key.
// The key is matched exactly and case-sensitively. Compiled factories win;
// otherwise a dynamic message is built from a loaded descriptor.
func (r *Registry) Create(key string) (Message, error) {
	if fn, ok := r.snapshot()[key]; ok {
		msg := fn()
		if msg == nil {
			return nil, fmt.Errorf("registry: factory for %q returned nil", key)
		}
		return msg, nil
	}
	if md := r.dynamicMessage(key); md != nil {
		return dynamicpb.NewMessage(md), nil
	}
	return nil, &NotFoundError{Key: key}
}

// Lookup reports whether key can be created.
func (r *Registry) Lookup(key string) bool {
	if _, ok := r.snapshot()[key]; ok {
		return true
	}
	return r.dynamicMessage(key) != nil
}

// Types returns every creatable key in ascending order: registered
// factories plus the top-level messages of loaded descriptors.
func (r *Registry) Types() []string {
	names := slices.Collect(maps.Keys(r.snapshot()))
	if files := r.descriptors.Load(); files != nil {
		files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
			msgs := fd.Messages()
			for i := range msgs.Len() {
				names = append(names, string(msgs.Get(i).FullName()))
			}
			return true
		})
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Len returns the number of registered factories.
func (r *Registry) Len() int {
	return len(r.snapshot())
}

// Descriptor returns the message descriptor for key, from either a
// compiled factory or a loaded descriptor file.
func (r *Registry) Descriptor(key string) (protoreflect.MessageDescriptor, error) {
	if fn, ok := r.snapshot()[key]; ok {
		if msg := fn(); msg != nil {
			return msg.ProtoReflect().Descriptor(), nil
		}
	}
	if md := r.dynamicMessage(key); md != nil {
		return md, nil
	}
	return nil, &NotFoundError{Key: key}
}

// CreateFromText creates a message and fills it from protobuf text format.
func (r *Registry) CreateFromText(key, text string) (Message, error) {
	msg, err := r.Create(key)
	if err != nil {
		return nil, err
	}
	if err := prototext.Unmarshal([]byte(text), msg); err != nil {
		return nil, fmt.Errorf("registry: parse %s text: %w", key, err)
	}
	return msg, nil
}

// Decode creates a message and fills it from protobuf wire bytes.
func (r *Registry) Decode(key string, data []byte) (Message, error) {
	msg, err := r.Create(key)
	if err != nil {
		return nil, err
	}
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("registry: decode %s: %w", key, err)
	}
	return msg, nil
}

// Encode serializes a message to protobuf wire bytes readable by Decode.
func Encode(msg Message) ([]byte, error) {
	if msg == nil {
		return nil, errors.New("registry: cannot encode nil message")
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("registry: encode: %w", err)
	}
	return data, nil
}

// CreateAs creates the message registered under key and asserts it to T.
func CreateAs[T Message](r *Registry, key string) (T, error) {
	var zero T
	msg, err := r.Create(key)
	if err != nil {
		return zero, err
	}
	typed, ok := msg.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q produces %T, not %T", ErrTypeMismatch, key, msg, zero)
	}
	return typed, nil
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Convenience functions using the default registry

func Register(key string, fn Factory) error {
	return defaultRegistry.Register(key, fn)
}

func Create(key string) (Message, error) {
	return defaultRegistry.Create(key)
}

func Lookup(key string) bool {
	return defaultRegistry.Lookup(key)
}

func Types() []string {
	return defaultRegistry.Types()
}
