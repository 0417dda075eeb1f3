package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// DescriptorPathEnv names the environment variable holding a list of
// descriptor files and directories, separated by the OS path list separator.
const DescriptorPathEnv = "GZ_DESCRIPTOR_PATH"

// DescriptorExtensions are the file suffixes picked up when a directory is
// listed in a descriptor path.
var DescriptorExtensions = []string{".desc", ".gz_desc", ".proto.bin"}

func (r *Registry) dynamicMessage(key string) protoreflect.MessageDescriptor {
	files := r.descriptors.Load()
	if files == nil {
		return nil
	}
	d, err := files.FindDescriptorByName(protoreflect.FullName(key))
	if err != nil {
		return nil
	}
	md, _ := d.(protoreflect.MessageDescriptor)
	return md
}

// AddFiles makes the messages of each file creatable by name. Files whose
// path is already known are skipped, so loading the same set twice is a
// no-op.
func (r *Registry) AddFiles(files ...protoreflect.FileDescriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.cloneDescriptors()
	for _, fd := range files {
		if _, err := next.FindFileByPath(fd.Path()); err == nil {
			continue
		}
		if err := next.RegisterFile(fd); err != nil {
			return fmt.Errorf("registry: add %s: %w", fd.Path(), err)
		}
	}
	r.descriptors.Store(next)
	return nil
}

func (r *Registry) cloneDescriptors() *protoregistry.Files {
	next := new(protoregistry.Files)
	if current := r.descriptors.Load(); current != nil {
		current.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
			_ = next.RegisterFile(fd)
			return true
		})
	}
	return next
}

// LoadDescriptorSet reads a serialized FileDescriptorSet, as written by
// protoc --descriptor_set_out, and adds its files.
func (r *Registry) LoadDescriptorSet(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("registry: read descriptor set: %w", err)
	}
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("registry: parse descriptor set %s: %w", path, err)
	}

	res := &resolver{local: new(protoregistry.Files), known: r.descriptors.Load()}
	pending := set.GetFile()
	for len(pending) > 0 {
		var deferred []*descriptorpb.FileDescriptorProto
		var lastErr error
		for _, fdp := range pending {
			fd, err := protodesc.NewFile(fdp, res)
			if err != nil {
				deferred = append(deferred, fdp)
				lastErr = err
				continue
			}
			if err := res.local.RegisterFile(fd); err != nil {
				return fmt.Errorf("registry: %s: %w", path, err)
			}
		}
		if len(deferred) == len(pending) {
			return fmt.Errorf("registry: %s: %w", path, lastErr)
		}
		pending = deferred
	}

	var files []protoreflect.FileDescriptor
	res.local.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		files = append(files, fd)
		return true
	})
	return r.AddFiles(files...)
}

// LoadDescriptors loads every descriptor named by a path list such as the
// value of GZ_DESCRIPTOR_PATH. Directories contribute their files ending in
// one of DescriptorExtensions; plain files are loaded as given. Loading
// continues past failures and the combined error is returned.
func (r *Registry) LoadDescriptors(pathList string) error {
	var errs []error
	for _, entry := range filepath.SplitList(pathList) {
		if entry == "" {
			continue
		}
		info, err := os.Stat(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("registry: %w", err))
			continue
		}
		if !info.IsDir() {
			if err := r.LoadDescriptorSet(entry); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		dirEntries, err := os.ReadDir(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("registry: %w", err))
			continue
		}
		for _, de := range dirEntries {
			if de.IsDir() || !hasDescriptorExt(de.Name()) {
				continue
			}
			if err := r.LoadDescriptorSet(filepath.Join(entry, de.Name())); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func hasDescriptorExt(name string) bool {
	for _, ext := range DescriptorExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// resolver looks up imports in the set being loaded, then in descriptors
// already known to the registry, then in the global registry for the
// well-known types.
type resolver struct {
	local *protoregistry.Files
	known *protoregistry.Files
}

func (r *resolver) FindFileByPath(path string) (protoreflect.FileDescriptor, error) {
	if fd, err := r.local.FindFileByPath(path); err == nil {
		return fd, nil
	}
	if r.known != nil {
		if fd, err := r.known.FindFileByPath(path); err == nil {
			return fd, nil
		}
	}
	return protoregistry.GlobalFiles.FindFileByPath(path)
}

func (r *resolver) FindDescriptorByName(name protoreflect.FullName) (protoreflect.Descriptor, error) {
	if d, err := r.local.FindDescriptorByName(name); err == nil {
		return d, nil
	}
	if r.known != nil {
		if d, err := r.known.FindDescriptorByName(name); err == nil {
			return d, nil
		}
	}
	return protoregistry.GlobalFiles.FindDescriptorByName(name)
}

// LoadDescriptors loads descriptor files into the default registry.
func LoadDescriptors(pathList string) error {
	return defaultRegistry.LoadDescriptors(pathList)
}
