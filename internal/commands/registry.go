package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/gazebosim/gz-msgs/internal/logger"
	"github.com/gazebosim/gz-msgs/registry"
)

// schemaRegistry builds a registry from the configured schema files plus
// any descriptor sets named by --descriptors or GZ_DESCRIPTOR_PATH. It
// reads the schemas directly, so it works before anything is compiled.
func schemaRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	p, err := setup(cmd)
	if err != nil {
		return nil, err
	}

	r := registry.New()
	files, err := p.Descriptors(cmd.Context())
	if err != nil {
		return nil, err
	}
	if err := r.AddFiles(files...); err != nil {
		return nil, err
	}

	paths, _ := cmd.Flags().GetString("descriptors")
	if paths == "" {
		paths = os.Getenv(registry.DescriptorPathEnv)
	}
	if paths != "" {
		if err := r.LoadDescriptors(paths); err != nil {
			p.Log.Warn("some descriptor sets could not be loaded", logger.Err(err))
		}
	}
	return r, nil
}

func addDescriptorsFlag(cmd *cobra.Command) {
	cmd.Flags().String("descriptors", "",
		"Descriptor set files or directories to load as well (default $"+registry.DescriptorPathEnv+")")
}

// ListCmd creates the 'list' command.
func ListCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the message types defined by the schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := schemaRegistry(cmd)
			if err != nil {
				return err
			}
			for _, key := range r.Types() {
				if strings.HasPrefix(key, prefix) {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list keys starting with this prefix")
	addDescriptorsFlag(cmd)
	return cmd
}

// InfoCmd creates the 'info' command.
func InfoCmd() *cobra.Command {
	var fromText string

	cmd := &cobra.Command{
		Use:   "info <type>...",
		Short: "Describe message types",
		Long: `Show the schema file and fields behind each registry key. With --text the
message is also parsed from protobuf text format and printed back.

Examples:
  gzmsgs info gz.msgs.Pose
  gzmsgs info gz.msgs.Vector3d --text "x: 1 y: 2 z: 3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := schemaRegistry(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, key := range args {
				md, err := r.Descriptor(key)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				describe(w, md)

				if fromText == "" {
					continue
				}
				msg, err := r.CreateFromText(key, fromText)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "  Value: %s\n", prototext.MarshalOptions{}.Format(msg))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromText, "text", "", "Fill each message from this protobuf text")
	addDescriptorsFlag(cmd)
	return cmd
}

func describe(w io.Writer, md protoreflect.MessageDescriptor) {
	fmt.Fprintf(w, "%s\n  File: %s\n", md.FullName(), md.ParentFile().Path())
	fields := md.Fields()
	if fields.Len() == 0 {
		fmt.Fprintln(w, "  Fields: (none)")
		return
	}
	fmt.Fprintln(w, "  Fields:")
	for i := range fields.Len() {
		fd := fields.Get(i)
		fmt.Fprintf(w, "    %-3d %-24s %s\n", fd.Number(), fd.Name(), fieldType(fd))
	}
}

func fieldType(fd protoreflect.FieldDescriptor) string {
	var name string
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		name = string(fd.Message().FullName())
	case protoreflect.EnumKind:
		name = string(fd.Enum().FullName())
	default:
		name = fd.Kind().String()
	}
	if fd.IsList() {
		return "repeated " + name
	}
	return name
}
