package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"beast/internal/app"
	"beast/internal/types"
)

func newClassCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(types.CommandClass),
		Short: "Add, remove and locate classes of a CMake target",
		Long: "Operates on header and source files relative to the headers and sources\n" +
			"base directories of a target. For the list of targets run 'beast config --list-targets'.",
	}
	cmd.AddCommand(newClassAddCommand())
	cmd.AddCommand(newClassRemoveCommand())
	cmd.AddCommand(newClassPathCommand())
	return cmd
}

type classAddOptions struct {
	Namespace     string
	HeaderOnly    bool
	SourceOnly    bool
	SkipConfigure bool
}

func newClassAddCommand() *cobra.Command {
	opts := classAddOptions{}
	cmd := &cobra.Command{
		Use:   string(types.CommandClassAdd) + " <target> <class_name>",
		Short: "Add a class to a target",
		Long: "Creates a header and a source file under the base directories of the target.\n" +
			"Slashes in the class name create subdirectories: 'subDir/myClass' results in\n" +
			"'subDir/myClass.h' and 'subDir/myClass.cpp' below the base directories.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			result, err := service.AddClass(cmd.Context(), app.AddClassRequest{
				Target:     args[0],
				ClassName:  args[1],
				Namespace:  namespaceFlag(cmd, opts.Namespace),
				HeaderOnly: opts.HeaderOnly,
				SourceOnly: opts.SourceOnly,
			})
			if err != nil {
				return err
			}
			for _, path := range result.Created {
				fmt.Fprintln(cmd.OutOrStdout(), labelled("created", path))
			}
			if resolveBool(cmd, opts.SkipConfigure, "skip_configure", "skip-configure") {
				return nil
			}
			return configureAfterClassChange(cmd.Context(), service, "added")
		},
	}
	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "Namespace in which the class should reside")
	cmd.Flags().BoolVar(&opts.HeaderOnly, "header-only", false, "Create only the header file")
	cmd.Flags().BoolVar(&opts.SourceOnly, "source-only", false, "Create only the source file")
	cmd.Flags().BoolVar(&opts.SkipConfigure, "skip-configure", false, "Do not regenerate configs and reconfigure CMake")
	cmd.MarkFlagsMutuallyExclusive("header-only", "source-only")
	return cmd
}

type classRemoveOptions struct {
	SkipConfigure bool
}

func newClassRemoveCommand() *cobra.Command {
	opts := classRemoveOptions{}
	cmd := &cobra.Command{
		Use:   string(types.CommandClassRemove) + " <target> <class_name>",
		Short: "Remove a class from a target",
		Long: "Removes the header and source files of a class. Subdirectories left empty\n" +
			"by the removal are deleted as well.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			result, err := service.RemoveClass(cmd.Context(), app.RemoveClassRequest{
				Target:    args[0],
				ClassName: args[1],
			})
			if err != nil {
				return err
			}
			if len(result.Removed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styleWarning.Render("nothing to remove: class "+args[1]+" does not exist"))
			}
			for _, path := range result.Removed {
				fmt.Fprintln(cmd.OutOrStdout(), labelled("removed", path))
			}
			if resolveBool(cmd, opts.SkipConfigure, "skip_configure", "skip-configure") {
				return nil
			}
			return configureAfterClassChange(cmd.Context(), service, "removed")
		},
	}
	cmd.Flags().BoolVar(&opts.SkipConfigure, "skip-configure", false, "Do not regenerate configs and reconfigure CMake")
	return cmd
}

func newClassPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   string(types.CommandClassPath) + " <target>",
		Short: "Show the headers and sources base directories of a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newAppService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			result, err := service.ClassPaths(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), labelled("Headers base directory", result.HeadersBaseDir))
			fmt.Fprintln(cmd.OutOrStdout(), labelled("Sources base directory", result.SourcesBaseDir))
			return nil
		},
	}
}

// namespaceFlag returns nil unless --namespace was given, so an explicit
// empty namespace still produces a namespace block.
func namespaceFlag(cmd *cobra.Command, value string) *string {
	if !flagChanged(cmd, "namespace") {
		return nil
	}
	return &value
}

// configureAfterClassChange runs the follow-up configure. Its failure keeps
// the underlying code but states that the class files and manifest were
// already written.
func configureAfterClassChange(ctx context.Context, service configurer, action string) error {
	if err := service.Configure(ctx); err != nil {
		return classChangePersisted(action, err)
	}
	return nil
}

type configurer interface {
	Configure(ctx context.Context) error
}

func classChangePersisted(action string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeOf(err)).
		WithMsg(fmt.Sprintf("class %s and manifest saved, but configuring the project failed (run 'beast configure' to retry): %s", action, errorMessage(err))).
		WithCause(err)
}
