package cmd

import (
	"fmt"
	"go/constant"
	"go/types"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

var servicesDir string

// servicesCmd represents the services command
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Lists all services discoverable via the service registry",
	Long: `Scans the source tree for registry.Key declarations to find every service
that modules can resolve at runtime.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := findRegistryKeys(servicesDir)
		if err != nil {
			return fmt.Errorf("failed to find registry keys: %w", err)
		}

		if len(services) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No services found in the registry.")
			return nil
		}
		return printServices(cmd.OutOrStdout(), services)
	},
}

func init() {
	servicesCmd.Flags().StringVar(&servicesDir, "dir", ".", "module root to scan")
	rootCmd.AddCommand(servicesCmd)
}

// ServiceInfo is one registry key and the type it resolves to.
type ServiceInfo struct {
	Key  string
	Type string
}

// findRegistryKeys type-checks every package under root and collects package
// level constants and variables whose type is registry.Key[T].
func findRegistryKeys(root string) ([]ServiceInfo, error) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedTypes,
		Dir:   root,
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var services []ServiceInfo
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		qualifier := func(p *types.Package) string { return p.Name() }
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			named, ok := obj.Type().(*types.Named)
			if !ok || !isRegistryKey(named) || named.TypeArgs().Len() != 1 {
				continue
			}

			service := ServiceInfo{
				Key:  pkg.Name + "." + name,
				Type: types.TypeString(named.TypeArgs().At(0), qualifier),
			}
			if c, ok := obj.(*types.Const); ok && c.Val().Kind() == constant.String {
				service.Key = constant.StringVal(c.Val())
			}
			services = append(services, service)
		}
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Key < services[j].Key })
	return services, nil
}

func isRegistryKey(named *types.Named) bool {
	obj := named.Obj()
	return obj.Name() == "Key" && obj.Pkg() != nil && strings.HasSuffix(obj.Pkg().Path(), "internal/registry")
}

func printServices(out io.Writer, services []ServiceInfo) error {
	fmt.Fprintln(out, "Available Services in the Registry:")
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE")
	fmt.Fprintln(w, "---\t----")
	for _, s := range services {
		fmt.Fprintf(w, "%s\t%s\n", s.Key, s.Type)
	}
	return w.Flush()
}
