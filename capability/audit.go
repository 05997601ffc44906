package capability

import (
	"context"
	"fmt"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

type namedIface struct {
	name  string
	iface *types.Interface
}

type namedType struct {
	name string
	typ  *types.Named
}

// Audit loads the packages under dir and reports every capability conformance.
func Audit(ctx context.Context, dir string, opts Options) (*Report, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
		Dir:     dir,
		Context: ctx,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("capability: load %v: %w", patterns, err)
	}
	if len(pkgs) == 0 {
		return nil, ErrNoPackages
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("%w: %s: %s", ErrPackageErrors, pkg.PkgPath, pkg.Errors[0].Msg)
		}
	}

	var wanted map[string]bool
	if len(opts.Capabilities) > 0 {
		wanted = make(map[string]bool, len(opts.Capabilities))
		for _, c := range opts.Capabilities {
			wanted[c] = true
		}
	}

	// Capabilities come from the loaded packages and their non-stdlib imports,
	// so a type in ./bird can be matched against racer.Racer.
	ifaces := map[string]namedIface{}
	named := map[string]namedType{}
	for _, pkg := range pkgs {
		collect(pkg.Types, opts.IncludeUnexported, ifaces, named)
		for _, imp := range pkg.Imports {
			if imp.Types == nil || isStdlib(imp.PkgPath) {
				continue
			}
			collect(imp.Types, opts.IncludeUnexported, ifaces, nil)
		}
	}

	rep := &Report{index: map[[2]string]bool{}}
	for name := range ifaces {
		if wanted == nil || wanted[name] {
			rep.Capabilities = append(rep.Capabilities, name)
		}
	}
	for name := range named {
		rep.Types = append(rep.Types, name)
	}
	slices.Sort(rep.Capabilities)
	slices.Sort(rep.Types)

	for _, tn := range rep.Types {
		t := named[tn].typ
		for _, cn := range rep.Capabilities {
			iface := ifaces[cn].iface
			ptr := types.NewPointer(t)
			var viaPtr bool
			switch {
			case types.Implements(t, iface):
			case types.Implements(ptr, iface):
				viaPtr = true
			default:
				continue
			}
			rep.Conformances = append(rep.Conformances, Conformance{Type: tn, Capability: cn, ViaPointer: viaPtr})
			rep.index[[2]string{tn, cn}] = viaPtr
		}
	}

	return rep, nil
}

// collect adds the package's named interfaces with at least one method to
// ifaces and, when named is non-nil, its named non-interface types to named.
func collect(pkg *types.Package, unexported bool, ifaces map[string]namedIface, named map[string]namedType) {
	if pkg == nil {
		return
	}
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() || (!unexported && !tn.Exported()) {
			continue
		}
		nt, ok := tn.Type().(*types.Named)
		if !ok || nt.TypeParams().Len() > 0 {
			continue
		}
		key := pkg.Name() + "." + name
		if iface, ok := nt.Underlying().(*types.Interface); ok {
			if iface.NumMethods() > 0 && iface.IsMethodSet() {
				ifaces[key] = namedIface{name: key, iface: iface}
			}
			continue
		}
		if named != nil {
			named[key] = namedType{name: key, typ: nt}
		}
	}
}

// isStdlib treats import paths without a dot in the first element as standard library.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")

	return !strings.Contains(first, ".")
}
