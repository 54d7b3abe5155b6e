// Package noprint запрещает вывод через fmt.Print* вне пакета main.
// Библиотечный код пишет в zap.Logger.
package noprint

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "noprint",
	Doc:      "запрещает fmt.Print, fmt.Printf и fmt.Println вне пакета main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var forbidden = map[string]bool{
	"fmt.Print":   true,
	"fmt.Printf":  true,
	"fmt.Println": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if strings.HasSuffix(pass.Fset.File(call.Pos()).Name(), "_test.go") {
			return
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}
		if f, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok && forbidden[f.FullName()] {
			pass.Reportf(call.Pos(), "%s вне пакета main: используйте логгер", f.FullName())
		}
	})
	return nil, nil
}
