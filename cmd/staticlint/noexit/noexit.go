// Package noexit содержит пользовательский анализатор,
// который запрещает прямой вызов os.Exit в функциях main и init пакета main.
package noexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// Analyzer запрещает использовать os.Exit в функциях main и init.
var Analyzer = &analysis.Analyzer{
	Name: "noexit",
	Doc:  "запрещает использовать os.Exit в функциях main и init пакета main",
	Run:  run,
}

// NewAnalyzer возвращает анализатор noexit.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Body == nil {
				continue
			}
			if fn.Name.Name != "main" && fn.Name.Name != "init" {
				continue
			}

			name := fn.Name.Name
			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				// Сверяем по объекту, чтобы ловить и переименованный импорт
				if f, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok && f.FullName() == "os.Exit" {
					pass.Reportf(call.Pos(), "вызов os.Exit в функции %s запрещён", name)
				}
				return true
			})
		}
	}
	return nil, nil
}
