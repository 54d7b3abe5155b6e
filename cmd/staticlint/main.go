// Package main запускает multichecker.
//
// Он включает:
// - стандартные анализаторы go/analysis/passes
// - все SA-анализаторы staticcheck
// - не-SA анализаторы S1000 и U1000
// - публичный анализатор bodyclose
// - собственные анализаторы noexit (os.Exit в main/init) и noprint (fmt.Print* вне main)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/staticcheck"

	"github.com/Totarae/PageAnalyzer/cmd/staticlint/noexit"
	"github.com/Totarae/PageAnalyzer/cmd/staticlint/noprint"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		unusedresult.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if a.Analyzer.Name[:2] == "SA" {
			list = append(list, a.Analyzer)
		}
	}

	// не-SA:
	if a := findAnalyzer("S1000"); a != nil {
		list = append(list, a) // упрощения
	}
	if a := findAnalyzer("U1000"); a != nil {
		list = append(list, a) // неиспользуемый код
	}

	// публичный анализатор (не из staticcheck)
	list = append(list, bodyclose.Analyzer)

	// собственные анализаторы
	list = append(list, noexit.NewAnalyzer(), noprint.Analyzer)

	return list
}

func findAnalyzer(name string) *analysis.Analyzer {
	for _, a := range staticcheck.Analyzers {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
