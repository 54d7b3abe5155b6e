package lib

import (
	"fmt"
	"io"
)

func Report(w io.Writer, n int) string {
	fmt.Println("checking") // want `fmt.Println вне пакета main: используйте логгер`
	fmt.Printf("%d\n", n)   // want `fmt.Printf вне пакета main: используйте логгер`
	fmt.Fprintf(w, "%d", n)
	return fmt.Sprintf("%d", n)
}
