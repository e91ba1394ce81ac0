// Package main implements ctab_err - lists the generator error codes and their descriptions.
package main

import (
	"fmt"

	"ctablegen/internal/ctab"
)

func main() {
	fmt.Println("Constant Table Generator Error Code List")
	fmt.Println()

	for _, code := range ctab.Codes() {
		fmt.Printf("%d: %s - %s\n", uint32(code), code.Name(), code.Description())
	}
}
