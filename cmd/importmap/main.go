// Command importmap validates import-map documents and resolves module
// specifiers against them from the command line.
package main

func main() {
	Execute()
}
